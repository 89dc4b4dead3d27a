package service

import (
	"context"
	"encoding/json"
	"fmt"
	"scorecard/scoring"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type CheatAlert struct {
	Id         string            `json:"id"`
	RoomCode   string            `json:"room_code"`
	PlayerId   int               `json:"player_id"`
	PlayerName string            `json:"player_name"`
	Hole       int               `json:"hole"`
	Par        int               `json:"par"`
	Scratches  int               `json:"scratches"`
	AlertType  scoring.AlertType `json:"alert_type"`
	Severity   scoring.Severity  `json:"severity"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp"`
	Dismissed  bool              `json:"dismissed"`
}

// AlertStore keeps the most recent alerts. Dismissal is one-way.
type AlertStore interface {
	Add(alert *CheatAlert) error
	// Dismiss succeeds for unknown and already dismissed ids alike.
	Dismiss(alertId string) error
	// List returns active alerts oldest first, restricted to roomCode unless it is empty.
	List(roomCode string) ([]*CheatAlert, error)
	// HasActive reports an undismissed alert of the given type for the player raised at or after since.
	HasActive(roomCode string, playerId int, alertType scoring.AlertType, since time.Time) (bool, error)
}

type MemoryAlertStore struct {
	mu       sync.RWMutex
	capacity int
	alerts   []*CheatAlert
}

func NewMemoryAlertStore(capacity int) *MemoryAlertStore {
	return &MemoryAlertStore{capacity: capacity, alerts: make([]*CheatAlert, 0, capacity)}
}

func (s *MemoryAlertStore) Add(alert *CheatAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *alert
	s.alerts = append(s.alerts, &copied)
	if overflow := len(s.alerts) - s.capacity; overflow > 0 {
		s.alerts = append(s.alerts[:0:0], s.alerts[overflow:]...)
	}
	return nil
}

func (s *MemoryAlertStore) Dismiss(alertId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, alert := range s.alerts {
		if alert.Id == alertId {
			alert.Dismissed = true
		}
	}
	return nil
}

func (s *MemoryAlertStore) List(roomCode string) ([]*CheatAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	alerts := make([]*CheatAlert, 0)
	for _, alert := range s.alerts {
		if alert.Dismissed || (roomCode != "" && alert.RoomCode != roomCode) {
			continue
		}
		copied := *alert
		alerts = append(alerts, &copied)
	}
	return alerts, nil
}

func (s *MemoryAlertStore) HasActive(roomCode string, playerId int, alertType scoring.AlertType, since time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, alert := range s.alerts {
		if !alert.Dismissed && alert.RoomCode == roomCode && alert.PlayerId == playerId &&
			alert.AlertType == alertType && !alert.Timestamp.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

// RedisAlertStore shares alerts between instances. Alerts live in a capped list of ids
// plus one JSON key per alert; dismissed ids are kept in a set.
type RedisAlertStore struct {
	client   *redis.Client
	capacity int64
	prefix   string
}

func NewRedisAlertStore(client *redis.Client, capacity int) *RedisAlertStore {
	return &RedisAlertStore{client: client, capacity: int64(capacity), prefix: "scorecard:alerts"}
}

func (s *RedisAlertStore) listKey() string      { return s.prefix + ":order" }
func (s *RedisAlertStore) dismissedKey() string { return s.prefix + ":dismissed" }
func (s *RedisAlertStore) alertKey(id string) string {
	return fmt.Sprintf("%s:alert:%s", s.prefix, id)
}

// Add appends the alert and trims the list to capacity in the same transaction, so
// concurrent writers never drop more than the overflow.
func (s *RedisAlertStore) Add(alert *CheatAlert) error {
	ctx := context.Background()
	serialized, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.alertKey(alert.Id), serialized, 0)
	pipe.RPush(ctx, s.listKey(), alert.Id)
	overflow := pipe.LRange(ctx, s.listKey(), 0, -s.capacity-1)
	pipe.LTrim(ctx, s.listKey(), -s.capacity, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store alert: %w", err)
	}
	return s.forget(ctx, overflow.Val())
}

// forget removes the payloads of alerts that fell off the list.
func (s *RedisAlertStore) forget(ctx context.Context, dropped []string) error {
	if len(dropped) == 0 {
		return nil
	}
	pipe := s.client.TxPipeline()
	for _, id := range dropped {
		pipe.Del(ctx, s.alertKey(id))
		pipe.SRem(ctx, s.dismissedKey(), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop old alerts: %w", err)
	}
	return nil
}

func (s *RedisAlertStore) Dismiss(alertId string) error {
	return s.client.SAdd(context.Background(), s.dismissedKey(), alertId).Err()
}

func (s *RedisAlertStore) all(ctx context.Context) ([]*CheatAlert, error) {
	ids, err := s.client.LRange(ctx, s.listKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	if len(ids) == 0 {
		return []*CheatAlert{}, nil
	}
	dismissed, err := s.client.SMembersMap(ctx, s.dismissedKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list dismissed alerts: %w", err)
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.alertKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load alerts: %w", err)
	}
	alerts := make([]*CheatAlert, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		alert := &CheatAlert{}
		if err := json.Unmarshal([]byte(raw), alert); err != nil {
			return nil, err
		}
		_, alert.Dismissed = dismissed[alert.Id]
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

func (s *RedisAlertStore) List(roomCode string) ([]*CheatAlert, error) {
	alerts, err := s.all(context.Background())
	if err != nil {
		return nil, err
	}
	active := make([]*CheatAlert, 0, len(alerts))
	for _, alert := range alerts {
		if !alert.Dismissed && (roomCode == "" || alert.RoomCode == roomCode) {
			active = append(active, alert)
		}
	}
	return active, nil
}

func (s *RedisAlertStore) HasActive(roomCode string, playerId int, alertType scoring.AlertType, since time.Time) (bool, error) {
	alerts, err := s.List(roomCode)
	if err != nil {
		return false, err
	}
	for _, alert := range alerts {
		if alert.PlayerId == playerId && alert.AlertType == alertType && !alert.Timestamp.Before(since) {
			return true, nil
		}
	}
	return false, nil
}
