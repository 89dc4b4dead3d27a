package service

import (
	"context"
	"fmt"
	"scorecard/metrics"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SubmissionWindowTracker keeps a sliding window of submission timestamps per (tournament, player).
type SubmissionWindowTracker interface {
	// Record prunes timestamps older than the window, appends at and returns the window size.
	// A timestamp exactly one window old still counts.
	Record(tournamentId int, playerId int, at time.Time) (int, error)
	// Evict forgets windows whose newest entry is older than idleBefore and returns how many were dropped.
	Evict(idleBefore time.Time) (int, error)
}

type windowKey struct {
	TournamentId int
	PlayerId     int
}

// MemoryWindowTracker is process-local: windows do not survive restarts and are not
// shared between instances. Use RedisWindowTracker when running more than one.
type MemoryWindowTracker struct {
	mu      sync.Mutex
	window  time.Duration
	windows map[windowKey][]time.Time
}

func NewMemoryWindowTracker(window time.Duration) *MemoryWindowTracker {
	return &MemoryWindowTracker{window: window, windows: make(map[windowKey][]time.Time)}
}

func (t *MemoryWindowTracker) Record(tournamentId int, playerId int, at time.Time) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := windowKey{TournamentId: tournamentId, PlayerId: playerId}
	cutoff := at.Add(-t.window)
	kept := make([]time.Time, 0, len(t.windows[key])+1)
	for _, ts := range t.windows[key] {
		if !ts.Before(cutoff) {
			kept = append(kept, ts)
		}
	}
	kept = append(kept, at)
	t.windows[key] = kept
	metrics.SubmissionWindowsGauge.Set(float64(len(t.windows)))
	return len(kept), nil
}

func (t *MemoryWindowTracker) Evict(idleBefore time.Time) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	evicted := 0
	for key, timestamps := range t.windows {
		if len(timestamps) == 0 || timestamps[len(timestamps)-1].Before(idleBefore) {
			delete(t.windows, key)
			evicted++
		}
	}
	metrics.SubmissionWindowsGauge.Set(float64(len(t.windows)))
	return evicted, nil
}

// RedisWindowTracker stores each window as a sorted set scored by unix milliseconds.
// Keys expire on their own, so Evict has nothing to do.
type RedisWindowTracker struct {
	client *redis.Client
	window time.Duration
}

func NewRedisWindowTracker(client *redis.Client, window time.Duration) *RedisWindowTracker {
	return &RedisWindowTracker{client: client, window: window}
}

func (t *RedisWindowTracker) key(tournamentId int, playerId int) string {
	return fmt.Sprintf("scorecard:window:%d:%d", tournamentId, playerId)
}

func (t *RedisWindowTracker) Record(tournamentId int, playerId int, at time.Time) (int, error) {
	ctx := context.Background()
	key := t.key(tournamentId, playerId)
	cutoff := at.Add(-t.window).UnixMilli()

	pipe := t.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(cutoff, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(at.UnixMilli()), Member: uuid.NewString()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to record submission: %w", err)
	}
	return int(count.Val()), nil
}

func (t *RedisWindowTracker) Evict(idleBefore time.Time) (int, error) {
	return 0, nil
}
