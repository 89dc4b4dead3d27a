package service

import (
	"context"
	"encoding/json"
	"scorecard/metrics"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

type EventName string

const (
	TournamentStarted   EventName = "tournament_started"
	TournamentCompleted EventName = "tournament_completed"
	AllPlayersAssigned  EventName = "all_players_assigned"
)

// TournamentEvent is an intent for an external notifier. Delivery is not our concern.
type TournamentEvent struct {
	Name         EventName      `json:"name"`
	TournamentId int            `json:"tournament_id"`
	RoomCode     string         `json:"room_code"`
	OccurredAt   time.Time      `json:"occurred_at"`
	Payload      map[string]any `json:"payload,omitempty"`
}

type EventSink interface {
	Publish(event TournamentEvent) error
}

// LogSink is used when no broker is configured.
type LogSink struct {
	logger *logrus.Entry
}

func NewLogSink(logger *logrus.Entry) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(event TournamentEvent) error {
	s.logger.WithFields(logrus.Fields{
		"event":         event.Name,
		"tournament_id": event.TournamentId,
		"room_code":     event.RoomCode,
	}).Info("tournament event")
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaSink writes events to a topic behind a circuit breaker so a broker outage
// fails fast instead of stalling lifecycle operations.
type KafkaSink struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
}

func NewKafkaSink(writer messageWriter, logger *logrus.Entry) *KafkaSink {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kafka-event-sink",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Warn("event sink circuit breaker state changed")
		},
	})
	return &KafkaSink{writer: writer, breaker: breaker, timeout: 5 * time.Second}
}

func (s *KafkaSink) Publish(event TournamentEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = s.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		return nil, s.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.RoomCode),
			Value: value,
		})
	})
	return err
}

// publish never fails the caller; an undelivered intent is logged and counted.
func publish(sink EventSink, logger *logrus.Entry, event TournamentEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if err := sink.Publish(event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(string(event.Name), "failed").Inc()
		logger.WithError(err).WithField("event", event.Name).Error("failed to publish tournament event")
		return
	}
	metrics.EventsPublishedTotal.WithLabelValues(string(event.Name), "published").Inc()
}
