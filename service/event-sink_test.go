package service

import (
	"context"
	"encoding/json"
	"errors"
	"scorecard/logger"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	calls    int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaSinkPublishesKeyedByRoom(t *testing.T) {
	writer := &fakeWriter{}
	sink := NewKafkaSink(writer, logger.WithComponent("test"))

	require.NoError(t, sink.Publish(TournamentEvent{Name: TournamentStarted, TournamentId: 3, RoomCode: "ROOM22"}))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "ROOM22", string(writer.messages[0].Key))

	var event TournamentEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, TournamentStarted, event.Name)
	assert.Equal(t, 3, event.TournamentId)
}

func TestKafkaSinkOpensBreakerAfterFailures(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker down")}
	sink := NewKafkaSink(writer, logger.WithComponent("test"))

	for range 3 {
		assert.Error(t, sink.Publish(TournamentEvent{Name: TournamentCompleted}))
	}
	err := sink.Publish(TournamentEvent{Name: TournamentCompleted})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, writer.calls, "an open breaker does not reach the broker")
}
