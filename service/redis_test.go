package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"scorecard/scoring"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var redisClient *redis.Client

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil || pool.Client.Ping() != nil {
		log.Printf("Docker unavailable, redis tests will be skipped")
		os.Exit(m.Run())
	}

	resource, err := pool.Run("redis", "7.4-alpine", nil)
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600)

	if err := pool.Retry(func() error {
		redisClient = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp"))})
		return redisClient.Ping(context.Background()).Err()
	}); err != nil {
		log.Fatalf("Could not connect to redis: %s", err)
	}

	code := m.Run()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func requireRedis(t *testing.T) *redis.Client {
	if redisClient == nil {
		t.Skip("requires docker")
	}
	t.Cleanup(func() {
		redisClient.FlushDB(context.Background())
	})
	return redisClient
}

func TestRedisAlertStore(t *testing.T) {
	store := NewRedisAlertStore(requireRedis(t), 3)
	now := time.Now().UTC().Truncate(time.Millisecond)
	for i := range 4 {
		require.NoError(t, store.Add(&CheatAlert{
			Id:        fmt.Sprintf("alert-%d", i),
			RoomCode:  "ROOM22",
			PlayerId:  7,
			AlertType: scoring.RapidScoring,
			Timestamp: now.Add(time.Duration(i) * time.Second),
		}))
	}

	alerts, err := store.List("ROOM22")
	require.NoError(t, err)
	assert.Equal(t, []string{"alert-1", "alert-2", "alert-3"}, alertIds(alerts), "oldest dropped beyond capacity")
	assert.True(t, alerts[0].Timestamp.Equal(now.Add(time.Second)))

	require.NoError(t, store.Dismiss("alert-3"))
	require.NoError(t, store.Dismiss("alert-3"))
	require.NoError(t, store.Dismiss("missing"))
	alerts, err = store.List("")
	require.NoError(t, err)
	assert.Equal(t, []string{"alert-1", "alert-2"}, alertIds(alerts))

	active, err := store.HasActive("ROOM22", 7, scoring.RapidScoring, now.Add(2*time.Second))
	require.NoError(t, err)
	assert.True(t, active)
	active, err = store.HasActive("ROOM22", 7, scoring.RapidScoring, now.Add(3*time.Second))
	require.NoError(t, err)
	assert.False(t, active, "the only later alert is dismissed")

	other, err := store.List("OTHER2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRedisWindowTracker(t *testing.T) {
	tracker := NewRedisWindowTracker(requireRedis(t), 2*time.Minute)
	start := time.Now()

	count, err := tracker.Record(1, 1, start)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	count, _ = tracker.Record(1, 1, start.Add(time.Second))
	assert.Equal(t, 2, count)
	count, _ = tracker.Record(1, 1, start.Add(time.Second))
	assert.Equal(t, 3, count, "identical timestamps are distinct submissions")
	count, _ = tracker.Record(1, 1, start.Add(2*time.Minute+500*time.Millisecond))
	assert.Equal(t, 3, count, "the first timestamp fell out of the window")
	count, _ = tracker.Record(2, 1, start)
	assert.Equal(t, 1, count)

	count, _ = tracker.Record(3, 1, start)
	assert.Equal(t, 1, count)
	count, _ = tracker.Record(3, 1, start.Add(time.Minute))
	assert.Equal(t, 2, count)
	count, _ = tracker.Record(3, 1, start.Add(2*time.Minute))
	assert.Equal(t, 3, count, "a timestamp exactly one window old still counts")
}

func TestRedisAlertStoreConcurrentAddsKeepCapacity(t *testing.T) {
	client := requireRedis(t)
	store := NewRedisAlertStore(client, 5)
	now := time.Now().UTC()
	for i := range 5 {
		require.NoError(t, store.Add(&CheatAlert{Id: fmt.Sprintf("seed-%d", i), RoomCode: "ROOM22", Timestamp: now}))
	}

	var g errgroup.Group
	for i := range 10 {
		g.Go(func() error {
			return NewRedisAlertStore(client, 5).Add(&CheatAlert{Id: fmt.Sprintf("burst-%d", i), RoomCode: "ROOM22", Timestamp: now})
		})
	}
	require.NoError(t, g.Wait())

	alerts, err := store.List("ROOM22")
	require.NoError(t, err)
	assert.Len(t, alerts, 5)
	for _, alert := range alerts {
		assert.Contains(t, alert.Id, "burst-")
	}
	payloads, err := client.Keys(context.Background(), "scorecard:alerts:alert:*").Result()
	require.NoError(t, err)
	assert.Len(t, payloads, 5, "dropped alerts leave no payload behind")
}

func TestCheatServiceOverRedis(t *testing.T) {
	client := requireRedis(t)
	f := newFixture()
	f.cheat = NewCheatService(NewRedisAlertStore(client, 500), NewRedisWindowTracker(client, 2*time.Minute), 2*time.Minute, 3)
	f.scores = NewScoreService(f.store, f.cheat)
	tournament, players := f.tournament(t, 18, "ann")

	for hole := 1; hole <= 4; hole++ {
		_, err := f.scores.UpsertScore(ScoreSubmission{PlayerId: players[0].Id, Hole: hole, Par: 3, Strokes: 4})
		require.NoError(t, err)
	}
	assert.Len(t, rapidAlerts(t, f, tournament.RoomCode), 1)
}
