package service

import (
	"fmt"
	"scorecard/scoring"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rapidAlerts(t *testing.T, f *fixture, roomCode string) []*CheatAlert {
	t.Helper()
	alerts, err := f.cheat.ListAlerts(roomCode)
	require.NoError(t, err)
	rapid := make([]*CheatAlert, 0)
	for _, alert := range alerts {
		if alert.AlertType == scoring.RapidScoring {
			rapid = append(rapid, alert)
		}
	}
	return rapid
}

func submitQuickly(t *testing.T, f *fixture, playerId int, fromHole int, count int) {
	t.Helper()
	for hole := fromHole; hole < fromHole+count; hole++ {
		_, err := f.scores.UpsertScore(ScoreSubmission{PlayerId: playerId, Hole: hole, Par: 3, Strokes: 4})
		require.NoError(t, err)
		f.clock.advance(10 * time.Second)
	}
}

func TestRapidScoringRaisesOncePerWindow(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann", "bob")

	submitQuickly(t, f, players[0].Id, 1, 2)
	assert.Empty(t, rapidAlerts(t, f, tournament.RoomCode))

	submitQuickly(t, f, players[0].Id, 3, 1)
	rapid := rapidAlerts(t, f, tournament.RoomCode)
	require.Len(t, rapid, 1)
	assert.Equal(t, players[0].Id, rapid[0].PlayerId)
	assert.Equal(t, scoring.SeverityLow, rapid[0].Severity)

	submitQuickly(t, f, players[0].Id, 4, 1)
	assert.Len(t, rapidAlerts(t, f, tournament.RoomCode), 1, "still inside the open window")

	submitQuickly(t, f, players[1].Id, 1, 2)
	assert.Len(t, rapidAlerts(t, f, tournament.RoomCode), 1, "windows are per player")
}

func TestRapidScoringAtWindowEdge(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann")

	for hole := 1; hole <= 3; hole++ {
		_, err := f.scores.UpsertScore(ScoreSubmission{PlayerId: players[0].Id, Hole: hole, Par: 3, Strokes: 4})
		require.NoError(t, err)
		if hole < 3 {
			f.clock.advance(time.Minute)
		}
	}
	assert.Len(t, rapidAlerts(t, f, tournament.RoomCode), 1, "three submissions spanning exactly 120s")
}

func TestRapidScoringAfterDismissalOrExpiry(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann")
	playerId := players[0].Id

	submitQuickly(t, f, playerId, 1, 3)
	rapid := rapidAlerts(t, f, tournament.RoomCode)
	require.Len(t, rapid, 1)

	require.NoError(t, f.cheat.DismissAlert(rapid[0].Id))
	submitQuickly(t, f, playerId, 4, 1)
	assert.Len(t, rapidAlerts(t, f, tournament.RoomCode), 1, "a dismissed alert does not suppress a new one")

	f.clock.advance(5 * time.Minute)
	submitQuickly(t, f, playerId, 5, 2)
	assert.Len(t, rapidAlerts(t, f, tournament.RoomCode), 1, "old timestamps were pruned")
	submitQuickly(t, f, playerId, 7, 1)
	assert.Len(t, rapidAlerts(t, f, tournament.RoomCode), 2)
}

func TestDismissAlert(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann")
	_, err := f.scores.UpsertScore(ScoreSubmission{PlayerId: players[0].Id, Hole: 1, Par: 3, Strokes: 2, Scratches: 1})
	require.NoError(t, err)

	alerts, err := f.cheat.ListAlerts(tournament.RoomCode)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, scoring.ParWithScratch, alerts[0].AlertType)

	require.NoError(t, f.cheat.DismissAlert(alerts[0].Id))
	require.NoError(t, f.cheat.DismissAlert(alerts[0].Id))
	require.NoError(t, f.cheat.DismissAlert("unknown"))

	alerts, err = f.cheat.ListAlerts(tournament.RoomCode)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestListAlertsFiltersByRoom(t *testing.T) {
	store := NewMemoryAlertStore(10)
	require.NoError(t, store.Add(&CheatAlert{Id: "a", RoomCode: "AAAAAA"}))
	require.NoError(t, store.Add(&CheatAlert{Id: "b", RoomCode: "BBBBBB"}))
	require.NoError(t, store.Add(&CheatAlert{Id: "c", RoomCode: "AAAAAA"}))

	room, err := store.List("AAAAAA")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, alertIds(room))

	all, err := store.List("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, alertIds(all))
}

func alertIds(alerts []*CheatAlert) []string {
	ids := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		ids = append(ids, alert.Id)
	}
	return ids
}

func TestMemoryAlertStoreDropsOldestBeyondCapacity(t *testing.T) {
	store := NewMemoryAlertStore(500)
	for i := range 510 {
		require.NoError(t, store.Add(&CheatAlert{Id: fmt.Sprintf("alert-%d", i), RoomCode: "ROOM22"}))
	}
	alerts, err := store.List("")
	require.NoError(t, err)
	require.Len(t, alerts, 500)
	assert.Equal(t, "alert-10", alerts[0].Id)
	assert.Equal(t, "alert-509", alerts[499].Id)
}

func TestMemoryWindowTracker(t *testing.T) {
	tracker := NewMemoryWindowTracker(2 * time.Minute)
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	count, _ := tracker.Record(1, 1, start)
	assert.Equal(t, 1, count)
	count, _ = tracker.Record(1, 1, start.Add(119*time.Second))
	assert.Equal(t, 2, count)
	count, _ = tracker.Record(1, 1, start.Add(120*time.Second))
	assert.Equal(t, 3, count, "a timestamp exactly one window old still counts")
	count, _ = tracker.Record(1, 1, start.Add(121*time.Second))
	assert.Equal(t, 3, count, "the first timestamp fell out of the window")
	count, _ = tracker.Record(1, 2, start.Add(121*time.Second))
	assert.Equal(t, 1, count)

	evicted, err := tracker.Evict(start.Add(10 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, evicted)
	count, _ = tracker.Record(1, 1, start.Add(11*time.Minute))
	assert.Equal(t, 1, count)
}

func TestEvictIdleWindows(t *testing.T) {
	f := newFixture()
	_, players := f.tournament(t, 18, "ann", "bob")
	submitQuickly(t, f, players[0].Id, 1, 1)
	f.clock.advance(3 * time.Minute)
	submitQuickly(t, f, players[1].Id, 1, 1)

	evicted, err := f.cheat.EvictIdleWindows()
	require.NoError(t, err)
	assert.Equal(t, 1, evicted)
}
