package service

import (
	"scorecard/repository"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []TournamentEvent
	err    error
}

func (r *recordingSink) Publish(event TournamentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *recordingSink) named(name EventName) []TournamentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := make([]TournamentEvent, 0)
	for _, event := range r.events {
		if event.Name == name {
			found = append(found, event)
		}
	}
	return found
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	store       *repository.MemoryStore
	sink        *recordingSink
	clock       *clock
	alerts      *MemoryAlertStore
	cheat       *CheatService
	scores      *ScoreService
	tournaments *TournamentService
	leaderboard *LeaderboardService
	handicaps   *HandicapService
	completion  *CompletionService
}

func newFixture() *fixture {
	f := &fixture{
		store:  repository.NewMemoryStore(),
		sink:   &recordingSink{},
		clock:  &clock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)},
		alerts: NewMemoryAlertStore(500),
	}
	f.cheat = NewCheatService(f.alerts, NewMemoryWindowTracker(2*time.Minute), 2*time.Minute, 3)
	f.cheat.now = f.clock.now
	f.scores = NewScoreService(f.store, f.cheat)
	f.tournaments = NewTournamentService(f.store, f.sink)
	f.tournaments.now = f.clock.now
	f.leaderboard = NewLeaderboardService(f.store)
	f.handicaps = NewHandicapService(f.store)
	f.completion = NewCompletionService(f.store, f.tournaments, f.leaderboard, f.handicaps, f.sink, 4)
	f.completion.now = f.clock.now
	return f
}

func (f *fixture) tournament(t *testing.T, holeCount int, names ...string) (*repository.Tournament, []*repository.TournamentPlayer) {
	t.Helper()
	tournament, err := f.tournaments.Create(TournamentCreate{Name: "club night", DirectorCredential: "secret", HoleCount: holeCount})
	require.NoError(t, err)
	players := make([]*repository.TournamentPlayer, 0, len(names))
	for _, name := range names {
		player, err := f.tournaments.AddPlayer(tournament.Id, PlayerCreate{PlayerName: name})
		require.NoError(t, err)
		players = append(players, player)
	}
	return tournament, players
}

func (f *fixture) universalPlayer(t *testing.T, name string) *repository.UniversalPlayer {
	t.Helper()
	player, err := f.handicaps.CreateUniversalPlayer(UniversalPlayerCreate{Name: name})
	require.NoError(t, err)
	return player
}

func (f *fixture) link(t *testing.T, player *repository.TournamentPlayer, universalPlayerId int) {
	t.Helper()
	player.UniversalPlayerId = &universalPlayerId
	_, err := f.store.SavePlayer(player)
	require.NoError(t, err)
}

// play submits par/strokes pairs for consecutive holes starting at 1, spaced far
// enough apart that rapid scoring never triggers.
func (f *fixture) play(t *testing.T, playerId int, parStrokes ...[2]int) {
	t.Helper()
	for i, ps := range parStrokes {
		_, err := f.scores.UpsertScore(ScoreSubmission{PlayerId: playerId, Hole: i + 1, Par: ps[0], Strokes: ps[1]})
		require.NoError(t, err)
		f.clock.advance(5 * time.Minute)
	}
}
