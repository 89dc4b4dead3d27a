package service

import (
	"scorecard/app_error"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTournament(t *testing.T) {
	f := newFixture()

	tournament, err := f.tournaments.Create(TournamentCreate{Name: "  league  ", DirectorCredential: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "league", tournament.Name)
	assert.Equal(t, 18, tournament.HoleCount)
	assert.True(t, tournament.IsActive)
	assert.False(t, tournament.IsStarted)
	assert.Len(t, tournament.RoomCode, 6)
	for _, c := range tournament.RoomCode {
		assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected %q in room code", c)
	}

	loaded, err := f.tournaments.GetTournamentByRoomCode(strings.ToLower(tournament.RoomCode))
	require.NoError(t, err)
	assert.Equal(t, tournament.Id, loaded.Id)

	_, err = f.tournaments.Create(TournamentCreate{Name: "odd", HoleCount: 12})
	assert.True(t, app_error.IsValidation(err))
	_, err = f.tournaments.Create(TournamentCreate{Name: " "})
	assert.True(t, app_error.IsValidation(err))
}

func TestStartTournament(t *testing.T) {
	f := newFixture()
	empty, _ := f.tournament(t, 18)
	_, err := f.tournaments.Start(empty.Id)
	assert.True(t, app_error.IsValidation(err), "needs at least one player")

	tournament, _ := f.tournament(t, 18, "ann")
	started, err := f.tournaments.Start(tournament.Id)
	require.NoError(t, err)
	assert.True(t, started.IsStarted)
	require.NotNil(t, started.StartedAt)
	firstStart := *started.StartedAt

	f.clock.advance(time.Hour)
	restarted, err := f.tournaments.Start(tournament.Id)
	require.NoError(t, err)
	assert.True(t, restarted.StartedAt.After(firstStart), "starting again resets the start time")

	events := f.sink.named(TournamentStarted)
	require.Len(t, events, 2)
	assert.Equal(t, tournament.RoomCode, events[0].RoomCode)
	assert.Equal(t, 1, events[0].Payload["player_count"])
}

func TestStartFailsWhenArchived(t *testing.T) {
	f := newFixture()
	tournament, _ := f.tournament(t, 18, "ann")
	_, err := f.tournaments.ArchiveEmpty(tournament.Id)
	require.NoError(t, err)
	_, err = f.tournaments.Start(tournament.Id)
	assert.True(t, app_error.IsValidation(err))
}

func TestEventSinkFailureDoesNotFailStart(t *testing.T) {
	f := newFixture()
	f.sink.err = assert.AnError
	tournament, _ := f.tournament(t, 18, "ann")
	started, err := f.tournaments.Start(tournament.Id)
	require.NoError(t, err)
	assert.True(t, started.IsStarted)
}

func TestArchiveAndReopen(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann")
	_, err := f.tournaments.Start(tournament.Id)
	require.NoError(t, err)
	f.play(t, players[0].Id, [2]int{3, 3})

	_, err = f.tournaments.ArchiveEmpty(tournament.Id)
	assert.True(t, app_error.IsValidation(err), "tournaments with scores are completed, not archived")

	closedAt := f.clock.now()
	archived, err := f.tournaments.Archive(tournament.Id, closedAt)
	require.NoError(t, err)
	assert.False(t, archived.IsActive)
	require.NotNil(t, archived.CompletedAt)
	assert.Equal(t, closedAt, *archived.CompletedAt)

	reopened, err := f.tournaments.Reopen(tournament.Id)
	require.NoError(t, err)
	assert.True(t, reopened.IsActive)
	assert.True(t, reopened.IsStarted)
	assert.Nil(t, reopened.CompletedAt)
	scores, err := f.scores.GetScores(players[0].Id)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestAddPlayerRequiresActiveTournament(t *testing.T) {
	f := newFixture()
	tournament, _ := f.tournament(t, 18)
	_, err := f.tournaments.AddPlayer(tournament.Id, PlayerCreate{PlayerName: ""})
	assert.True(t, app_error.IsValidation(err))

	missing := 99
	_, err = f.tournaments.AddPlayer(tournament.Id, PlayerCreate{PlayerName: "ann", UniversalPlayerId: &missing})
	assert.True(t, app_error.IsNotFound(err))

	code := " ab3cde "
	player, err := f.tournaments.AddPlayer(tournament.Id, PlayerCreate{PlayerName: "ann", LegacyCode: &code})
	require.NoError(t, err)
	assert.Equal(t, "AB3CDE", *player.LegacyCode)

	_, err = f.tournaments.ArchiveEmpty(tournament.Id)
	require.NoError(t, err)
	_, err = f.tournaments.AddPlayer(tournament.Id, PlayerCreate{PlayerName: "bob"})
	assert.True(t, app_error.IsValidation(err))
}

func TestClaimPlayerAnnouncesFullAssignmentOnce(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann", "bob", "cat")
	_, err := f.tournaments.Start(tournament.Id)
	require.NoError(t, err)
	_, err = f.tournaments.MarkDnf(players[2].Id)
	require.NoError(t, err)

	_, err = f.tournaments.ClaimPlayer(players[0].Id, "phone-1")
	require.NoError(t, err)
	assert.Empty(t, f.sink.named(AllPlayersAssigned))

	claimed, err := f.tournaments.ClaimPlayer(players[1].Id, "phone-2")
	require.NoError(t, err)
	assert.Equal(t, "phone-2", *claimed.DeviceId)
	assert.Len(t, f.sink.named(AllPlayersAssigned), 1)

	claimed, err = f.tournaments.ClaimPlayer(players[1].Id, "phone-3")
	require.NoError(t, err)
	assert.Equal(t, "phone-3", *claimed.DeviceId, "last claim wins")
	assert.Len(t, f.sink.named(AllPlayersAssigned), 1)

	_, err = f.tournaments.ClaimPlayer(players[1].Id, "")
	assert.True(t, app_error.IsValidation(err))
}

func TestClaimPlayerBeforeStartIsQuiet(t *testing.T) {
	f := newFixture()
	_, players := f.tournament(t, 18, "ann")
	_, err := f.tournaments.ClaimPlayer(players[0].Id, "phone-1")
	require.NoError(t, err)
	assert.Empty(t, f.sink.named(AllPlayersAssigned))
}

func TestMarkDnfExcludesPlayer(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann", "bob")
	f.play(t, players[0].Id, [2]int{3, 2})
	f.play(t, players[1].Id, [2]int{3, 5})

	marked, err := f.tournaments.MarkDnf(players[0].Id)
	require.NoError(t, err)
	assert.True(t, marked.IsDnf)
	again, err := f.tournaments.MarkDnf(players[0].Id)
	require.NoError(t, err)
	assert.True(t, again.IsDnf)

	leaderboard, err := f.leaderboard.GetLeaderboard(tournament.Id)
	require.NoError(t, err)
	require.Len(t, leaderboard, 1)
	assert.Equal(t, "bob", leaderboard[0].PlayerName)

	stats, err := f.leaderboard.GetAggregateStats(tournament.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PlayersWithScores)
	require.NotNil(t, stats.AverageScore)
	assert.Equal(t, 5.0, *stats.AverageScore)
}

func TestDeleteTournamentCascades(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann")
	f.play(t, players[0].Id, [2]int{3, 3})

	require.NoError(t, f.tournaments.Delete(tournament.Id))
	_, err := f.tournaments.GetTournament(tournament.Id)
	assert.True(t, app_error.IsNotFound(err))
	_, err = f.scores.GetScores(players[0].Id)
	assert.True(t, app_error.IsNotFound(err))
	_, err = f.leaderboard.GetLeaderboard(tournament.Id)
	assert.True(t, app_error.IsNotFound(err))
}
