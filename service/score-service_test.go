package service

import (
	"scorecard/app_error"
	"scorecard/scoring"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertScoreReplacesPreviousRecord(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann")

	_, err := f.scores.UpsertScore(ScoreSubmission{PlayerId: players[0].Id, Hole: 4, Par: 4, Strokes: 6, Penalties: 1})
	require.NoError(t, err)
	_, err = f.scores.UpsertScore(ScoreSubmission{PlayerId: players[0].Id, Hole: 4, Par: 4, Strokes: 7})
	require.NoError(t, err)

	scores, err := f.scores.GetScores(players[0].Id)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 7, scores[0].Strokes)
	assert.Equal(t, 0, scores[0].Penalties)

	leaderboard, err := f.leaderboard.GetLeaderboard(tournament.Id)
	require.NoError(t, err)
	require.Len(t, leaderboard, 1)
	assert.Equal(t, 1, leaderboard[0].HolesCompleted)
	assert.Equal(t, 7, leaderboard[0].TotalStrokes)
	assert.Equal(t, 3, leaderboard[0].RelativeToPar)
}

func TestUpsertScoreValidation(t *testing.T) {
	f := newFixture()
	_, players := f.tournament(t, 9, "ann")
	playerId := players[0].Id

	for name, submission := range map[string]ScoreSubmission{
		"hole zero":          {PlayerId: playerId, Hole: 0, Par: 3, Strokes: 3},
		"hole past format":   {PlayerId: playerId, Hole: 10, Par: 3, Strokes: 3},
		"negative strokes":   {PlayerId: playerId, Hole: 1, Par: 3, Strokes: -1},
		"negative scratches": {PlayerId: playerId, Hole: 1, Par: 3, Strokes: 3, Scratches: -1},
		"negative penalties": {PlayerId: playerId, Hole: 1, Par: 3, Strokes: 3, Penalties: -2},
		"negative par":       {PlayerId: playerId, Hole: 1, Par: -3, Strokes: 3},
	} {
		_, err := f.scores.UpsertScore(submission)
		assert.True(t, app_error.IsValidation(err), name)
	}
	scores, err := f.scores.GetScores(playerId)
	require.NoError(t, err)
	assert.Empty(t, scores)

	_, err = f.scores.UpsertScore(ScoreSubmission{PlayerId: playerId, Hole: 9, Par: 3, Strokes: 3})
	assert.NoError(t, err)
}

func TestUpsertScoreUnknownPlayer(t *testing.T) {
	f := newFixture()
	_, err := f.scores.UpsertScore(ScoreSubmission{PlayerId: 404, Hole: 1, Par: 3, Strokes: 3})
	assert.True(t, app_error.IsNotFound(err))
	_, err = f.scores.GetScores(404)
	assert.True(t, app_error.IsNotFound(err))
}

func TestUpsertScoreAlertsDoNotBlockWrite(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann")

	score, err := f.scores.UpsertScore(ScoreSubmission{PlayerId: players[0].Id, Hole: 2, Par: 3, Strokes: 1, Scratches: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, score.Strokes)

	alerts, err := f.cheat.ListAlerts(tournament.RoomCode)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, scoring.BelowParWithScratch, alerts[0].AlertType)
	assert.Equal(t, scoring.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, 2, alerts[0].Hole)
	assert.Equal(t, "ann", alerts[0].PlayerName)
}

func TestUpsertScoreFlagsReductionAgainstStoredScore(t *testing.T) {
	f := newFixture()
	tournament, players := f.tournament(t, 18, "ann")
	f.play(t, players[0].Id, [2]int{4, 6})

	_, err := f.scores.UpsertScore(ScoreSubmission{PlayerId: players[0].Id, Hole: 1, Par: 4, Strokes: 4})
	require.NoError(t, err)

	alerts, err := f.cheat.ListAlerts(tournament.RoomCode)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, scoring.ScoreReduction, alerts[0].AlertType)
}
