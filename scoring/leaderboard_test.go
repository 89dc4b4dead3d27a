package scoring

import (
	"scorecard/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holes(playerId int, parStrokes ...[2]int) []*repository.HoleScore {
	scores := make([]*repository.HoleScore, 0, len(parStrokes))
	for i, ps := range parStrokes {
		scores = append(scores, &repository.HoleScore{TournamentPlayerId: playerId, Hole: i + 1, Par: ps[0], Strokes: ps[1]})
	}
	return scores
}

// repeat builds n holes of par 4 and adds the given stroke offsets to the first holes.
func repeat(playerId, n int, offsets ...int) []*repository.HoleScore {
	scores := make([]*repository.HoleScore, 0, n)
	for i := 0; i < n; i++ {
		strokes := 4
		if i < len(offsets) {
			strokes += offsets[i]
		}
		scores = append(scores, &repository.HoleScore{TournamentPlayerId: playerId, Hole: i + 1, Par: 4, Strokes: strokes})
	}
	return scores
}

func TestComputeLeaderboardTotals(t *testing.T) {
	players := []*repository.TournamentPlayer{{Id: 1, PlayerName: "ann"}}
	scores := map[int][]*repository.HoleScore{
		1: {
			{TournamentPlayerId: 1, Hole: 1, Par: 3, Strokes: 3, Scratches: 1, Penalties: 1},
			{TournamentPlayerId: 1, Hole: 2, Par: 4, Strokes: 3},
		},
	}
	entries := ComputeLeaderboard(players, scores)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, 2, entry.HolesCompleted)
	assert.Equal(t, 8, entry.TotalStrokes)
	assert.Equal(t, 7, entry.TotalPar)
	assert.Equal(t, 1, entry.RelativeToPar)
	assert.Equal(t, 1, entry.TotalScratches)
	assert.Equal(t, 1, entry.TotalPenalties)
	assert.Equal(t, 1, entry.Rank)
}

func TestComputeLeaderboardCountsRepeatedHoleOnce(t *testing.T) {
	players := []*repository.TournamentPlayer{{Id: 1}}
	scores := map[int][]*repository.HoleScore{
		1: {
			{TournamentPlayerId: 1, Hole: 1, Par: 3, Strokes: 6},
			{TournamentPlayerId: 1, Hole: 1, Par: 3, Strokes: 2},
		},
	}
	entries := ComputeLeaderboard(players, scores)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].HolesCompleted)
	assert.Equal(t, 2, entries[0].TotalStrokes)
}

func TestComputeLeaderboardCanonicalOrder(t *testing.T) {
	// A: 18 holes, 70 strokes, -2. B: 16 holes, 70 strokes, -2. C: -1.
	a := repeat(1, 18, -1, -1)
	b := repeat(2, 16, -1, -1)
	for _, score := range b[8:] {
		score.Par++
		score.Strokes++
	}
	c := repeat(3, 18, -1)
	players := []*repository.TournamentPlayer{{Id: 3, PlayerName: "C"}, {Id: 2, PlayerName: "B"}, {Id: 1, PlayerName: "A"}}
	scores := map[int][]*repository.HoleScore{1: a, 2: b, 3: c}

	entries := ComputeLeaderboard(players, scores)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{entries[0].PlayerName, entries[1].PlayerName, entries[2].PlayerName})
	assert.Equal(t, -2, entries[0].RelativeToPar)
	assert.Equal(t, -2, entries[1].RelativeToPar)
	assert.Equal(t, 70, entries[0].TotalStrokes)
	assert.Equal(t, 70, entries[1].TotalStrokes)
	assert.Equal(t, 18, entries[0].HolesCompleted)
	assert.Equal(t, 16, entries[1].HolesCompleted)
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
}

func TestComputeLeaderboardTiesShareRank(t *testing.T) {
	players := []*repository.TournamentPlayer{{Id: 9}, {Id: 4}, {Id: 5}}
	scores := map[int][]*repository.HoleScore{
		9: holes(9, [2]int{3, 3}),
		4: holes(4, [2]int{3, 3}),
		5: holes(5, [2]int{3, 4}),
	}
	first := ComputeLeaderboard(players, scores)
	second := ComputeLeaderboard(players, scores)
	assert.Equal(t, []int{4, 9, 5}, []int{first[0].PlayerId, first[1].PlayerId, first[2].PlayerId})
	assert.Equal(t, []int{1, 1, 3}, []int{first[0].Rank, first[1].Rank, first[2].Rank})
	assert.Equal(t, first, second)
}

func TestComputeLeaderboardExcludesDnfAndUnscored(t *testing.T) {
	players := []*repository.TournamentPlayer{
		{Id: 1, PlayerName: "dnf", IsDnf: true},
		{Id: 2, PlayerName: "idle"},
		{Id: 3, PlayerName: "live"},
	}
	scores := map[int][]*repository.HoleScore{
		1: holes(1, [2]int{3, 1}),
		3: holes(3, [2]int{3, 4}),
	}
	entries := ComputeLeaderboard(players, scores)
	require.Len(t, entries, 1)
	assert.Equal(t, "live", entries[0].PlayerName)

	stats := ComputeAggregateStats(players, scores)
	assert.Equal(t, 2, stats.PlayerCount)
	assert.Equal(t, 1, stats.PlayersWithScores)
}

func TestComputeAggregateStats(t *testing.T) {
	players := []*repository.TournamentPlayer{{Id: 1}, {Id: 2}, {Id: 3}}
	scores := map[int][]*repository.HoleScore{
		1: holes(1, [2]int{3, 4}, [2]int{4, 4}, [2]int{5, 5}),
		2: holes(2, [2]int{3, 2}),
		3: holes(3, [2]int{3, 3}, [2]int{3, 4}),
	}
	stats := ComputeAggregateStats(players, scores)
	assert.Equal(t, 3, stats.PlayerCount)
	assert.Equal(t, 3, stats.PlayersWithScores)
	assert.Equal(t, 3, stats.MostHolesCompleted)
	assert.Equal(t, 1, stats.LeastHolesCompleted)
	require.NotNil(t, stats.AverageScore)
	assert.Equal(t, 7.3, *stats.AverageScore)
	require.NotNil(t, stats.AverageRelativeToPar)
	assert.Equal(t, 0.3, *stats.AverageRelativeToPar)
}

func TestComputeAggregateStatsWithoutScores(t *testing.T) {
	players := []*repository.TournamentPlayer{{Id: 1}, {Id: 2, IsDnf: true}}
	stats := ComputeAggregateStats(players, map[int][]*repository.HoleScore{})
	assert.Equal(t, 1, stats.PlayerCount)
	assert.Equal(t, 0, stats.PlayersWithScores)
	assert.Equal(t, 0, stats.MostHolesCompleted)
	assert.Equal(t, 0, stats.LeastHolesCompleted)
	assert.Nil(t, stats.AverageScore)
	assert.Nil(t, stats.AverageRelativeToPar)
}
