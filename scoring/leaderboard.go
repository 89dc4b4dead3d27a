package scoring

import (
	"scorecard/repository"
	"scorecard/utils"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type LeaderboardEntry struct {
	PlayerId          int     `json:"player_id"`
	PlayerName        string  `json:"player_name"`
	GroupName         *string `json:"group_name"`
	UniversalPlayerId *int    `json:"universal_player_id"`
	Rank              int     `json:"rank"`
	HolesCompleted    int     `json:"holes_completed"`
	TotalStrokes      int     `json:"total_strokes"`
	TotalPar          int     `json:"total_par"`
	RelativeToPar     int     `json:"relative_to_par"`
	TotalScratches    int     `json:"total_scratches"`
	TotalPenalties    int     `json:"total_penalties"`
}

type TournamentStats struct {
	PlayerCount          int      `json:"player_count"`
	PlayersWithScores    int      `json:"players_with_scores"`
	MostHolesCompleted   int      `json:"most_holes_completed"`
	LeastHolesCompleted  int      `json:"least_holes_completed"`
	AverageScore         *float64 `json:"average_score"`
	AverageRelativeToPar *float64 `json:"average_relative_to_par"`
}

var leaderboardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "scorecard_leaderboard_duration_seconds",
	Help: "Duration of a full leaderboard computation",
	Buckets: []float64{
		0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1,
	},
})

// entryFor sums a player's card. Later entries for the same hole replace earlier ones.
func entryFor(player *repository.TournamentPlayer, scores []*repository.HoleScore) *LeaderboardEntry {
	byHole := make(map[int]*repository.HoleScore, len(scores))
	for _, score := range scores {
		byHole[score.Hole] = score
	}
	entry := &LeaderboardEntry{
		PlayerId:          player.Id,
		PlayerName:        player.PlayerName,
		GroupName:         player.GroupName,
		UniversalPlayerId: player.UniversalPlayerId,
		HolesCompleted:    len(byHole),
	}
	for _, score := range byHole {
		entry.TotalStrokes += score.Total()
		entry.TotalPar += score.Par
		entry.TotalScratches += score.Scratches
		entry.TotalPenalties += score.Penalties
	}
	entry.RelativeToPar = entry.TotalStrokes - entry.TotalPar
	return entry
}

// ranksBefore is the canonical leaderboard order: relative to par ascending, then
// total strokes ascending, then holes completed descending.
func ranksBefore(a, b *LeaderboardEntry) bool {
	if a.RelativeToPar != b.RelativeToPar {
		return a.RelativeToPar < b.RelativeToPar
	}
	if a.TotalStrokes != b.TotalStrokes {
		return a.TotalStrokes < b.TotalStrokes
	}
	return a.HolesCompleted > b.HolesCompleted
}

func isTiedWithNext(index int, entries []*LeaderboardEntry) bool {
	if index >= len(entries)-1 {
		return false
	}
	return !ranksBefore(entries[index], entries[index+1]) && !ranksBefore(entries[index+1], entries[index])
}

func scoredEntries(players []*repository.TournamentPlayer, scoresByPlayer map[int][]*repository.HoleScore) []*LeaderboardEntry {
	entries := make([]*LeaderboardEntry, 0, len(players))
	for _, player := range players {
		if player.IsDnf {
			continue
		}
		entry := entryFor(player, scoresByPlayer[player.Id])
		if entry.HolesCompleted == 0 {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// ComputeLeaderboard ranks every non-DNF player with at least one scored hole.
// Tied players share a rank and keep player id order among themselves.
func ComputeLeaderboard(players []*repository.TournamentPlayer, scoresByPlayer map[int][]*repository.HoleScore) []*LeaderboardEntry {
	timer := prometheus.NewTimer(leaderboardDuration)
	defer timer.ObserveDuration()

	entries := scoredEntries(players, scoresByPlayer)
	sort.SliceStable(entries, func(i, j int) bool {
		if ranksBefore(entries[i], entries[j]) || ranksBefore(entries[j], entries[i]) {
			return ranksBefore(entries[i], entries[j])
		}
		return entries[i].PlayerId < entries[j].PlayerId
	})
	rank := 1
	for i, entry := range entries {
		entry.Rank = rank
		if !isTiedWithNext(i, entries) {
			rank = i + 2
		}
	}
	return entries
}

// ComputeAggregateStats summarises the non-DNF roster. Averages cover only players
// with scores and stay nil when nobody has scored yet.
func ComputeAggregateStats(players []*repository.TournamentPlayer, scoresByPlayer map[int][]*repository.HoleScore) *TournamentStats {
	stats := &TournamentStats{
		PlayerCount: len(utils.Filter(players, func(p *repository.TournamentPlayer) bool { return !p.IsDnf })),
	}
	entries := scoredEntries(players, scoresByPlayer)
	stats.PlayersWithScores = len(entries)
	if len(entries) == 0 {
		return stats
	}
	stats.LeastHolesCompleted = entries[0].HolesCompleted
	strokeSum, relativeSum := 0, 0
	for _, entry := range entries {
		stats.MostHolesCompleted = max(stats.MostHolesCompleted, entry.HolesCompleted)
		stats.LeastHolesCompleted = min(stats.LeastHolesCompleted, entry.HolesCompleted)
		strokeSum += entry.TotalStrokes
		relativeSum += entry.RelativeToPar
	}
	averageScore := utils.RoundTo1(float64(strokeSum) / float64(len(entries)))
	averageRelative := utils.RoundTo1(float64(relativeSum) / float64(len(entries)))
	stats.AverageScore = &averageScore
	stats.AverageRelativeToPar = &averageRelative
	return stats
}
