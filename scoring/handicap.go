package scoring

import (
	"scorecard/repository"
	"scorecard/utils"
)

// ProvisionalThreshold is the number of completed tournaments after which a handicap is established.
const ProvisionalThreshold = 5

type HandicapResult struct {
	Handicap             *float64
	CompletedTournaments int
	IsProvisional        bool
}

// ComputeHandicap averages relative-to-par over the whole history, rounded to one decimal.
func ComputeHandicap(history []*repository.PlayerTournamentHistory) HandicapResult {
	if len(history) == 0 {
		return HandicapResult{IsProvisional: true}
	}
	sum := 0
	for _, entry := range history {
		sum += entry.RelativeToPar
	}
	handicap := utils.RoundTo1(float64(sum) / float64(len(history)))
	return HandicapResult{
		Handicap:             &handicap,
		CompletedTournaments: len(history),
		IsProvisional:        len(history) < ProvisionalThreshold,
	}
}

func (r HandicapResult) ApplyTo(player *repository.UniversalPlayer) {
	player.Handicap = r.Handicap
	player.CompletedTournaments = r.CompletedTournaments
	player.IsProvisional = r.IsProvisional
}

// HistoryFromEntry snapshots a final leaderboard line into a history row.
func HistoryFromEntry(entry *LeaderboardEntry, universalPlayerId int, tournament *repository.Tournament) *repository.PlayerTournamentHistory {
	tournamentId := tournament.Id
	history := &repository.PlayerTournamentHistory{
		UniversalPlayerId: universalPlayerId,
		TournamentId:      &tournamentId,
		TournamentName:    tournament.Name,
		TotalStrokes:      entry.TotalStrokes,
		TotalPar:          entry.TotalPar,
		HolesPlayed:       entry.HolesCompleted,
		RelativeToPar:     entry.RelativeToPar,
		TotalScratches:    entry.TotalScratches,
		TotalPenalties:    entry.TotalPenalties,
	}
	if tournament.CompletedAt != nil {
		history.CompletedAt = *tournament.CompletedAt
	}
	return history
}
