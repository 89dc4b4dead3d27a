package service

import (
	"scorecard/repository"
	"scorecard/scoring"
)

// LeaderboardService recomputes standings from the ledger on every call.
type LeaderboardService struct {
	tournaments repository.TournamentStore
	players     repository.PlayerStore
	scores      repository.ScoreStore
}

func NewLeaderboardService(store repository.Store) *LeaderboardService {
	return &LeaderboardService{tournaments: store, players: store, scores: store}
}

func (s *LeaderboardService) load(tournamentId int) ([]*repository.TournamentPlayer, map[int][]*repository.HoleScore, error) {
	if _, err := s.tournaments.GetTournamentById(tournamentId); err != nil {
		return nil, nil, err
	}
	players, err := s.players.GetPlayersForTournament(tournamentId)
	if err != nil {
		return nil, nil, err
	}
	scores, err := s.scores.GetScoresForTournament(tournamentId)
	if err != nil {
		return nil, nil, err
	}
	return players, scores, nil
}

func (s *LeaderboardService) GetLeaderboard(tournamentId int) ([]*scoring.LeaderboardEntry, error) {
	players, scores, err := s.load(tournamentId)
	if err != nil {
		return nil, err
	}
	return scoring.ComputeLeaderboard(players, scores), nil
}

func (s *LeaderboardService) GetAggregateStats(tournamentId int) (*scoring.TournamentStats, error) {
	players, scores, err := s.load(tournamentId)
	if err != nil {
		return nil, err
	}
	return scoring.ComputeAggregateStats(players, scores), nil
}
