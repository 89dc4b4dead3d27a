package service

import (
	"scorecard/app_error"
	"scorecard/logger"
	"scorecard/metrics"
	"scorecard/repository"

	"github.com/sirupsen/logrus"
)

const MaxHoles = 36

type ScoreSubmission struct {
	PlayerId  int
	Hole      int
	Par       int
	Strokes   int
	Scratches int
	Penalties int
}

func (s ScoreSubmission) validate() error {
	if s.Par < 0 || s.Strokes < 0 || s.Scratches < 0 || s.Penalties < 0 {
		return app_error.Validation("par, strokes, scratches and penalties must not be negative")
	}
	return nil
}

// ScoreService is the score ledger. Writes are last-write-wins per (player, hole) with
// no concurrency token: a director's edit racing a live submission is not detected.
type ScoreService struct {
	tournaments  repository.TournamentStore
	players      repository.PlayerStore
	scores       repository.ScoreStore
	cheatService *CheatService
	broadcaster  Broadcaster
	logger       *logrus.Entry
}

func NewScoreService(store repository.Store, cheatService *CheatService) *ScoreService {
	return &ScoreService{
		tournaments:  store,
		players:      store,
		scores:       store,
		cheatService: cheatService,
		broadcaster:  noopBroadcaster{},
		logger:       logger.WithComponent("score_ledger"),
	}
}

func (s *ScoreService) SetBroadcaster(broadcaster Broadcaster) {
	s.broadcaster = broadcaster
}

func previousScore(scores []*repository.HoleScore, hole int) *repository.HoleScore {
	for _, score := range scores {
		if score.Hole == hole {
			return score
		}
	}
	return nil
}

// UpsertScore validates and stores one hole, replacing any earlier record for it.
// Cheat inspection runs first against the pre-write state; its outcome never blocks the write.
func (s *ScoreService) UpsertScore(submission ScoreSubmission) (*repository.HoleScore, error) {
	if err := submission.validate(); err != nil {
		metrics.ScoreRejectionsTotal.Inc()
		return nil, err
	}
	player, err := s.players.GetPlayerById(submission.PlayerId)
	if err != nil {
		return nil, err
	}
	tournament, err := s.tournaments.GetTournamentById(player.TournamentId)
	if err != nil {
		return nil, err
	}
	maxHoles := tournament.HoleCount
	if maxHoles <= 0 || maxHoles > MaxHoles {
		maxHoles = MaxHoles
	}
	if submission.Hole < 1 || submission.Hole > maxHoles {
		metrics.ScoreRejectionsTotal.Inc()
		return nil, app_error.Validation("hole must be between 1 and %d", maxHoles)
	}

	existing, err := s.scores.GetScoresForPlayer(player.Id)
	if err != nil {
		return nil, err
	}
	s.cheatService.Inspect(tournament, player, submission.Hole, submission.Par, submission.Strokes,
		submission.Scratches, previousScore(existing, submission.Hole))

	score, err := s.scores.UpsertScore(&repository.HoleScore{
		TournamentPlayerId: player.Id,
		Hole:               submission.Hole,
		Par:                submission.Par,
		Strokes:            submission.Strokes,
		Scratches:          submission.Scratches,
		Penalties:          submission.Penalties,
	})
	if err != nil {
		return nil, err
	}
	metrics.ScoreSubmissionsTotal.Inc()
	s.cheatService.RecordSubmission(tournament, player, submission.Hole, submission.Par, submission.Scratches)
	s.logger.WithFields(logrus.Fields{
		"tournament_id": tournament.Id,
		"player_id":     player.Id,
		"hole":          score.Hole,
	}).Debug("score stored")
	s.broadcaster.Broadcast(tournament.RoomCode, "score", score)
	return score, nil
}

// GetScores returns the current record for every scored hole, ordered by hole.
func (s *ScoreService) GetScores(playerId int) ([]*repository.HoleScore, error) {
	if _, err := s.players.GetPlayerById(playerId); err != nil {
		return nil, err
	}
	return s.scores.GetScoresForPlayer(playerId)
}
