package service

import (
	"scorecard/app_error"
	"scorecard/logger"
	"scorecard/repository"
	"scorecard/scoring"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type HandicapService struct {
	universalPlayers repository.UniversalPlayerStore
	players          repository.PlayerStore
	history          repository.HistoryStore
	logger           *logrus.Entry
}

func NewHandicapService(store repository.Store) *HandicapService {
	return &HandicapService{
		universalPlayers: store,
		players:          store,
		history:          store,
		logger:           logger.WithComponent("handicap_engine"),
	}
}

type UniversalPlayerCreate struct {
	Name  string
	Email *string
	Phone *string
}

func (s *HandicapService) CreateUniversalPlayer(create UniversalPlayerCreate) (*repository.UniversalPlayer, error) {
	name := strings.TrimSpace(create.Name)
	if name == "" {
		return nil, app_error.Validation("name is required")
	}
	code, err := uniqueCode(lookupTaken(s.universalPlayers.GetUniversalPlayerByCode))
	if err != nil {
		return nil, err
	}
	return s.universalPlayers.SaveUniversalPlayer(&repository.UniversalPlayer{
		UniqueCode:    code,
		Name:          name,
		Email:         create.Email,
		Phone:         create.Phone,
		IsProvisional: true,
		CreatedAt:     time.Now(),
	})
}

func (s *HandicapService) GetUniversalPlayer(universalPlayerId int) (*repository.UniversalPlayer, error) {
	return s.universalPlayers.GetUniversalPlayerById(universalPlayerId)
}

func (s *HandicapService) GetHistory(universalPlayerId int) ([]*repository.PlayerTournamentHistory, error) {
	if _, err := s.universalPlayers.GetUniversalPlayerById(universalPlayerId); err != nil {
		return nil, err
	}
	return s.history.GetHistoryForUniversalPlayer(universalPlayerId)
}

// Recalculate derives handicap, completed count and provisional status from the full
// history. It also undoes any earlier administrative override.
func (s *HandicapService) Recalculate(universalPlayerId int) (*repository.UniversalPlayer, error) {
	player, err := s.universalPlayers.GetUniversalPlayerById(universalPlayerId)
	if err != nil {
		return nil, err
	}
	history, err := s.history.GetHistoryForUniversalPlayer(universalPlayerId)
	if err != nil {
		return nil, err
	}
	scoring.ComputeHandicap(history).ApplyTo(player)
	s.logger.WithFields(logrus.Fields{
		"universal_player_id": player.Id,
		"completed":           player.CompletedTournaments,
	}).Debug("handicap recalculated")
	return s.universalPlayers.SaveUniversalPlayer(player)
}

// OverrideHandicap is the administrative escape hatch: the value sticks, with
// IsProvisional forced off, until the next history change or merge recalculates it.
func (s *HandicapService) OverrideHandicap(universalPlayerId int, handicap float64) (*repository.UniversalPlayer, error) {
	player, err := s.universalPlayers.GetUniversalPlayerById(universalPlayerId)
	if err != nil {
		return nil, err
	}
	player.Handicap = &handicap
	player.IsProvisional = false
	s.logger.WithField("universal_player_id", player.Id).Info("handicap overridden")
	return s.universalPlayers.SaveUniversalPlayer(player)
}

// Merge moves every tournament link and history row from source to target, deletes
// source and recalculates target. History values are not touched.
func (s *HandicapService) Merge(sourceId int, targetId int) (*repository.UniversalPlayer, error) {
	if sourceId == targetId {
		return nil, app_error.Validation("cannot merge a player into itself")
	}
	if _, err := s.universalPlayers.GetUniversalPlayerById(sourceId); err != nil {
		return nil, err
	}
	if _, err := s.universalPlayers.GetUniversalPlayerById(targetId); err != nil {
		return nil, err
	}
	if err := s.players.RelinkUniversalPlayer(sourceId, targetId); err != nil {
		return nil, err
	}
	if err := s.history.RelinkHistory(sourceId, targetId); err != nil {
		return nil, err
	}
	if err := s.universalPlayers.DeleteUniversalPlayer(sourceId); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"source_id": sourceId, "target_id": targetId}).Info("universal players merged")
	return s.Recalculate(targetId)
}

type ManualHistoryCreate struct {
	TournamentName string
	TotalStrokes   int
	TotalPar       int
	HolesPlayed    int
	TotalScratches int
	TotalPenalties int
	CompletedAt    time.Time
}

func (s *HandicapService) AddManualHistory(universalPlayerId int, create ManualHistoryCreate) (*repository.PlayerTournamentHistory, error) {
	if strings.TrimSpace(create.TournamentName) == "" {
		return nil, app_error.Validation("tournament name is required")
	}
	if create.HolesPlayed < 1 {
		return nil, app_error.Validation("holes played must be at least 1")
	}
	if create.TotalStrokes < 0 || create.TotalPar < 0 || create.TotalScratches < 0 || create.TotalPenalties < 0 {
		return nil, app_error.Validation("totals must not be negative")
	}
	if _, err := s.universalPlayers.GetUniversalPlayerById(universalPlayerId); err != nil {
		return nil, err
	}
	if create.CompletedAt.IsZero() {
		create.CompletedAt = time.Now()
	}
	history, err := s.history.CreateHistory(&repository.PlayerTournamentHistory{
		UniversalPlayerId: universalPlayerId,
		TournamentName:    strings.TrimSpace(create.TournamentName),
		TotalStrokes:      create.TotalStrokes,
		TotalPar:          create.TotalPar,
		HolesPlayed:       create.HolesPlayed,
		RelativeToPar:     create.TotalStrokes - create.TotalPar,
		TotalScratches:    create.TotalScratches,
		TotalPenalties:    create.TotalPenalties,
		CompletedAt:       create.CompletedAt,
		IsManualEntry:     true,
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.Recalculate(universalPlayerId); err != nil {
		return nil, err
	}
	return history, nil
}

// RemoveHistory deletes one row, manual or not, and recalculates its owner.
func (s *HandicapService) RemoveHistory(historyId int) (*repository.UniversalPlayer, error) {
	history, err := s.history.GetHistoryById(historyId)
	if err != nil {
		return nil, err
	}
	if err := s.history.DeleteHistory(historyId); err != nil {
		return nil, err
	}
	return s.Recalculate(history.UniversalPlayerId)
}
