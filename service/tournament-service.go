package service

import (
	"scorecard/app_error"
	"scorecard/logger"
	"scorecard/repository"
	"scorecard/utils"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var holeFormats = []int{9, 18, 27, 36}

const defaultHoleCount = 18

type TournamentCreate struct {
	Name               string
	DirectorCredential string
	HoleCount          int
	IsHandicapped      bool
}

type PlayerCreate struct {
	PlayerName        string
	GroupName         *string
	LegacyCode        *string
	UniversalPlayerId *int
}

// TournamentService owns the lifecycle flags and the roster. Setup is active and not
// started, InProgress is active and started, Archived is inactive with a close time.
type TournamentService struct {
	tournaments      repository.TournamentStore
	players          repository.PlayerStore
	scores           repository.ScoreStore
	universalPlayers repository.UniversalPlayerStore
	events           EventSink
	logger           *logrus.Entry
	now              func() time.Time
}

func NewTournamentService(store repository.Store, events EventSink) *TournamentService {
	return &TournamentService{
		tournaments:      store,
		players:          store,
		scores:           store,
		universalPlayers: store,
		events:           events,
		logger:           logger.WithComponent("tournament_lifecycle"),
		now:              time.Now,
	}
}

func (s *TournamentService) GetTournament(tournamentId int) (*repository.Tournament, error) {
	return s.tournaments.GetTournamentById(tournamentId)
}

func (s *TournamentService) GetTournamentByRoomCode(roomCode string) (*repository.Tournament, error) {
	return s.tournaments.GetTournamentByRoomCode(strings.ToUpper(roomCode))
}

func (s *TournamentService) GetPlayers(tournamentId int) ([]*repository.TournamentPlayer, error) {
	if _, err := s.tournaments.GetTournamentById(tournamentId); err != nil {
		return nil, err
	}
	return s.players.GetPlayersForTournament(tournamentId)
}

func (s *TournamentService) Create(create TournamentCreate) (*repository.Tournament, error) {
	name := strings.TrimSpace(create.Name)
	if name == "" {
		return nil, app_error.Validation("tournament name is required")
	}
	if create.HoleCount == 0 {
		create.HoleCount = defaultHoleCount
	}
	if !utils.Contains(holeFormats, create.HoleCount) {
		return nil, app_error.Validation("hole count must be one of 9, 18, 27 or 36")
	}
	roomCode, err := uniqueCode(lookupTaken(s.tournaments.GetTournamentByRoomCode))
	if err != nil {
		return nil, err
	}
	tournament, err := s.tournaments.SaveTournament(&repository.Tournament{
		RoomCode:           roomCode,
		Name:               name,
		DirectorCredential: create.DirectorCredential,
		HoleCount:          create.HoleCount,
		IsActive:           true,
		IsHandicapped:      create.IsHandicapped,
		CreatedAt:          s.now(),
	})
	if err != nil {
		return nil, err
	}
	logger.WithTournament(tournament.Id).WithField("room_code", tournament.RoomCode).Info("tournament created")
	return tournament, nil
}

// Start moves an active tournament into play. Calling it again overwrites StartedAt.
func (s *TournamentService) Start(tournamentId int) (*repository.Tournament, error) {
	tournament, err := s.tournaments.GetTournamentById(tournamentId)
	if err != nil {
		return nil, err
	}
	if !tournament.IsActive {
		return nil, app_error.Validation("tournament %s is not active", tournament.RoomCode)
	}
	players, err := s.players.GetPlayersForTournament(tournamentId)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, app_error.Validation("tournament %s has no players", tournament.RoomCode)
	}
	startedAt := s.now()
	tournament.IsStarted = true
	tournament.StartedAt = &startedAt
	if tournament, err = s.tournaments.SaveTournament(tournament); err != nil {
		return nil, err
	}
	publish(s.events, s.logger, TournamentEvent{
		Name:         TournamentStarted,
		TournamentId: tournament.Id,
		RoomCode:     tournament.RoomCode,
		OccurredAt:   startedAt,
		Payload:      map[string]any{"player_count": len(players)},
	})
	return tournament, nil
}

// Archive closes the tournament at the given time.
func (s *TournamentService) Archive(tournamentId int, at time.Time) (*repository.Tournament, error) {
	tournament, err := s.tournaments.GetTournamentById(tournamentId)
	if err != nil {
		return nil, err
	}
	tournament.IsActive = false
	tournament.CompletedAt = &at
	if tournament, err = s.tournaments.SaveTournament(tournament); err != nil {
		return nil, err
	}
	logger.WithTournament(tournament.Id).Info("tournament archived")
	return tournament, nil
}

// ArchiveEmpty is the director's direct close. Tournaments with scores go through completion.
func (s *TournamentService) ArchiveEmpty(tournamentId int) (*repository.Tournament, error) {
	if _, err := s.tournaments.GetTournamentById(tournamentId); err != nil {
		return nil, err
	}
	scores, err := s.scores.GetScoresForTournament(tournamentId)
	if err != nil {
		return nil, err
	}
	for _, playerScores := range scores {
		if len(playerScores) > 0 {
			return nil, app_error.Validation("tournament has scores, complete it instead")
		}
	}
	return s.Archive(tournamentId, s.now())
}

// Reopen returns an archived tournament to live play without touching IsStarted.
func (s *TournamentService) Reopen(tournamentId int) (*repository.Tournament, error) {
	tournament, err := s.tournaments.GetTournamentById(tournamentId)
	if err != nil {
		return nil, err
	}
	tournament.IsActive = true
	tournament.CompletedAt = nil
	if tournament, err = s.tournaments.SaveTournament(tournament); err != nil {
		return nil, err
	}
	logger.WithTournament(tournament.Id).Info("tournament reopened")
	return tournament, nil
}

func (s *TournamentService) Delete(tournamentId int) error {
	if err := s.tournaments.DeleteTournament(tournamentId); err != nil {
		return err
	}
	logger.WithTournament(tournamentId).Warn("tournament deleted")
	return nil
}

func (s *TournamentService) AddPlayer(tournamentId int, create PlayerCreate) (*repository.TournamentPlayer, error) {
	name := strings.TrimSpace(create.PlayerName)
	if name == "" {
		return nil, app_error.Validation("player name is required")
	}
	tournament, err := s.tournaments.GetTournamentById(tournamentId)
	if err != nil {
		return nil, err
	}
	if !tournament.IsActive {
		return nil, app_error.Validation("tournament %s is not active", tournament.RoomCode)
	}
	if create.UniversalPlayerId != nil {
		if _, err := s.universalPlayers.GetUniversalPlayerById(*create.UniversalPlayerId); err != nil {
			return nil, err
		}
	}
	if create.LegacyCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*create.LegacyCode))
		create.LegacyCode = &code
	}
	return s.players.SavePlayer(&repository.TournamentPlayer{
		TournamentId:      tournamentId,
		PlayerName:        name,
		GroupName:         create.GroupName,
		LegacyCode:        create.LegacyCode,
		UniversalPlayerId: create.UniversalPlayerId,
	})
}

func allAssigned(players []*repository.TournamentPlayer) bool {
	assigned := 0
	for _, player := range players {
		if player.IsDnf {
			continue
		}
		if player.DeviceId == nil {
			return false
		}
		assigned++
	}
	return assigned > 0
}

// ClaimPlayer binds a device to a player. The last claim wins.
func (s *TournamentService) ClaimPlayer(playerId int, deviceId string) (*repository.TournamentPlayer, error) {
	if strings.TrimSpace(deviceId) == "" {
		return nil, app_error.Validation("device id is required")
	}
	player, err := s.players.GetPlayerById(playerId)
	if err != nil {
		return nil, err
	}
	tournament, err := s.tournaments.GetTournamentById(player.TournamentId)
	if err != nil {
		return nil, err
	}
	roster, err := s.players.GetPlayersForTournament(tournament.Id)
	if err != nil {
		return nil, err
	}
	wasAssigned := allAssigned(roster)

	player.DeviceId = &deviceId
	if player, err = s.players.SavePlayer(player); err != nil {
		return nil, err
	}
	for i, p := range roster {
		if p.Id == player.Id {
			roster[i] = player
		}
	}
	if tournament.IsStarted && !wasAssigned && allAssigned(roster) {
		publish(s.events, s.logger, TournamentEvent{
			Name:         AllPlayersAssigned,
			TournamentId: tournament.Id,
			RoomCode:     tournament.RoomCode,
			OccurredAt:   s.now(),
		})
	}
	return player, nil
}

// MarkDnf is terminal: the player stays on the roster but never ranks again.
func (s *TournamentService) MarkDnf(playerId int) (*repository.TournamentPlayer, error) {
	player, err := s.players.GetPlayerById(playerId)
	if err != nil {
		return nil, err
	}
	if player.IsDnf {
		return player, nil
	}
	player.IsDnf = true
	if player, err = s.players.SavePlayer(player); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"tournament_id": player.TournamentId,
		"player_id":     player.Id,
	}).Info("player marked dnf")
	return player, nil
}
