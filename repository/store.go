package repository

import (
	"errors"
	"fmt"
	"scorecard/app_error"

	"gorm.io/gorm"
)

// The stores below are the only persistence surface the engine depends on: insert, update
// and select by primary or composite key. GormStore and MemoryStore both satisfy Store.

type TournamentStore interface {
	GetTournamentById(tournamentId int) (*Tournament, error)
	GetTournamentByRoomCode(roomCode string) (*Tournament, error)
	SaveTournament(tournament *Tournament) (*Tournament, error)
	// DeleteTournament removes the tournament with all of its players and scores.
	DeleteTournament(tournamentId int) error
}

type PlayerStore interface {
	GetPlayerById(playerId int) (*TournamentPlayer, error)
	GetPlayersForTournament(tournamentId int) ([]*TournamentPlayer, error)
	SavePlayer(player *TournamentPlayer) (*TournamentPlayer, error)
	RelinkUniversalPlayer(sourceId int, targetId int) error
}

type ScoreStore interface {
	GetScoresForPlayer(playerId int) ([]*HoleScore, error)
	GetScoresForTournament(tournamentId int) (map[int][]*HoleScore, error)
	// UpsertScore replaces the whole record stored under (TournamentPlayerId, Hole).
	UpsertScore(score *HoleScore) (*HoleScore, error)
}

type UniversalPlayerStore interface {
	GetUniversalPlayerById(universalPlayerId int) (*UniversalPlayer, error)
	GetUniversalPlayerByCode(code string) (*UniversalPlayer, error)
	SaveUniversalPlayer(player *UniversalPlayer) (*UniversalPlayer, error)
	DeleteUniversalPlayer(universalPlayerId int) error
}

type HistoryStore interface {
	GetHistoryForUniversalPlayer(universalPlayerId int) ([]*PlayerTournamentHistory, error)
	GetHistoryById(historyId int) (*PlayerTournamentHistory, error)
	CreateHistory(history *PlayerTournamentHistory) (*PlayerTournamentHistory, error)
	DeleteHistory(historyId int) error
	RelinkHistory(sourceId int, targetId int) error
}

type Store interface {
	TournamentStore
	PlayerStore
	ScoreStore
	UniversalPlayerStore
	HistoryStore
}

type GormStore struct {
	*TournamentRepository
	*PlayerRepository
	*ScoreRepository
	*UniversalPlayerRepository
	*HistoryRepository
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		TournamentRepository:      NewTournamentRepository(db),
		PlayerRepository:          NewPlayerRepository(db),
		ScoreRepository:           NewScoreRepository(db),
		UniversalPlayerRepository: NewUniversalPlayerRepository(db),
		HistoryRepository:         NewHistoryRepository(db),
	}
}

func Models() []any {
	return []any{
		&Tournament{},
		&TournamentPlayer{},
		&HoleScore{},
		&UniversalPlayer{},
		&PlayerTournamentHistory{},
	}
}

// translate keeps business outcomes apart from store failures.
func translate(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return app_error.NotFound(entity, key)
	}
	return fmt.Errorf("%s store: %w", entity, err)
}
