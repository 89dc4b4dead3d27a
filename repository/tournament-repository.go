package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Tournament struct {
	Id                 int                 `gorm:"primaryKey"`
	RoomCode           string              `gorm:"not null;size:6;uniqueIndex"`
	Name               string              `gorm:"not null"`
	DirectorCredential string              `gorm:"not null"`
	HoleCount          int                 `gorm:"not null;default:18"`
	IsActive           bool                `gorm:"not null"`
	IsStarted          bool                `gorm:"not null"`
	IsHandicapped      bool                `gorm:"not null"`
	CreatedAt          time.Time           `gorm:"not null"`
	StartedAt          *time.Time          `gorm:"null"`
	CompletedAt        *time.Time          `gorm:"null"`
	Players            []*TournamentPlayer `gorm:"foreignKey:TournamentId;constraint:OnDelete:CASCADE"`
}

type TournamentRepository struct {
	DB *gorm.DB
}

func NewTournamentRepository(db *gorm.DB) *TournamentRepository {
	return &TournamentRepository{DB: db}
}

func (r *TournamentRepository) GetTournamentById(tournamentId int) (*Tournament, error) {
	var tournament Tournament
	result := r.DB.First(&tournament, tournamentId)
	if result.Error != nil {
		return nil, translate(result.Error, "tournament", tournamentId)
	}
	return &tournament, nil
}

func (r *TournamentRepository) GetTournamentByRoomCode(roomCode string) (*Tournament, error) {
	var tournament Tournament
	result := r.DB.First(&tournament, "room_code = ?", roomCode)
	if result.Error != nil {
		return nil, translate(result.Error, "tournament", roomCode)
	}
	return &tournament, nil
}

func (r *TournamentRepository) SaveTournament(tournament *Tournament) (*Tournament, error) {
	result := r.DB.Omit("Players").Save(tournament)
	if result.Error != nil {
		return nil, translate(result.Error, "tournament", tournament.Id)
	}
	return tournament, nil
}

func (r *TournamentRepository) DeleteTournament(tournamentId int) error {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("DeleteTournament"))
	defer timer.ObserveDuration()
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		playerIds := tx.Model(&TournamentPlayer{}).Select("id").Where("tournament_id = ?", tournamentId)
		if err := tx.Where("tournament_player_id IN (?)", playerIds).Delete(&HoleScore{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tournament_id = ?", tournamentId).Delete(&TournamentPlayer{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Tournament{}, tournamentId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err, "tournament", tournamentId)
}
