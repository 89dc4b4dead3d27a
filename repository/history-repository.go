package repository

import (
	"time"

	"gorm.io/gorm"
)

// PlayerTournamentHistory rows are append-only. TournamentId is nil for manually entered results.
type PlayerTournamentHistory struct {
	Id                int       `gorm:"primaryKey"`
	UniversalPlayerId int       `gorm:"not null;index"`
	TournamentId      *int      `gorm:"null;index"`
	TournamentName    string    `gorm:"not null"`
	TotalStrokes      int       `gorm:"not null"`
	TotalPar          int       `gorm:"not null"`
	HolesPlayed       int       `gorm:"not null"`
	RelativeToPar     int       `gorm:"not null"`
	TotalScratches    int       `gorm:"not null"`
	TotalPenalties    int       `gorm:"not null"`
	CompletedAt       time.Time `gorm:"not null"`
	IsManualEntry     bool      `gorm:"not null"`
}

type HistoryRepository struct {
	DB *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

func (r *HistoryRepository) GetHistoryForUniversalPlayer(universalPlayerId int) ([]*PlayerTournamentHistory, error) {
	history := make([]*PlayerTournamentHistory, 0)
	result := r.DB.Order("completed_at, id").Find(&history, "universal_player_id = ?", universalPlayerId)
	if result.Error != nil {
		return nil, translate(result.Error, "history", universalPlayerId)
	}
	return history, nil
}

func (r *HistoryRepository) GetHistoryById(historyId int) (*PlayerTournamentHistory, error) {
	var history PlayerTournamentHistory
	result := r.DB.First(&history, historyId)
	if result.Error != nil {
		return nil, translate(result.Error, "history", historyId)
	}
	return &history, nil
}

func (r *HistoryRepository) CreateHistory(history *PlayerTournamentHistory) (*PlayerTournamentHistory, error) {
	result := r.DB.Create(history)
	if result.Error != nil {
		return nil, translate(result.Error, "history", history.UniversalPlayerId)
	}
	return history, nil
}

func (r *HistoryRepository) DeleteHistory(historyId int) error {
	result := r.DB.Delete(&PlayerTournamentHistory{}, historyId)
	if result.Error == nil && result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "history", historyId)
	}
	return translate(result.Error, "history", historyId)
}

func (r *HistoryRepository) RelinkHistory(sourceId int, targetId int) error {
	result := r.DB.Model(&PlayerTournamentHistory{}).
		Where("universal_player_id = ?", sourceId).
		Update("universal_player_id", targetId)
	return translate(result.Error, "history", sourceId)
}
