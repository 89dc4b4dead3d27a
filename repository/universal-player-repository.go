package repository

import (
	"time"

	"gorm.io/gorm"
)

// UniversalPlayer is the persistent identity that carries a handicap across tournaments.
// IsProvisional holds while CompletedTournaments < 5 and Handicap is nil while it is 0,
// except after an administrative override.
type UniversalPlayer struct {
	Id                   int       `gorm:"primaryKey"`
	UniqueCode           string    `gorm:"not null;size:6;uniqueIndex"`
	Name                 string    `gorm:"not null"`
	Email                *string   `gorm:"null"`
	Phone                *string   `gorm:"null"`
	PinHash              *string   `gorm:"null"`
	Handicap             *float64  `gorm:"null"`
	IsProvisional        bool      `gorm:"not null;default:true"`
	CompletedTournaments int       `gorm:"not null;default:0"`
	CreatedAt            time.Time `gorm:"not null"`
}

type UniversalPlayerRepository struct {
	DB *gorm.DB
}

func NewUniversalPlayerRepository(db *gorm.DB) *UniversalPlayerRepository {
	return &UniversalPlayerRepository{DB: db}
}

func (r *UniversalPlayerRepository) GetUniversalPlayerById(universalPlayerId int) (*UniversalPlayer, error) {
	var player UniversalPlayer
	result := r.DB.First(&player, universalPlayerId)
	if result.Error != nil {
		return nil, translate(result.Error, "universal player", universalPlayerId)
	}
	return &player, nil
}

func (r *UniversalPlayerRepository) GetUniversalPlayerByCode(code string) (*UniversalPlayer, error) {
	var player UniversalPlayer
	result := r.DB.First(&player, "unique_code = ?", code)
	if result.Error != nil {
		return nil, translate(result.Error, "universal player", code)
	}
	return &player, nil
}

func (r *UniversalPlayerRepository) SaveUniversalPlayer(player *UniversalPlayer) (*UniversalPlayer, error) {
	result := r.DB.Save(player)
	if result.Error != nil {
		return nil, translate(result.Error, "universal player", player.Id)
	}
	return player, nil
}

func (r *UniversalPlayerRepository) DeleteUniversalPlayer(universalPlayerId int) error {
	result := r.DB.Delete(&UniversalPlayer{}, universalPlayerId)
	if result.Error == nil && result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "universal player", universalPlayerId)
	}
	return translate(result.Error, "universal player", universalPlayerId)
}
