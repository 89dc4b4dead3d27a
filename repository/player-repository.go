package repository

import (
	"gorm.io/gorm"
)

type TournamentPlayer struct {
	Id                int          `gorm:"primaryKey"`
	TournamentId      int          `gorm:"not null;index"`
	PlayerName        string       `gorm:"not null"`
	DeviceId          *string      `gorm:"null"`
	GroupName         *string      `gorm:"null"`
	LegacyCode        *string      `gorm:"null"`
	UniversalPlayerId *int         `gorm:"null;index"`
	IsDnf             bool         `gorm:"not null"`
	Scores            []*HoleScore `gorm:"foreignKey:TournamentPlayerId;constraint:OnDelete:CASCADE"`
}

type PlayerRepository struct {
	DB *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{DB: db}
}

func (r *PlayerRepository) GetPlayerById(playerId int) (*TournamentPlayer, error) {
	var player TournamentPlayer
	result := r.DB.First(&player, playerId)
	if result.Error != nil {
		return nil, translate(result.Error, "player", playerId)
	}
	return &player, nil
}

func (r *PlayerRepository) GetPlayersForTournament(tournamentId int) ([]*TournamentPlayer, error) {
	players := make([]*TournamentPlayer, 0)
	result := r.DB.Order("id").Find(&players, "tournament_id = ?", tournamentId)
	if result.Error != nil {
		return nil, translate(result.Error, "player", tournamentId)
	}
	return players, nil
}

func (r *PlayerRepository) SavePlayer(player *TournamentPlayer) (*TournamentPlayer, error) {
	result := r.DB.Omit("Scores").Save(player)
	if result.Error != nil {
		return nil, translate(result.Error, "player", player.Id)
	}
	return player, nil
}

func (r *PlayerRepository) RelinkUniversalPlayer(sourceId int, targetId int) error {
	result := r.DB.Model(&TournamentPlayer{}).
		Where("universal_player_id = ?", sourceId).
		Update("universal_player_id", targetId)
	return translate(result.Error, "player", sourceId)
}
