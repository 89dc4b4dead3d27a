package controller

import (
	"scorecard/repository"
	"time"
)

type TournamentResponse struct {
	Id            int        `json:"id"`
	RoomCode      string     `json:"room_code"`
	Name          string     `json:"name"`
	HoleCount     int        `json:"hole_count"`
	IsActive      bool       `json:"is_active"`
	IsStarted     bool       `json:"is_started"`
	IsHandicapped bool       `json:"is_handicapped"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}

type PlayerResponse struct {
	Id                int     `json:"id"`
	TournamentId      int     `json:"tournament_id"`
	PlayerName        string  `json:"player_name"`
	GroupName         *string `json:"group_name"`
	UniversalPlayerId *int    `json:"universal_player_id"`
	IsClaimed         bool    `json:"is_claimed"`
	IsDnf             bool    `json:"is_dnf"`
}

type ScoreResponse struct {
	PlayerId  int       `json:"player_id"`
	Hole      int       `json:"hole"`
	Par       int       `json:"par"`
	Strokes   int       `json:"strokes"`
	Scratches int       `json:"scratches"`
	Penalties int       `json:"penalties"`
	Total     int       `json:"total"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UniversalPlayerResponse struct {
	Id                   int       `json:"id"`
	UniqueCode           string    `json:"unique_code"`
	Name                 string    `json:"name"`
	Email                *string   `json:"email"`
	Phone                *string   `json:"phone"`
	Handicap             *float64  `json:"handicap"`
	IsProvisional        bool      `json:"is_provisional"`
	CompletedTournaments int       `json:"completed_tournaments"`
	CreatedAt            time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Id                int       `json:"id"`
	UniversalPlayerId int       `json:"universal_player_id"`
	TournamentId      *int      `json:"tournament_id"`
	TournamentName    string    `json:"tournament_name"`
	TotalStrokes      int       `json:"total_strokes"`
	TotalPar          int       `json:"total_par"`
	HolesPlayed       int       `json:"holes_played"`
	RelativeToPar     int       `json:"relative_to_par"`
	TotalScratches    int       `json:"total_scratches"`
	TotalPenalties    int       `json:"total_penalties"`
	CompletedAt       time.Time `json:"completed_at"`
	IsManualEntry     bool      `json:"is_manual_entry"`
}

func toTournamentResponse(tournament *repository.Tournament) *TournamentResponse {
	return &TournamentResponse{
		Id:            tournament.Id,
		RoomCode:      tournament.RoomCode,
		Name:          tournament.Name,
		HoleCount:     tournament.HoleCount,
		IsActive:      tournament.IsActive,
		IsStarted:     tournament.IsStarted,
		IsHandicapped: tournament.IsHandicapped,
		CreatedAt:     tournament.CreatedAt,
		StartedAt:     tournament.StartedAt,
		CompletedAt:   tournament.CompletedAt,
	}
}

func toPlayerResponse(player *repository.TournamentPlayer) *PlayerResponse {
	return &PlayerResponse{
		Id:                player.Id,
		TournamentId:      player.TournamentId,
		PlayerName:        player.PlayerName,
		GroupName:         player.GroupName,
		UniversalPlayerId: player.UniversalPlayerId,
		IsClaimed:         player.DeviceId != nil,
		IsDnf:             player.IsDnf,
	}
}

func toScoreResponse(score *repository.HoleScore) *ScoreResponse {
	return &ScoreResponse{
		PlayerId:  score.TournamentPlayerId,
		Hole:      score.Hole,
		Par:       score.Par,
		Strokes:   score.Strokes,
		Scratches: score.Scratches,
		Penalties: score.Penalties,
		Total:     score.Total(),
		UpdatedAt: score.UpdatedAt,
	}
}

func toUniversalPlayerResponse(player *repository.UniversalPlayer) *UniversalPlayerResponse {
	return &UniversalPlayerResponse{
		Id:                   player.Id,
		UniqueCode:           player.UniqueCode,
		Name:                 player.Name,
		Email:                player.Email,
		Phone:                player.Phone,
		Handicap:             player.Handicap,
		IsProvisional:        player.IsProvisional,
		CompletedTournaments: player.CompletedTournaments,
		CreatedAt:            player.CreatedAt,
	}
}

func toHistoryResponse(history *repository.PlayerTournamentHistory) *HistoryResponse {
	return &HistoryResponse{
		Id:                history.Id,
		UniversalPlayerId: history.UniversalPlayerId,
		TournamentId:      history.TournamentId,
		TournamentName:    history.TournamentName,
		TotalStrokes:      history.TotalStrokes,
		TotalPar:          history.TotalPar,
		HolesPlayed:       history.HolesPlayed,
		RelativeToPar:     history.RelativeToPar,
		TotalScratches:    history.TotalScratches,
		TotalPenalties:    history.TotalPenalties,
		CompletedAt:       history.CompletedAt,
		IsManualEntry:     history.IsManualEntry,
	}
}
