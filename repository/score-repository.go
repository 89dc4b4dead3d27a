package repository

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HoleScore struct {
	Id                 int       `gorm:"primaryKey"`
	TournamentPlayerId int       `gorm:"not null;uniqueIndex:idx_hole_scores_player_hole"`
	Hole               int       `gorm:"not null;uniqueIndex:idx_hole_scores_player_hole"`
	Par                int       `gorm:"not null"`
	Strokes            int       `gorm:"not null"`
	Scratches          int       `gorm:"not null"`
	Penalties          int       `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// Total is what the hole counts towards the player's stroke total.
func (s *HoleScore) Total() int {
	return s.Strokes + s.Scratches + s.Penalties
}

type ScoreKey struct {
	PlayerId int
	Hole     int
}

func (s *HoleScore) Key() ScoreKey {
	return ScoreKey{PlayerId: s.TournamentPlayerId, Hole: s.Hole}
}

// LatestPerHole is a legacy-compatibility shim: databases created before the
// (tournament_player_id, hole) unique index may still hold several rows per hole.
// The most recently written row wins; ties fall back to the higher id.
// The result is ordered by hole.
func LatestPerHole(scores []*HoleScore) []*HoleScore {
	latest := make(map[int]*HoleScore, len(scores))
	for _, score := range scores {
		current, ok := latest[score.Hole]
		if !ok || score.UpdatedAt.After(current.UpdatedAt) ||
			(score.UpdatedAt.Equal(current.UpdatedAt) && score.Id > current.Id) {
			latest[score.Hole] = score
		}
	}
	deduped := make([]*HoleScore, 0, len(latest))
	for _, score := range latest {
		deduped = append(deduped, score)
	}
	sort.Slice(deduped, func(i, j int) bool {
		return deduped[i].Hole < deduped[j].Hole
	})
	return deduped
}

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

func (r *ScoreRepository) GetScoresForPlayer(playerId int) ([]*HoleScore, error) {
	scores := make([]*HoleScore, 0)
	result := r.DB.Find(&scores, "tournament_player_id = ?", playerId)
	if result.Error != nil {
		return nil, translate(result.Error, "score", playerId)
	}
	return LatestPerHole(scores), nil
}

func (r *ScoreRepository) GetScoresForTournament(tournamentId int) (map[int][]*HoleScore, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetScoresForTournament"))
	defer timer.ObserveDuration()
	scores := make([]*HoleScore, 0)
	result := r.DB.
		Joins("JOIN tournament_players ON tournament_players.id = hole_scores.tournament_player_id").
		Where("tournament_players.tournament_id = ?", tournamentId).
		Find(&scores)
	if result.Error != nil {
		return nil, translate(result.Error, "score", tournamentId)
	}
	byPlayer := make(map[int][]*HoleScore)
	for _, score := range scores {
		byPlayer[score.TournamentPlayerId] = append(byPlayer[score.TournamentPlayerId], score)
	}
	for playerId, playerScores := range byPlayer {
		byPlayer[playerId] = LatestPerHole(playerScores)
	}
	return byPlayer, nil
}

func (r *ScoreRepository) UpsertScore(score *HoleScore) (*HoleScore, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("UpsertScore"))
	defer timer.ObserveDuration()
	score.Id = 0
	score.UpdatedAt = time.Now()
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tournament_player_id"}, {Name: "hole"}},
		DoUpdates: clause.AssignmentColumns([]string{"par", "strokes", "scratches", "penalties", "updated_at"}),
	}).Create(score)
	if result.Error != nil {
		return nil, translate(result.Error, "score", score.Key())
	}
	return score, nil
}
