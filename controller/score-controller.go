package controller

import (
	"scorecard/app_error"
	"scorecard/service"
	"scorecard/utils"

	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	scoreService       *service.ScoreService
	leaderboardService *service.LeaderboardService
}

func NewScoreController(services *Services) *ScoreController {
	return &ScoreController{
		scoreService:       services.Scores,
		leaderboardService: services.Leaderboard,
	}
}

type ScoreSubmit struct {
	Par       int `json:"par"`
	Strokes   int `json:"strokes"`
	Scratches int `json:"scratches"`
	Penalties int `json:"penalties"`
}

func setupScoreController(services *Services) []RouteInfo {
	e := NewScoreController(services)
	return []RouteInfo{
		{Method: "PUT", Path: "/players/:player_id/scores/:hole", HandlerFunc: e.upsertScoreHandler()},
		{Method: "GET", Path: "/players/:player_id/scores", HandlerFunc: e.getScorecardHandler()},
		{Method: "GET", Path: "/tournaments/:tournament_id/leaderboard", HandlerFunc: e.getLeaderboardHandler()},
		{Method: "GET", Path: "/tournaments/:tournament_id/stats", HandlerFunc: e.getStatsHandler()},
	}
}

// @id UpsertScore
// @Description Stores the score for one hole, replacing any earlier score for it
// @Tags scores
// @Accept json
// @Produce json
// @Param player_id path int true "Player Id"
// @Param hole path int true "Hole number"
// @Param body body ScoreSubmit true "Score"
// @Success 200 {object} ScoreResponse
// @Router /players/{player_id}/scores/{hole} [put]
func (e *ScoreController) upsertScoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, ok := intParam(c, "player_id")
		if !ok {
			return
		}
		hole, ok := intParam(c, "hole")
		if !ok {
			return
		}
		var body ScoreSubmit
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		score, err := e.scoreService.UpsertScore(service.ScoreSubmission{
			PlayerId:  playerId,
			Hole:      hole,
			Par:       body.Par,
			Strokes:   body.Strokes,
			Scratches: body.Scratches,
			Penalties: body.Penalties,
		})
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toScoreResponse(score))
	}
}

// @id GetScorecard
// @Description Fetches the current score of every played hole, ordered by hole
// @Tags scores
// @Produce json
// @Param player_id path int true "Player Id"
// @Success 200 {array} ScoreResponse
// @Router /players/{player_id}/scores [get]
func (e *ScoreController) getScorecardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, ok := intParam(c, "player_id")
		if !ok {
			return
		}
		scores, err := e.scoreService.GetScores(playerId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

// @id GetLeaderboard
// @Description Fetches the ranked leaderboard, DNF and unscored players excluded
// @Tags scores
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {array} scoring.LeaderboardEntry
// @Router /tournaments/{tournament_id}/leaderboard [get]
func (e *ScoreController) getLeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentId, ok := intParam(c, "tournament_id")
		if !ok {
			return
		}
		leaderboard, err := e.leaderboardService.GetLeaderboard(tournamentId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, leaderboard)
	}
}

// @id GetTournamentStats
// @Tags scores
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {object} scoring.TournamentStats
// @Router /tournaments/{tournament_id}/stats [get]
func (e *ScoreController) getStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentId, ok := intParam(c, "tournament_id")
		if !ok {
			return
		}
		stats, err := e.leaderboardService.GetAggregateStats(tournamentId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, stats)
	}
}
