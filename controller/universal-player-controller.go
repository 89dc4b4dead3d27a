package controller

import (
	"scorecard/app_error"
	"scorecard/service"
	"scorecard/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type UniversalPlayerController struct {
	handicapService *service.HandicapService
}

func NewUniversalPlayerController(services *Services) *UniversalPlayerController {
	return &UniversalPlayerController{handicapService: services.Handicaps}
}

type UniversalPlayerCreate struct {
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type HandicapOverride struct {
	Handicap *float64 `json:"handicap" binding:"required"`
}

type HistoryCreate struct {
	TournamentName string    `json:"tournament_name" binding:"required"`
	TotalStrokes   int       `json:"total_strokes"`
	TotalPar       int       `json:"total_par"`
	HolesPlayed    int       `json:"holes_played"`
	TotalScratches int       `json:"total_scratches"`
	TotalPenalties int       `json:"total_penalties"`
	CompletedAt    time.Time `json:"completed_at"`
}

type MergeRequest struct {
	SourceId int `json:"source_id" binding:"required"`
	TargetId int `json:"target_id" binding:"required"`
}

func setupUniversalPlayerController(services *Services) []RouteInfo {
	e := NewUniversalPlayerController(services)
	return []RouteInfo{
		{Method: "POST", Path: "/universal-players", HandlerFunc: e.createUniversalPlayerHandler()},
		{Method: "POST", Path: "/universal-players/merge", HandlerFunc: e.mergeHandler()},
		{Method: "GET", Path: "/universal-players/:universal_player_id", HandlerFunc: e.getUniversalPlayerHandler()},
		{Method: "GET", Path: "/universal-players/:universal_player_id/history", HandlerFunc: e.getHistoryHandler()},
		{Method: "POST", Path: "/universal-players/:universal_player_id/history", HandlerFunc: e.addHistoryHandler()},
		{Method: "POST", Path: "/universal-players/:universal_player_id/recalculate", HandlerFunc: e.recalculateHandler()},
		{Method: "PUT", Path: "/universal-players/:universal_player_id/handicap", HandlerFunc: e.overrideHandicapHandler()},
		{Method: "DELETE", Path: "/history/:history_id", HandlerFunc: e.removeHistoryHandler()},
	}
}

// @id CreateUniversalPlayer
// @Tags universal players
// @Accept json
// @Produce json
// @Param body body UniversalPlayerCreate true "Player"
// @Success 201 {object} UniversalPlayerResponse
// @Router /universal-players [post]
func (e *UniversalPlayerController) createUniversalPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body UniversalPlayerCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.handicapService.CreateUniversalPlayer(service.UniversalPlayerCreate{
			Name:  body.Name,
			Email: body.Email,
			Phone: body.Phone,
		})
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toUniversalPlayerResponse(player))
	}
}

// @id GetUniversalPlayer
// @Tags universal players
// @Produce json
// @Param universal_player_id path int true "Universal Player Id"
// @Success 200 {object} UniversalPlayerResponse
// @Router /universal-players/{universal_player_id} [get]
func (e *UniversalPlayerController) getUniversalPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "universal_player_id")
		if !ok {
			return
		}
		player, err := e.handicapService.GetUniversalPlayer(id)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toUniversalPlayerResponse(player))
	}
}

// @id GetHistory
// @Tags universal players
// @Produce json
// @Param universal_player_id path int true "Universal Player Id"
// @Success 200 {array} HistoryResponse
// @Router /universal-players/{universal_player_id}/history [get]
func (e *UniversalPlayerController) getHistoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "universal_player_id")
		if !ok {
			return
		}
		history, err := e.handicapService.GetHistory(id)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(history, toHistoryResponse))
	}
}

// @id AddManualHistory
// @Description Adds a result from outside the system and recalculates the handicap
// @Tags universal players
// @Accept json
// @Produce json
// @Param universal_player_id path int true "Universal Player Id"
// @Param body body HistoryCreate true "Result"
// @Success 201 {object} HistoryResponse
// @Router /universal-players/{universal_player_id}/history [post]
func (e *UniversalPlayerController) addHistoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "universal_player_id")
		if !ok {
			return
		}
		var body HistoryCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		history, err := e.handicapService.AddManualHistory(id, service.ManualHistoryCreate{
			TournamentName: body.TournamentName,
			TotalStrokes:   body.TotalStrokes,
			TotalPar:       body.TotalPar,
			HolesPlayed:    body.HolesPlayed,
			TotalScratches: body.TotalScratches,
			TotalPenalties: body.TotalPenalties,
			CompletedAt:    body.CompletedAt,
		})
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toHistoryResponse(history))
	}
}

// @id RemoveHistory
// @Tags universal players
// @Produce json
// @Param history_id path int true "History Id"
// @Success 200 {object} UniversalPlayerResponse
// @Router /history/{history_id} [delete]
func (e *UniversalPlayerController) removeHistoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		historyId, ok := intParam(c, "history_id")
		if !ok {
			return
		}
		player, err := e.handicapService.RemoveHistory(historyId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toUniversalPlayerResponse(player))
	}
}

// @id RecalculateHandicap
// @Tags universal players
// @Produce json
// @Param universal_player_id path int true "Universal Player Id"
// @Success 200 {object} UniversalPlayerResponse
// @Router /universal-players/{universal_player_id}/recalculate [post]
func (e *UniversalPlayerController) recalculateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "universal_player_id")
		if !ok {
			return
		}
		player, err := e.handicapService.Recalculate(id)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toUniversalPlayerResponse(player))
	}
}

// @id OverrideHandicap
// @Description Sets the handicap by hand. It holds until the next history change or merge.
// @Tags universal players
// @Accept json
// @Produce json
// @Param universal_player_id path int true "Universal Player Id"
// @Param body body HandicapOverride true "Handicap"
// @Success 200 {object} UniversalPlayerResponse
// @Router /universal-players/{universal_player_id}/handicap [put]
func (e *UniversalPlayerController) overrideHandicapHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "universal_player_id")
		if !ok {
			return
		}
		var body HandicapOverride
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.handicapService.OverrideHandicap(id, *body.Handicap)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toUniversalPlayerResponse(player))
	}
}

// @id MergeUniversalPlayers
// @Description Moves all tournaments and history of the source onto the target and deletes the source
// @Tags universal players
// @Accept json
// @Produce json
// @Param body body MergeRequest true "Merge"
// @Success 200 {object} UniversalPlayerResponse
// @Router /universal-players/merge [post]
func (e *UniversalPlayerController) mergeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body MergeRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.handicapService.Merge(body.SourceId, body.TargetId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toUniversalPlayerResponse(player))
	}
}
