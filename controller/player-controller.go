package controller

import (
	"scorecard/app_error"
	"scorecard/service"

	"github.com/gin-gonic/gin"
)

type PlayerController struct {
	tournamentService *service.TournamentService
}

func NewPlayerController(services *Services) *PlayerController {
	return &PlayerController{tournamentService: services.Tournaments}
}

type PlayerClaim struct {
	DeviceId string `json:"device_id" binding:"required"`
}

func setupPlayerController(services *Services) []RouteInfo {
	e := NewPlayerController(services)
	basePath := "/players/:player_id"
	routes := []RouteInfo{
		{Method: "POST", Path: "/claim", HandlerFunc: e.claimPlayerHandler()},
		{Method: "POST", Path: "/dnf", HandlerFunc: e.markDnfHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id ClaimPlayer
// @Description Binds a device to a player. A later claim replaces an earlier one.
// @Tags players
// @Accept json
// @Produce json
// @Param player_id path int true "Player Id"
// @Param body body PlayerClaim true "Device"
// @Success 200 {object} PlayerResponse
// @Router /players/{player_id}/claim [post]
func (e *PlayerController) claimPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, ok := intParam(c, "player_id")
		if !ok {
			return
		}
		var body PlayerClaim
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.tournamentService.ClaimPlayer(playerId, body.DeviceId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toPlayerResponse(player))
	}
}

// @id MarkDnf
// @Description Marks a player as did not finish. This is permanent.
// @Tags players
// @Produce json
// @Param player_id path int true "Player Id"
// @Success 200 {object} PlayerResponse
// @Router /players/{player_id}/dnf [post]
func (e *PlayerController) markDnfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		playerId, ok := intParam(c, "player_id")
		if !ok {
			return
		}
		player, err := e.tournamentService.MarkDnf(playerId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toPlayerResponse(player))
	}
}
