package controller

import (
	"scorecard/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RouteInfo struct {
	Method      string
	Path        string
	HandlerFunc gin.HandlerFunc
}

type Services struct {
	Scores      *service.ScoreService
	Leaderboard *service.LeaderboardService
	Tournaments *service.TournamentService
	Completion  *service.CompletionService
	Handicaps   *service.HandicapService
	Cheat       *service.CheatService
	Live        *LiveHub
}

// SetRoutes registers every route under /api. Authentication is left to whatever sits in front.
func SetRoutes(r *gin.Engine, services *Services) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupScoreController(services)...)
	routes = append(routes, setupTournamentController(services)...)
	routes = append(routes, setupPlayerController(services)...)
	routes = append(routes, setupUniversalPlayerController(services)...)
	routes = append(routes, setupAlertController(services)...)
	routes = append(routes, setupLiveController(services)...)
	api := r.Group("/api")
	for _, route := range routes {
		api.Handle(route.Method, route.Path, route.HandlerFunc)
	}
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return value, true
}
