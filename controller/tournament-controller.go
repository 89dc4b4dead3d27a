package controller

import (
	"scorecard/app_error"
	"scorecard/service"
	"scorecard/utils"

	"github.com/gin-gonic/gin"
)

type TournamentController struct {
	tournamentService *service.TournamentService
	completionService *service.CompletionService
}

func NewTournamentController(services *Services) *TournamentController {
	return &TournamentController{
		tournamentService: services.Tournaments,
		completionService: services.Completion,
	}
}

type TournamentCreate struct {
	Name               string `json:"name" binding:"required"`
	DirectorCredential string `json:"director_credential" binding:"required"`
	HoleCount          int    `json:"hole_count"`
	IsHandicapped      bool   `json:"is_handicapped"`
}

type PlayerCreate struct {
	PlayerName        string  `json:"player_name" binding:"required"`
	GroupName         *string `json:"group_name"`
	LegacyCode        *string `json:"legacy_code"`
	UniversalPlayerId *int    `json:"universal_player_id"`
}

func setupTournamentController(services *Services) []RouteInfo {
	e := NewTournamentController(services)
	basePath := "/tournaments"
	routes := []RouteInfo{
		{Method: "POST", Path: "", HandlerFunc: e.createTournamentHandler()},
		{Method: "GET", Path: "/:tournament_id", HandlerFunc: e.getTournamentHandler()},
		{Method: "DELETE", Path: "/:tournament_id", HandlerFunc: e.deleteTournamentHandler()},
		{Method: "POST", Path: "/:tournament_id/start", HandlerFunc: e.startTournamentHandler()},
		{Method: "POST", Path: "/:tournament_id/archive", HandlerFunc: e.archiveTournamentHandler()},
		{Method: "POST", Path: "/:tournament_id/reopen", HandlerFunc: e.reopenTournamentHandler()},
		{Method: "POST", Path: "/:tournament_id/complete", HandlerFunc: e.completeTournamentHandler()},
		{Method: "GET", Path: "/:tournament_id/players", HandlerFunc: e.getPlayersHandler()},
		{Method: "POST", Path: "/:tournament_id/players", HandlerFunc: e.addPlayerHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id CreateTournament
// @Description Creates a tournament in setup state with a fresh room code
// @Tags tournaments
// @Accept json
// @Produce json
// @Param body body TournamentCreate true "Tournament"
// @Success 201 {object} TournamentResponse
// @Router /tournaments [post]
func (e *TournamentController) createTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body TournamentCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		tournament, err := e.tournamentService.Create(service.TournamentCreate{
			Name:               body.Name,
			DirectorCredential: body.DirectorCredential,
			HoleCount:          body.HoleCount,
			IsHandicapped:      body.IsHandicapped,
		})
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toTournamentResponse(tournament))
	}
}

// @id GetTournament
// @Tags tournaments
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {object} TournamentResponse
// @Router /tournaments/{tournament_id} [get]
func (e *TournamentController) getTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentId, ok := intParam(c, "tournament_id")
		if !ok {
			return
		}
		tournament, err := e.tournamentService.GetTournament(tournamentId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, toTournamentResponse(tournament))
	}
}

// @id DeleteTournament
// @Description Deletes the tournament with all players and scores. This cannot be undone.
// @Tags tournaments
// @Param tournament_id path int true "Tournament Id"
// @Success 204
// @Router /tournaments/{tournament_id} [delete]
func (e *TournamentController) deleteTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentId, ok := intParam(c, "tournament_id")
		if !ok {
			return
		}
		if err := e.tournamentService.Delete(tournamentId); err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.Status(204)
	}
}

func (e *TournamentController) transition(apply func(tournamentId int) (*TournamentResponse, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentId, ok := intParam(c, "tournament_id")
		if !ok {
			return
		}
		tournament, err := apply(tournamentId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, tournament)
	}
}

// @id StartTournament
// @Tags tournaments
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {object} TournamentResponse
// @Router /tournaments/{tournament_id}/start [post]
func (e *TournamentController) startTournamentHandler() gin.HandlerFunc {
	return e.transition(func(tournamentId int) (*TournamentResponse, error) {
		tournament, err := e.tournamentService.Start(tournamentId)
		if err != nil {
			return nil, err
		}
		return toTournamentResponse(tournament), nil
	})
}

// @id ArchiveTournament
// @Description Closes a tournament without scores. Tournaments with scores must be completed.
// @Tags tournaments
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {object} TournamentResponse
// @Router /tournaments/{tournament_id}/archive [post]
func (e *TournamentController) archiveTournamentHandler() gin.HandlerFunc {
	return e.transition(func(tournamentId int) (*TournamentResponse, error) {
		tournament, err := e.tournamentService.ArchiveEmpty(tournamentId)
		if err != nil {
			return nil, err
		}
		return toTournamentResponse(tournament), nil
	})
}

// @id ReopenTournament
// @Tags tournaments
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {object} TournamentResponse
// @Router /tournaments/{tournament_id}/reopen [post]
func (e *TournamentController) reopenTournamentHandler() gin.HandlerFunc {
	return e.transition(func(tournamentId int) (*TournamentResponse, error) {
		tournament, err := e.tournamentService.Reopen(tournamentId)
		if err != nil {
			return nil, err
		}
		return toTournamentResponse(tournament), nil
	})
}

// @id CompleteTournament
// @Description Records history for every ranked player and archives the tournament. Safe to repeat.
// @Tags tournaments
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {object} service.CompletionResult
// @Router /tournaments/{tournament_id}/complete [post]
func (e *TournamentController) completeTournamentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentId, ok := intParam(c, "tournament_id")
		if !ok {
			return
		}
		result, err := e.completionService.Complete(tournamentId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, result)
	}
}

// @id GetPlayers
// @Tags players
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Success 200 {array} PlayerResponse
// @Router /tournaments/{tournament_id}/players [get]
func (e *TournamentController) getPlayersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentId, ok := intParam(c, "tournament_id")
		if !ok {
			return
		}
		players, err := e.tournamentService.GetPlayers(tournamentId)
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, utils.Map(players, toPlayerResponse))
	}
}

// @id AddPlayer
// @Tags players
// @Accept json
// @Produce json
// @Param tournament_id path int true "Tournament Id"
// @Param body body PlayerCreate true "Player"
// @Success 201 {object} PlayerResponse
// @Router /tournaments/{tournament_id}/players [post]
func (e *TournamentController) addPlayerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentId, ok := intParam(c, "tournament_id")
		if !ok {
			return
		}
		var body PlayerCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		player, err := e.tournamentService.AddPlayer(tournamentId, service.PlayerCreate{
			PlayerName:        body.PlayerName,
			GroupName:         body.GroupName,
			LegacyCode:        body.LegacyCode,
			UniversalPlayerId: body.UniversalPlayerId,
		})
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(201, toPlayerResponse(player))
	}
}
