package controller

import (
	"scorecard/app_error"
	"scorecard/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	cheatService *service.CheatService
}

func NewAlertController(services *Services) *AlertController {
	return &AlertController{cheatService: services.Cheat}
}

func setupAlertController(services *Services) []RouteInfo {
	e := NewAlertController(services)
	return []RouteInfo{
		{Method: "GET", Path: "/alerts", HandlerFunc: e.listAlertsHandler()},
		{Method: "POST", Path: "/alerts/:alert_id/dismiss", HandlerFunc: e.dismissAlertHandler()},
	}
}

// @id ListAlerts
// @Description Lists alerts that have not been dismissed, oldest first
// @Tags alerts
// @Produce json
// @Param room_code query string false "Restrict to one tournament"
// @Success 200 {array} service.CheatAlert
// @Router /alerts [get]
func (e *AlertController) listAlertsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		alerts, err := e.cheatService.ListAlerts(strings.ToUpper(c.Query("room_code")))
		if err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.JSON(200, alerts)
	}
}

// @id DismissAlert
// @Tags alerts
// @Param alert_id path string true "Alert Id"
// @Success 204
// @Router /alerts/{alert_id}/dismiss [post]
func (e *AlertController) dismissAlertHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.cheatService.DismissAlert(c.Param("alert_id")); err != nil {
			app_error.WithHTTPStatus(c, err)
			return
		}
		c.Status(204)
	}
}
