package controller

import (
	"context"
	"net/http"
	"scorecard/app_error"
	"scorecard/logger"
	"scorecard/service"
	"scorecard/utils"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait = 2 * time.Second
	queueSize = 256
)

type LiveMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type roomMessage struct {
	roomCode string
	message  LiveMessage
}

// LiveHub pushes scores, alerts and the recomputed leaderboard to every socket watching a room.
// Broadcast only queues; a single dispatcher started with Start does every socket write.
type LiveHub struct {
	tournamentService  *service.TournamentService
	leaderboardService *service.LeaderboardService
	mu                 sync.Mutex
	connections        map[string]map[*websocket.Conn]bool
	queue              chan roomMessage
	logger             *logrus.Entry
}

func NewLiveHub(tournamentService *service.TournamentService, leaderboardService *service.LeaderboardService) *LiveHub {
	return &LiveHub{
		tournamentService:  tournamentService,
		leaderboardService: leaderboardService,
		connections:        make(map[string]map[*websocket.Conn]bool),
		queue:              make(chan roomMessage, queueSize),
		logger:             logger.WithComponent("live_hub"),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func setupLiveController(services *Services) []RouteInfo {
	return []RouteInfo{
		{Method: "GET", Path: "/live/:room_code", HandlerFunc: services.Live.WebSocketHandler},
	}
}

func (h *LiveHub) watchers(roomCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.connections[roomCode])
}

func (h *LiveHub) send(roomCode string, message LiveMessage) {
	h.mu.Lock()
	conns := utils.Keys(h.connections[roomCode])
	h.mu.Unlock()

	failed := make([]*websocket.Conn, 0)
	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(message); err != nil {
			h.logger.WithError(err).WithField("room_code", roomCode).Debug("dropping live connection")
			conn.Close()
			failed = append(failed, conn)
		}
	}
	if len(failed) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conn := range failed {
		delete(h.connections[roomCode], conn)
	}
	if len(h.connections[roomCode]) == 0 {
		delete(h.connections, roomCode)
	}
}

func (h *LiveHub) leaderboard(roomCode string) (*LiveMessage, error) {
	tournament, err := h.tournamentService.GetTournamentByRoomCode(roomCode)
	if err != nil {
		return nil, err
	}
	leaderboard, err := h.leaderboardService.GetLeaderboard(tournament.Id)
	if err != nil {
		return nil, err
	}
	return &LiveMessage{Type: "leaderboard", Payload: leaderboard}, nil
}

// Broadcast queues the message for the dispatcher and never waits on a socket. When the
// queue is full the message is dropped; the next score carries a fresh leaderboard anyway.
func (h *LiveHub) Broadcast(roomCode string, messageType string, payload any) {
	if h.watchers(roomCode) == 0 {
		return
	}
	select {
	case h.queue <- roomMessage{roomCode: roomCode, message: LiveMessage{Type: messageType, Payload: payload}}:
	default:
		h.logger.WithField("room_code", roomCode).Warn("live queue full, dropping message")
	}
}

// Start runs the dispatcher until ctx is done. After a score it also sends the recomputed leaderboard.
func (h *LiveHub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case queued := <-h.queue:
				h.dispatch(queued)
			}
		}
	}()
}

func (h *LiveHub) dispatch(queued roomMessage) {
	h.send(queued.roomCode, queued.message)
	if queued.message.Type != "score" {
		return
	}
	message, err := h.leaderboard(queued.roomCode)
	if err != nil {
		h.logger.WithError(err).WithField("room_code", queued.roomCode).Error("failed to compute live leaderboard")
		return
	}
	h.send(queued.roomCode, *message)
}

// @id LiveWebSocket
// @Description Websocket for a tournament room. Sends the leaderboard on connect, then every score, alert and leaderboard change.
// @Tags scores
// @Param room_code path string true "Room code"
// @Success 200 {object} LiveMessage
// @Router /live/{room_code} [get]
func (h *LiveHub) WebSocketHandler(c *gin.Context) {
	roomCode := strings.ToUpper(c.Param("room_code"))
	initial, err := h.leaderboard(roomCode)
	if err != nil {
		app_error.WithHTTPStatus(c, err)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(initial); err != nil {
		return
	}

	h.mu.Lock()
	if _, ok := h.connections[roomCode]; !ok {
		h.connections[roomCode] = make(map[*websocket.Conn]bool)
	}
	h.connections[roomCode][conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.connections[roomCode], conn)
			if len(h.connections[roomCode]) == 0 {
				delete(h.connections, roomCode)
			}
			h.mu.Unlock()
			return
		}
	}
}
