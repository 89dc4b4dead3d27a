package service

import (
	"fmt"
	"scorecard/logger"
	"scorecard/metrics"
	"scorecard/repository"
	"scorecard/scoring"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Broadcaster pushes live updates to whoever watches a room.
type Broadcaster interface {
	Broadcast(roomCode string, messageType string, payload any)
}

type noopBroadcaster struct{}

func (noopBroadcaster) Broadcast(string, string, any) {}

// CheatService flags suspicious submissions for the director. Nothing it does can block
// or change a score write: store failures are logged and swallowed.
type CheatService struct {
	alerts      AlertStore
	windows     SubmissionWindowTracker
	window      time.Duration
	threshold   int
	broadcaster Broadcaster
	logger      *logrus.Entry
	now         func() time.Time
}

func NewCheatService(alerts AlertStore, windows SubmissionWindowTracker, window time.Duration, threshold int) *CheatService {
	return &CheatService{
		alerts:      alerts,
		windows:     windows,
		window:      window,
		threshold:   threshold,
		broadcaster: noopBroadcaster{},
		logger:      logger.WithComponent("cheat_detector"),
		now:         time.Now,
	}
}

func (s *CheatService) SetBroadcaster(broadcaster Broadcaster) {
	s.broadcaster = broadcaster
}

func (s *CheatService) raise(tournament *repository.Tournament, player *repository.TournamentPlayer, hole, par, scratches int, finding scoring.Finding) *CheatAlert {
	alert := &CheatAlert{
		Id:         uuid.NewString(),
		RoomCode:   tournament.RoomCode,
		PlayerId:   player.Id,
		PlayerName: player.PlayerName,
		Hole:       hole,
		Par:        par,
		Scratches:  scratches,
		AlertType:  finding.Type,
		Severity:   finding.Type.Severity(),
		Message:    finding.Message,
		Timestamp:  s.now(),
	}
	if err := s.alerts.Add(alert); err != nil {
		s.logger.WithError(err).WithField("alert_type", alert.AlertType).Error("failed to store cheat alert")
		return nil
	}
	metrics.CheatAlertsTotal.WithLabelValues(string(alert.AlertType)).Inc()
	s.logger.WithFields(logrus.Fields{
		"room_code":  alert.RoomCode,
		"player_id":  alert.PlayerId,
		"hole":       alert.Hole,
		"alert_type": alert.AlertType,
	}).Warn(alert.Message)
	s.broadcaster.Broadcast(alert.RoomCode, "alert", alert)
	return alert
}

// Inspect runs the stateless heuristics against the stored score for the hole before it is overwritten.
func (s *CheatService) Inspect(tournament *repository.Tournament, player *repository.TournamentPlayer, hole, par, strokes, scratches int, previous *repository.HoleScore) []*CheatAlert {
	raised := make([]*CheatAlert, 0)
	for _, finding := range scoring.InspectSubmission(par, strokes, scratches, previous) {
		if alert := s.raise(tournament, player, hole, par, scratches, finding); alert != nil {
			raised = append(raised, alert)
		}
	}
	return raised
}

// RecordSubmission feeds the rapid scoring window. At most one active rapid_scoring
// alert per player is raised per window length.
func (s *CheatService) RecordSubmission(tournament *repository.Tournament, player *repository.TournamentPlayer, hole, par, scratches int) *CheatAlert {
	at := s.now()
	count, err := s.windows.Record(tournament.Id, player.Id, at)
	if err != nil {
		s.logger.WithError(err).Error("failed to record submission timing")
		return nil
	}
	if count < s.threshold {
		return nil
	}
	recent, err := s.alerts.HasActive(tournament.RoomCode, player.Id, scoring.RapidScoring, at.Add(-s.window))
	if err != nil {
		s.logger.WithError(err).Error("failed to look up recent rapid scoring alerts")
		return nil
	}
	if recent {
		return nil
	}
	return s.raise(tournament, player, hole, par, scratches, scoring.Finding{
		Type:    scoring.RapidScoring,
		Message: fmt.Sprintf("%d submissions within %s", count, s.window),
	})
}

func (s *CheatService) ListAlerts(roomCode string) ([]*CheatAlert, error) {
	return s.alerts.List(roomCode)
}

func (s *CheatService) DismissAlert(alertId string) error {
	return s.alerts.Dismiss(alertId)
}

// EvictIdleWindows drops windows that cannot contribute to a future alert.
func (s *CheatService) EvictIdleWindows() (int, error) {
	return s.windows.Evict(s.now().Add(-s.window))
}
