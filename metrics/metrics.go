package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScoreSubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scorecard_score_submissions_total",
	Help: "Number of accepted hole score submissions",
})

var ScoreRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scorecard_score_rejections_total",
	Help: "Number of hole score submissions rejected by validation",
})

var CheatAlertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scorecard_cheat_alerts_total",
	Help: "Number of cheat alerts raised by type",
}, []string{"alert_type"})

var CompletionOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scorecard_completion_outcomes_total",
	Help: "Per-player outcomes of tournament completion",
}, []string{"outcome"})

var EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scorecard_events_published_total",
	Help: "Tournament events handed to the event sink",
}, []string{"event", "status"})

var SubmissionWindowsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "scorecard_submission_windows",
	Help: "Number of in-process rapid scoring windows",
})
