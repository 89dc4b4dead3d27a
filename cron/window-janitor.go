package cron

import (
	"scorecard/logger"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

type WindowEvicter interface {
	EvictIdleWindows() (int, error)
}

// WindowJanitor periodically drops submission windows that can no longer produce an alert.
type WindowJanitor struct {
	scheduler gocron.Scheduler
	evicter   WindowEvicter
	interval  time.Duration
	runs      atomic.Int64
	logger    *logrus.Entry
}

func NewWindowJanitor(evicter WindowEvicter, interval time.Duration) (*WindowJanitor, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &WindowJanitor{
		scheduler: scheduler,
		evicter:   evicter,
		interval:  interval,
		logger:    logger.WithComponent("window_janitor"),
	}, nil
}

func (j *WindowJanitor) RunOnce() int {
	defer j.runs.Add(1)
	evicted, err := j.evicter.EvictIdleWindows()
	if err != nil {
		j.logger.WithError(err).Error("failed to evict idle submission windows")
		return 0
	}
	if evicted > 0 {
		j.logger.WithField("evicted", evicted).Debug("evicted idle submission windows")
	}
	return evicted
}

func (j *WindowJanitor) Runs() int64 {
	return j.runs.Load()
}

func (j *WindowJanitor) Start() error {
	_, err := j.scheduler.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(func() { j.RunOnce() }),
		gocron.WithName("evict-idle-windows"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}
	j.scheduler.Start()
	j.logger.WithField("interval", j.interval.String()).Info("window janitor started")
	return nil
}

func (j *WindowJanitor) Shutdown() error {
	return j.scheduler.Shutdown()
}
