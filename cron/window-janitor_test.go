package cron

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEvicter struct {
	calls atomic.Int32
	err   error
}

func (e *countingEvicter) EvictIdleWindows() (int, error) {
	e.calls.Add(1)
	if e.err != nil {
		return 0, e.err
	}
	return 2, nil
}

func TestRunOnce(t *testing.T) {
	evicter := &countingEvicter{}
	janitor, err := NewWindowJanitor(evicter, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, janitor.RunOnce())

	evicter.err = errors.New("redis down")
	assert.Equal(t, 0, janitor.RunOnce())
	assert.Equal(t, int64(2), janitor.Runs())
}

func TestJanitorRunsOnSchedule(t *testing.T) {
	evicter := &countingEvicter{}
	janitor, err := NewWindowJanitor(evicter, 50*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, janitor.Start())
	defer func() { _ = janitor.Shutdown() }()

	assert.Eventually(t, func() bool { return evicter.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}
