package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRejectsInvalidSpec(t *testing.T) {
	_, err := New("not a cron spec", func(context.Context) error { return nil }, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron spec")
}

func TestSchedulerRunsJob(t *testing.T) {
	var runs int32
	// Every-second spec via the standard parser's @every extension.
	s, err := New("@every 10ms", func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	}, zap.NewNop().Sugar())
	require.NoError(t, err)

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.Positive(t, atomic.LoadInt32(&runs))
}
