package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/pkg/config"
)

type scriptedPoller struct {
	mu       sync.Mutex
	statuses []*models.UploadStatus
	calls    int
}

func (p *scriptedPoller) UploadStatus(ctx context.Context, token, taskID string) (*models.UploadStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.calls
	if idx >= len(p.statuses) {
		idx = len(p.statuses) - 1
	}
	p.calls++
	return p.statuses[idx], nil
}

func (p *scriptedPoller) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func monitorConfig() config.UploadsConfig {
	return config.UploadsConfig{PollInterval: 5 * time.Millisecond, MaxDuration: time.Second}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func TestMonitorStopsOnCompleted(t *testing.T) {
	poller := &scriptedPoller{statuses: []*models.UploadStatus{
		{TaskID: "t1", Status: models.UploadStatusProcessing, ProcessedRows: 100},
		{TaskID: "t1", Status: models.UploadStatusProcessing, ProcessedRows: 800},
		{TaskID: "t1", Status: models.UploadStatusCompleted, ProcessedRows: 1500, SuccessCount: 1480, ErrorCount: 20},
	}}
	monitor := NewUploadMonitor(poller, monitorConfig(), nil)

	require.True(t, monitor.Start("tok", "t1"))

	waitFor(t, func() bool {
		_, done, _ := monitor.Snapshot("t1")
		return done
	})

	status, done, tracked := monitor.Snapshot("t1")
	require.True(t, tracked)
	assert.True(t, done)
	require.NotNil(t, status)
	assert.Equal(t, models.UploadStatusCompleted, status.Status)
	assert.Equal(t, 1480, status.SuccessCount)

	// Polling must stop after the terminal state.
	settled := poller.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, poller.callCount())
}

func TestMonitorStopsOnFailed(t *testing.T) {
	poller := &scriptedPoller{statuses: []*models.UploadStatus{
		{TaskID: "t2", Status: models.UploadStatusFailed, ErrorCount: 10},
	}}
	monitor := NewUploadMonitor(poller, monitorConfig(), nil)

	require.True(t, monitor.Start("tok", "t2"))
	waitFor(t, func() bool {
		_, done, _ := monitor.Snapshot("t2")
		return done
	})

	status, _, _ := monitor.Snapshot("t2")
	assert.Equal(t, models.UploadStatusFailed, status.Status)
}

func TestMonitorRejectsDuplicateTask(t *testing.T) {
	poller := &scriptedPoller{statuses: []*models.UploadStatus{
		{TaskID: "t3", Status: models.UploadStatusProcessing},
	}}
	monitor := NewUploadMonitor(poller, monitorConfig(), nil)
	defer monitor.Stop()

	assert.True(t, monitor.Start("tok", "t3"))
	assert.False(t, monitor.Start("tok", "t3"))
}

func TestMonitorCancelStopsPolling(t *testing.T) {
	poller := &scriptedPoller{statuses: []*models.UploadStatus{
		{TaskID: "t4", Status: models.UploadStatusProcessing},
	}}
	monitor := NewUploadMonitor(poller, monitorConfig(), nil)

	require.True(t, monitor.Start("tok", "t4"))
	waitFor(t, func() bool { return poller.callCount() > 0 })

	require.True(t, monitor.Cancel("t4"))
	waitFor(t, func() bool {
		_, done, _ := monitor.Snapshot("t4")
		return done
	})

	settled := poller.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, poller.callCount())
}

func TestMonitorCancelUnknownTask(t *testing.T) {
	monitor := NewUploadMonitor(&scriptedPoller{statuses: []*models.UploadStatus{{}}}, monitorConfig(), nil)
	assert.False(t, monitor.Cancel("missing"))
}

func TestMonitorSnapshotUnknownTask(t *testing.T) {
	monitor := NewUploadMonitor(&scriptedPoller{statuses: []*models.UploadStatus{{}}}, monitorConfig(), nil)
	_, _, tracked := monitor.Snapshot("missing")
	assert.False(t, tracked)
}
