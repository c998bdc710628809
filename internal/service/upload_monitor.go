package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/pkg/config"
)

type uploadPoller interface {
	UploadStatus(ctx context.Context, token, taskID string) (*models.UploadStatus, error)
}

// UploadMonitor polls upload progress at a fixed interval until the task
// reaches a terminal state (completed or failed), the caller cancels, or
// the safety bound elapses. The timer is always shut down deterministically;
// the final snapshot stays readable after the loop stops.
type UploadMonitor struct {
	poller      uploadPoller
	interval    time.Duration
	maxDuration time.Duration
	logger      *zap.Logger

	mu    sync.Mutex
	tasks map[string]*monitorEntry
}

type monitorEntry struct {
	cancel context.CancelFunc

	mu     sync.Mutex
	latest *models.UploadStatus
	done   bool
}

func (e *monitorEntry) set(status *models.UploadStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.latest = status
}

func (e *monitorEntry) snapshot() (*models.UploadStatus, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest, e.done
}

func (e *monitorEntry) finish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.done = true
}

// NewUploadMonitor constructs the monitor registry.
func NewUploadMonitor(poller uploadPoller, cfg config.UploadsConfig, logger *zap.Logger) *UploadMonitor {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = 30 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadMonitor{
		poller:      poller,
		interval:    cfg.PollInterval,
		maxDuration: cfg.MaxDuration,
		logger:      logger,
		tasks:       make(map[string]*monitorEntry),
	}
}

// Start begins polling a task. Returns false when the task is already
// monitored.
func (m *UploadMonitor) Start(token, taskID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tasks[taskID]; exists {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.maxDuration)
	entry := &monitorEntry{cancel: cancel}
	m.tasks[taskID] = entry

	go m.run(ctx, token, taskID, entry)
	return true
}

// Cancel stops a running monitor. The last snapshot remains readable.
func (m *UploadMonitor) Cancel(taskID string) bool {
	m.mu.Lock()
	entry, exists := m.tasks[taskID]
	m.mu.Unlock()
	if !exists {
		return false
	}
	entry.cancel()
	return true
}

// Snapshot returns the latest observed status and whether polling has
// finished.
func (m *UploadMonitor) Snapshot(taskID string) (*models.UploadStatus, bool, bool) {
	m.mu.Lock()
	entry, exists := m.tasks[taskID]
	m.mu.Unlock()
	if !exists {
		return nil, false, false
	}
	status, done := entry.snapshot()
	return status, done, true
}

// Stop cancels every running monitor (shutdown path).
func (m *UploadMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range m.tasks {
		entry.cancel()
	}
}

func (m *UploadMonitor) run(ctx context.Context, token, taskID string, entry *monitorEntry) {
	defer entry.cancel()
	defer entry.finish()

	if m.poll(ctx, token, taskID, entry) {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("upload monitor stopped", zap.String("task_id", taskID))
			return
		case <-ticker.C:
			if m.poll(ctx, token, taskID, entry) {
				return
			}
		}
	}
}

// poll fetches one snapshot; returns true when polling must stop.
func (m *UploadMonitor) poll(ctx context.Context, token, taskID string, entry *monitorEntry) bool {
	status, err := m.poller.UploadStatus(ctx, token, taskID)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		// Transient failure: keep the previous snapshot and retry on the
		// next tick.
		m.logger.Warn("upload status poll failed", zap.String("task_id", taskID), zap.Error(err))
		return false
	}

	entry.set(status)
	if status.Terminal() {
		m.logger.Info("upload finished",
			zap.String("task_id", taskID),
			zap.String("status", status.Status),
			zap.Int("success", status.SuccessCount),
			zap.Int("errors", status.ErrorCount))
		return true
	}
	return false
}
