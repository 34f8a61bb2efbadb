package training

import (
	"fmt"
	"sync"
)

// Status is a snapshot of the current training run, shaped for the
// /training-status endpoint.
type Status struct {
	IsTraining   bool   `json:"is_training"`
	Progress     int    `json:"progress"`
	Message      string `json:"message"`
	CurrentEpoch int    `json:"current_epoch"`
	TotalEpochs  int    `json:"total_epochs"`
}

// StatusTracker keeps the status of the single in-flight training run.
// All methods are safe for concurrent use.
type StatusTracker struct {
	mu     sync.Mutex
	status Status
}

// NewStatusTracker returns a tracker in the idle state.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{
		status: Status{Message: "No training in progress"},
	}
}

// Begin marks a training run as started. It returns false when another run
// is already in flight, leaving the tracker untouched.
func (t *StatusTracker) Begin(totalEpochs int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status.IsTraining {
		return false
	}
	t.status = Status{
		IsTraining:  true,
		Message:     fmt.Sprintf("Training started with %d epochs...", totalEpochs),
		TotalEpochs: totalEpochs,
	}
	return true
}

// Succeed marks the current run as finished successfully.
func (t *StatusTracker) Succeed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.IsTraining = false
	t.status.Progress = 100
	t.status.Message = "Training completed successfully!"
}

// Fail marks the current run as failed with the given reason.
func (t *StatusTracker) Fail(reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.IsTraining = false
	t.status.Message = fmt.Sprintf("Training failed: %s", reason)
}

// InProgress reports whether a run is currently in flight.
func (t *StatusTracker) InProgress() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status.IsTraining
}

// Snapshot returns a copy of the current status.
func (t *StatusTracker) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}
