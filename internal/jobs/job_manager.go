package jobs

import (
	"fmt"
	"log/slog"

	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// JobManager coordinates the scheduled jobs of the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconciliationJob *AssignmentReconciliationJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(orderRepo ports.OrderRepository, logger *slog.Logger) *JobManager {
	return &JobManager{
		reconciliationJob: NewAssignmentReconciliationJob(orderRepo, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationJob.Stop()
}
