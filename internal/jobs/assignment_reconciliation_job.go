package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// AssignmentReconciliationJob sweeps the confirmed orders every minute and
// reports documents violating the assignment invariant: the "asigned" flag
// must hold exactly when both the rider and assignment references are set.
//
// The sweep only observes and logs. Legacy documents drifted before this
// backend existed, and automatic correction could fight the client app;
// flagged orders are fixed by hand after review.
type AssignmentReconciliationJob struct {
	orderRepo ports.OrderRepository
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAssignmentReconciliationJob creates the reconciliation sweep.
func NewAssignmentReconciliationJob(orderRepo ports.OrderRepository, logger *slog.Logger) *AssignmentReconciliationJob {
	return &AssignmentReconciliationJob{
		orderRepo: orderRepo,
		cron:      cron.New(),
		logger:    logger.With("component", "assignment_reconciliation_job"),
	}
}

// Start begins the reconciliation sweep, running every minute.
func (j *AssignmentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		j.sweep(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation sweep.
func (j *AssignmentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment reconciliation job stopped")
}

func (j *AssignmentReconciliationJob) sweep(ctx context.Context) {
	orders, err := j.orderRepo.GetAllAdminVisible(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Assignment reconciliation sweep failed", "error", err)
		return
	}

	inconsistent := 0
	for _, aggregate := range orders {
		if err := aggregate.ValidateAssignmentConsistency(); err != nil {
			inconsistent++
			j.logger.WarnContext(ctx, "Order violates assignment invariant",
				"order", aggregate.Ref().ID(), "error", err)
		}
	}

	if inconsistent > 0 {
		j.logger.WarnContext(ctx, "Assignment reconciliation sweep finished with findings",
			"orders", len(orders), "inconsistent", inconsistent)
	}
}
