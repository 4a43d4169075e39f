package jobs

import (
	"context"
	"log/slog"
	"time"

	"scribeassist/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InquiryEscalationJob periodically raises the priority of contact inquiries
// that have sat unanswered for too long. Runs hourly; escalation is
// idempotent, so a missed or doubled run is harmless.
type InquiryEscalationJob struct {
	handler commands.EscalateStaleInquiriesCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewInquiryEscalationJob creates the escalation job. maxAge is how long an
// inquiry may stay in the new status before it gets escalated.
func NewInquiryEscalationJob(
	handler commands.EscalateStaleInquiriesCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *InquiryEscalationJob {
	return &InquiryEscalationJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "inquiry_escalation_job"),
	}
}

// Start schedules the job to run at the top of every hour.
func (j *InquiryEscalationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewEscalateStaleInquiriesCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Inquiry escalation job misconfigured", "error", err)
			return
		}

		escalated, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Inquiry escalation job failed", "error", err)
			return
		}
		if escalated > 0 {
			j.logger.InfoContext(ctx, "Escalated stale inquiries", "count", escalated)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Inquiry escalation job started (running hourly)",
		"max_age", j.maxAge)
	return nil
}

// Stop stops the escalation job.
func (j *InquiryEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Inquiry escalation job stopped")
}
