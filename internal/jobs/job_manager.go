package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"scribeassist/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled background jobs.
type JobManager struct {
	inquiryEscalationJob *InquiryEscalationJob
}

// NewJobManager creates a job manager with all scheduled jobs wired to their
// command handlers.
func NewJobManager(
	escalateHandler commands.EscalateStaleInquiriesCommandHandler,
	inquiryMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		inquiryEscalationJob: NewInquiryEscalationJob(escalateHandler, inquiryMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.inquiryEscalationJob.Start(); err != nil {
		return fmt.Errorf("failed to start inquiry escalation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.inquiryEscalationJob.Stop()
}
