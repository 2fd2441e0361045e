package jobs

import (
	"clothshare-backend/internal/config"
	"clothshare-backend/internal/logger"
	"clothshare-backend/internal/repository/postgres"
	"clothshare-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs. Jobs only read rental state and
// notify users; every status change goes through the rental service.
type JobRunner struct {
	store  *postgres.Store
	email  service.EmailService
	config *config.Config
}

func NewJobRunner(store *postgres.Store, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		email:  email,
		config: cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs all daily jobs (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendReturnReminders()
	jr.SendOverdueNotices()
}
