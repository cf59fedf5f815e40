package jobs

import (
	"vecitools-backend/internal/config"
	"vecitools-backend/internal/logger"
	"vecitools-backend/internal/repository"
	"vecitools-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	loanRepo repository.LoanRepository
	loanSvc  service.LoanService
	sink     service.NotificationSink
	config   *config.Config
}

func NewJobRunner(loanRepo repository.LoanRepository, loanSvc service.LoanService, sink service.NotificationSink, cfg *config.Config) *JobRunner {
	return &JobRunner{
		loanRepo: loanRepo,
		loanSvc:  loanSvc,
		sink:     sink,
		config:   cfg,
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
