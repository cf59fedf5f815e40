package jobs

import (
	"context"
	"fmt"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/logger"
)

// SendOverdueLoanReminders nudges requesters whose active loans have passed
// their agreed end date.
func (jr *JobRunner) SendOverdueLoanReminders() {
	jr.runWithRecovery("SendOverdueLoanReminders", func() {
		ctx := context.Background()
		today := time.Now().Format("2006-01-02")

		loans, err := jr.loanRepo.ListActiveEndedBefore(ctx, today)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}

		for _, loan := range loans {
			jr.sink.Notify(ctx, loan.RequesterID,
				fmt.Sprintf("Your loan #%d was due on %s. Please arrange the return with the owner.", loan.ID, loan.EndDate))
		}
		logger.Info("Overdue reminders sent", "count", len(loans))
	})
}

// ExpireStalePendingLoans auto-rejects requests whose start date passed
// without the owner responding. Each rejection goes through the regular
// lifecycle update (as the owner), so the transition table and availability
// handling stay authoritative.
func (jr *JobRunner) ExpireStalePendingLoans() {
	jr.runWithRecovery("ExpireStalePendingLoans", func() {
		ctx := context.Background()
		today := time.Now().Format("2006-01-02")

		loans, err := jr.loanRepo.ListPendingStartedBefore(ctx, today)
		if err != nil {
			logger.Error("Failed to list stale pending loans", "error", err)
			return
		}

		expired := 0
		for _, loan := range loans {
			owner := domain.Actor{UserID: loan.OwnerID, Role: domain.UserRoleUser}
			if _, err := jr.loanSvc.UpdateStatus(ctx, owner, loan.ID, domain.LoanStatusRejected); err != nil {
				logger.Error("Failed to expire pending loan", "loan_id", loan.ID, "error", err)
				continue
			}
			jr.sink.Notify(ctx, loan.OwnerID,
				fmt.Sprintf("The request #%d expired because its start date (%s) passed without a response.", loan.ID, loan.StartDate))
			expired++
		}
		logger.Info("Stale pending loans expired", "count", expired)
	})
}
