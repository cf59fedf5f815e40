package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/logger"
	"vecitools-backend/internal/repository"
)

type loanService struct {
	loanRepo repository.LoanRepository
	toolRepo repository.ToolRepository
	userRepo repository.UserRepository
	tx       repository.TxRunner
	sink     NotificationSink
	emailSvc EmailService
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	toolRepo repository.ToolRepository,
	userRepo repository.UserRepository,
	tx repository.TxRunner,
	sink NotificationSink,
	emailSvc EmailService,
) LoanService {
	return &loanService{
		loanRepo: loanRepo,
		toolRepo: toolRepo,
		userRepo: userRepo,
		tx:       tx,
		sink:     sink,
		emailSvc: emailSvc,
	}
}

const dateLayout = "2006-01-02"

func (s *loanService) Create(ctx context.Context, actor domain.Actor, toolID int32, startDate, endDate string) (*domain.Loan, error) {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Validationf("tool does not exist")
	}
	if err != nil {
		return nil, err
	}
	if tool.OwnerID == actor.UserID {
		return nil, domain.Validationf("you cannot request your own tool")
	}
	if tool.Status != domain.ToolStatusApproved {
		return nil, domain.Validationf("tool is not approved for the catalog")
	}
	if !tool.Available {
		return nil, domain.Validationf("tool is not available")
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, domain.Validationf("invalid start date %q", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, domain.Validationf("invalid end date %q", endDate)
	}
	if end.Before(start) {
		return nil, domain.Validationf("end date must not be before start date")
	}

	loan := &domain.Loan{
		ToolID:      toolID,
		OwnerID:     tool.OwnerID,
		RequesterID: actor.UserID,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      domain.LoanStatusPending,
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	loan.Tool = tool

	requesterName := s.userName(ctx, actor.UserID)
	s.sink.Notify(ctx, tool.OwnerID, fmt.Sprintf("%s wants to borrow your tool %q.", requesterName, tool.Name))
	if owner, err := s.userRepo.GetByID(ctx, tool.OwnerID); err == nil {
		err := s.emailSvc.SendLoanRequestNotification(ctx, owner.Email, owner.Name, requesterName, tool.Name)
		logger.ExternalServiceResult("email", "loan_request", err, "loan_id", loan.ID)
	}

	return loan, nil
}

// UpdateStatus drives the loan lifecycle. The status write and the tool
// availability flip commit in one transaction; notifications run after
// commit under the sink's at-most-once-or-log contract.
func (s *loanService) UpdateStatus(ctx context.Context, actor domain.Actor, loanID int32, next domain.LoanStatus) (*domain.Loan, error) {
	if !next.Valid() {
		return nil, domain.Validationf("unknown loan status %q", next)
	}

	var loan *domain.Loan
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		loan, err = r.Loans.GetByID(ctx, loanID)
		if err != nil {
			return err
		}

		// Only the owner manages a loan; the requester may only cancel a
		// request of their own by moving it to rejected.
		if actor.UserID != loan.OwnerID {
			if actor.UserID != loan.RequesterID || next != domain.LoanStatusRejected {
				return domain.Unauthorizedf("you do not have permission to manage this loan")
			}
		}

		if !loan.Status.CanTransitionTo(next) {
			return domain.Validationf("loan cannot move from %s to %s", loan.Status, next)
		}

		if err := r.Loans.UpdateStatus(ctx, loanID, next); err != nil {
			return err
		}
		switch availabilityEffect(loan.Tool.Type, next) {
		case effectMarkUnavailable:
			if err := r.Tools.SetAvailability(ctx, loan.ToolID, false); err != nil {
				return err
			}
			loan.Tool.Available = false
		case effectMarkAvailable:
			if err := r.Tools.SetAvailability(ctx, loan.ToolID, true); err != nil {
				return err
			}
			loan.Tool.Available = true
		}
		loan.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, actor, loan, next)
	return loan, nil
}

func (s *loanService) MyLoans(ctx context.Context, actor domain.Actor) ([]domain.Loan, error) {
	return s.loanRepo.ListByParticipant(ctx, actor.UserID)
}

func (s *loanService) Get(ctx context.Context, actor domain.Actor, loanID int32) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if _, ok := loan.OtherParty(actor.UserID); !ok {
		return nil, domain.Unauthorizedf("you are not a participant of this loan")
	}
	return loan, nil
}

type toolEffect int

const (
	effectNone toolEffect = iota
	effectMarkUnavailable
	effectMarkAvailable
)

// availabilityEffect is the tool-kind-specific transition effect: activation
// always takes the tool off the catalog; a completed loan puts it back only
// for loanable tools — a sold tool stays gone.
func availabilityEffect(kind domain.ToolType, next domain.LoanStatus) toolEffect {
	switch next {
	case domain.LoanStatusActive:
		return effectMarkUnavailable
	case domain.LoanStatusReturned:
		if kind.ReturnRestoresAvailability() {
			return effectMarkAvailable
		}
	}
	return effectNone
}

// transitionMessage is the notification wording for the counterparty.
func transitionMessage(kind domain.ToolType, next domain.LoanStatus, toolName string) string {
	switch next {
	case domain.LoanStatusApproved:
		return fmt.Sprintf("Your request for %q was approved. Coordinate the handoff with the owner.", toolName)
	case domain.LoanStatusActive:
		if kind == domain.ToolTypeSale {
			return fmt.Sprintf("Your purchase of %q is confirmed.", toolName)
		}
		return fmt.Sprintf("Your loan of %q is now active.", toolName)
	case domain.LoanStatusReturned:
		return fmt.Sprintf("The return of %q has been confirmed.", toolName)
	case domain.LoanStatusRejected:
		return fmt.Sprintf("Your request for %q was rejected.", toolName)
	}
	return ""
}

func (s *loanService) notifyTransition(ctx context.Context, actor domain.Actor, loan *domain.Loan, next domain.LoanStatus) {
	toolName := loan.Tool.Name

	if actor.UserID == loan.RequesterID && actor.UserID != loan.OwnerID {
		// Requester cancelled; tell the owner.
		s.sink.Notify(ctx, loan.OwnerID, fmt.Sprintf("%s cancelled the request for %q.", s.userName(ctx, loan.RequesterID), toolName))
		return
	}

	msg := transitionMessage(loan.Tool.Type, next, toolName)
	if msg == "" {
		return
	}
	s.sink.Notify(ctx, loan.RequesterID, msg)
	if requester, err := s.userRepo.GetByID(ctx, loan.RequesterID); err == nil {
		err := s.emailSvc.SendLoanStatusNotification(ctx, requester.Email, requester.Name, toolName, msg)
		logger.ExternalServiceResult("email", "loan_status", err, "loan_id", loan.ID, "status", next)
	}
}

func (s *loanService) userName(ctx context.Context, userID int32) string {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "A neighbor"
	}
	return u.Name
}
