package service

import (
	"context"
	"fmt"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/logger"
	"vecitools-backend/internal/repository"
)

type toolService struct {
	toolRepo repository.ToolRepository
	userRepo repository.UserRepository
	sink     NotificationSink
	emailSvc EmailService
}

func NewToolService(toolRepo repository.ToolRepository, userRepo repository.UserRepository, sink NotificationSink, emailSvc EmailService) ToolService {
	return &toolService{
		toolRepo: toolRepo,
		userRepo: userRepo,
		sink:     sink,
		emailSvc: emailSvc,
	}
}

// Create submits a listing into the moderation queue: every new tool starts
// pending and available.
func (s *toolService) Create(ctx context.Context, actor domain.Actor, tool *domain.Tool) error {
	tool.OwnerID = actor.UserID
	tool.Status = domain.ToolStatusPending
	tool.Available = true
	if tool.Type == "" {
		tool.Type = domain.ToolTypeLoan
	}
	if tool.Type != domain.ToolTypeSale {
		tool.PriceCents = nil // price is only meaningful on sale listings
	}
	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return err
	}
	s.sink.Notify(ctx, actor.UserID, fmt.Sprintf("Your tool %q was submitted for review.", tool.Name))
	return nil
}

func (s *toolService) Get(ctx context.Context, id int32) (*domain.Tool, error) {
	return s.toolRepo.GetByID(ctx, id)
}

func (s *toolService) ListApproved(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.ListApproved(ctx)
}

func (s *toolService) ListUnavailable(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.ListUnavailable(ctx)
}

func (s *toolService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.Tool, error) {
	if !actor.IsAdmin() {
		return nil, domain.Unauthorizedf("moderation queue is admin-only")
	}
	return s.toolRepo.ListPending(ctx)
}

func (s *toolService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Tool, error) {
	return s.toolRepo.ListByOwner(ctx, actor.UserID)
}

// UpdateStatus is the admin moderation action: approve or reject a pending
// listing and tell the owner either way.
func (s *toolService) UpdateStatus(ctx context.Context, actor domain.Actor, id int32, status domain.ToolStatus) (*domain.Tool, error) {
	if !actor.IsAdmin() {
		return nil, domain.Unauthorizedf("tool moderation is admin-only")
	}
	if status != domain.ToolStatusApproved && status != domain.ToolStatusRejected {
		return nil, domain.Validationf("moderation status must be approved or rejected")
	}

	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.toolRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	tool.Status = status

	approved := status == domain.ToolStatusApproved
	msg := fmt.Sprintf("Sorry, your tool %q has been rejected.", tool.Name)
	if approved {
		msg = fmt.Sprintf("Congratulations! Your tool %q has been approved and is now visible.", tool.Name)
	}
	s.sink.Notify(ctx, tool.OwnerID, msg)
	if owner, err := s.userRepo.GetByID(ctx, tool.OwnerID); err == nil {
		err := s.emailSvc.SendToolModerationNotification(ctx, owner.Email, owner.Name, tool.Name, approved)
		logger.ExternalServiceResult("email", "tool_moderation", err, "tool_id", tool.ID)
	}
	return tool, nil
}

func (s *toolService) Remove(ctx context.Context, actor domain.Actor, id int32) error {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tool.OwnerID != actor.UserID {
		return domain.Unauthorizedf("you do not have permission to delete this tool")
	}
	return s.toolRepo.Delete(ctx, id)
}
