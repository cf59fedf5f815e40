package service

import (
	"context"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	loanRepo   repository.LoanRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, loanRepo repository.LoanRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		loanRepo:   loanRepo,
	}
}

// Create records a post-hoc rating. Only participants of a returned loan may
// review, and the reviewee is always the other party.
func (s *reviewService) Create(ctx context.Context, actor domain.Actor, loanID, rating int32, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.Validationf("rating must be between 1 and 5")
	}

	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.LoanStatusReturned {
		return nil, domain.Validationf("you can only review completed (returned) loans")
	}
	revieweeID, ok := loan.OtherParty(actor.UserID)
	if !ok {
		return nil, domain.Unauthorizedf("you did not participate in this loan")
	}

	review := &domain.Review{
		LoanID:     loanID,
		Rating:     rating,
		Comment:    comment,
		ReviewerID: actor.UserID,
		RevieweeID: revieweeID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListForUser(ctx context.Context, userID int32) ([]domain.Review, error) {
	return s.reviewRepo.ListByReviewee(ctx, userID)
}
