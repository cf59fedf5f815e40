package service

import (
	"context"
	"errors"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type userService struct {
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
}

func NewUserService(userRepo repository.UserRepository, reviewRepo repository.ReviewRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
	}
}

// Profile returns the public profile: the user plus the star-rating summary
// computed over reviews they received.
func (s *userService) Profile(ctx context.Context, userID int32) (*domain.User, *domain.RatingSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	summary, err := s.reviewRepo.SummaryByReviewee(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, summary, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor domain.Actor, name, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if email != "" && email != user.Email {
		other, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if other != nil {
			return nil, domain.Conflictf("email %s is already registered", email)
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
