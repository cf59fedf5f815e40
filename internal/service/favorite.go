package service

import (
	"context"
	"errors"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type favoriteService struct {
	favRepo  repository.FavoriteRepository
	toolRepo repository.ToolRepository
}

func NewFavoriteService(favRepo repository.FavoriteRepository, toolRepo repository.ToolRepository) FavoriteService {
	return &favoriteService{
		favRepo:  favRepo,
		toolRepo: toolRepo,
	}
}

func (s *favoriteService) Add(ctx context.Context, actor domain.Actor, toolID int32) (*domain.Favorite, error) {
	if _, err := s.toolRepo.GetByID(ctx, toolID); err != nil {
		return nil, err
	}

	existing, err := s.favRepo.GetByUserAndTool(ctx, actor.UserID, toolID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("this tool is already in your favorites")
	}

	fav := &domain.Favorite{
		UserID: actor.UserID,
		ToolID: toolID,
	}
	if err := s.favRepo.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *favoriteService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Favorite, error) {
	return s.favRepo.ListByUser(ctx, actor.UserID)
}

func (s *favoriteService) Remove(ctx context.Context, actor domain.Actor, toolID int32) error {
	return s.favRepo.Delete(ctx, actor.UserID, toolID)
}
