package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CookService struct {
	cookRepo repo.CookRepository
	logger   *zap.SugaredLogger
}

func NewCookService(cookRepo repo.CookRepository, logger *zap.SugaredLogger) *CookService {
	return &CookService{
		cookRepo: cookRepo,
		logger:   logger,
	}
}

type CreateCookInput struct {
	Name        string
	StoreName   string
	CountryCode string
}

func (s *CookService) CreateCook(ctx context.Context, userID string, in CreateCookInput) (*domain.Cook, error) {
	cook := &domain.Cook{
		UserID:      userID,
		Name:        in.Name,
		StoreName:   in.StoreName,
		CountryCode: in.CountryCode,
	}

	if err := s.cookRepo.Create(ctx, cook); err != nil {
		return nil, fmt.Errorf("failed to create cook: %w", err)
	}

	s.logger.Infow("cook registered", "cook_id", cook.ID.Hex(), "user_id", userID, "timezone", cook.Timezone())

	return cook, nil
}

func (s *CookService) GetCook(ctx context.Context, cookID primitive.ObjectID) (*domain.Cook, error) {
	cook, err := s.cookRepo.GetByID(ctx, cookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cook: %w", err)
	}

	return cook, nil
}

// cookForUser returns the cook profile owned by userID.
func cookForUser(ctx context.Context, cooks repo.CookRepository, userID string) (*domain.Cook, error) {
	cook, err := cooks.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s has no cook profile", ErrForbidden, userID)
		}
		return nil, fmt.Errorf("failed to get cook: %w", err)
	}

	return cook, nil
}

// ownedCook loads a cook and checks that userID owns it.
func ownedCook(ctx context.Context, cooks repo.CookRepository, cookID primitive.ObjectID, userID string) (*domain.Cook, error) {
	cook, err := cooks.GetByID(ctx, cookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cook: %w", err)
	}
	if cook.UserID != userID {
		return nil, fmt.Errorf("%w: cook %s belongs to another user", ErrForbidden, cookID.Hex())
	}

	return cook, nil
}
