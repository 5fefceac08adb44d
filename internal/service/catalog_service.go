package service

import (
	"context"

	"github.com/fitclass/booking-service/internal/models"
	"github.com/fitclass/booking-service/internal/repository"
)

// ClassCache is the catalog's read-through cache; satisfied by
// cache.ClassCache. A nil cache disables caching.
type ClassCache interface {
	Get(ctx context.Context) ([]models.Class, bool)
	Set(ctx context.Context, classes []models.Class)
	Invalidate(ctx context.Context)
}

type CatalogService interface {
	ListClasses(ctx context.Context) ([]models.Class, error)
}

type catalogService struct {
	repo       repository.ClassRepository
	classCache ClassCache
}

func NewCatalogService(repo repository.ClassRepository, classCache ClassCache) CatalogService {
	return &catalogService{repo: repo, classCache: classCache}
}

func (s *catalogService) ListClasses(ctx context.Context) ([]models.Class, error) {
	if s.classCache == nil {
		return s.repo.FindAll(ctx)
	}

	if classes, ok := s.classCache.Get(ctx); ok {
		return classes, nil
	}

	classes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.classCache.Set(ctx, classes)
	return classes, nil
}
