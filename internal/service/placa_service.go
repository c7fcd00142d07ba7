package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/KauaBAG/IfControll/internal/models"
)

const placasCacheKey = "placas:resumo"

type placaStore interface {
	Resumo(ctx context.Context) ([]models.PlacaResumo, error)
}

// PlacaService serves the per-plate aggregate view, optionally through the
// cache. Mutations on the chronology invalidate the cached aggregate.
type PlacaService struct {
	repo   placaStore
	cache  *CacheService
	logger *zap.Logger
}

// NewPlacaService constructs the service.
func NewPlacaService(repo placaStore, cache *CacheService, logger *zap.Logger) *PlacaService {
	return &PlacaService{repo: repo, cache: cache, logger: logger}
}

// Resumo lists every distinct plate with its case counts and latest activity.
func (s *PlacaService) Resumo(ctx context.Context) ([]models.PlacaResumo, error) {
	var cached []models.PlacaResumo
	if s.cache.Get(ctx, placasCacheKey, &cached) {
		return cached, nil
	}

	resumos, err := s.repo.Resumo(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, placasCacheKey, resumos)
	return resumos, nil
}
