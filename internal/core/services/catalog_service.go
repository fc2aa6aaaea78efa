package services

import (
	"context"
	"fmt"

	"github.com/tripvault/tripvault/internal/cache"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/middleware"
)

type catalogService struct {
	catalogRepo portsrepo.CatalogRepository
	cache       *cache.CatalogCache
}

// NewCatalogService creates the mock travel catalog service. cache may be
// nil, in which case every read goes to the database.
func NewCatalogService(catalogRepo portsrepo.CatalogRepository, c *cache.CatalogCache) portssvc.CatalogSvcFacade {
	return &catalogService{catalogRepo: catalogRepo, cache: c}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) ListFlights(ctx context.Context) ([]domain.MockFlight, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cached, err := s.cache.GetFlights(ctx)
	if err != nil {
		logger.Warn("flight catalog cache read failed", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	flights, err := s.catalogRepo.ListMockFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}

	if err := s.cache.SetFlights(ctx, flights); err != nil {
		logger.Warn("flight catalog cache write failed", "error", err)
	}
	return flights, nil
}

func (s *catalogService) ListHotels(ctx context.Context) ([]domain.MockHotel, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cached, err := s.cache.GetHotels(ctx)
	if err != nil {
		logger.Warn("hotel catalog cache read failed", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	hotels, err := s.catalogRepo.ListMockHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}

	if err := s.cache.SetHotels(ctx, hotels); err != nil {
		logger.Warn("hotel catalog cache write failed", "error", err)
	}
	return hotels, nil
}
