package repositories

import (
	"context"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// CatalogRepository reads the static mock flight/hotel reference tables.
type CatalogRepository interface {
	ListMockFlights(ctx context.Context) ([]domain.MockFlight, error)
	ListMockHotels(ctx context.Context) ([]domain.MockHotel, error)
}
