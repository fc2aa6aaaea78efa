package pgsql

import (
	"context"
	"fmt"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	"github.com/tripvault/tripvault/internal/models"
	"github.com/tripvault/tripvault/internal/utils/mapping"
)

// PgxCatalogRepository reads the static mock flight/hotel tables.
type PgxCatalogRepository struct {
	BaseRepository
}

// NewCatalogRepository creates a new repository for the mock travel catalog.
func NewCatalogRepository(pool PGXPool) portsrepo.CatalogRepository {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepository = (*PgxCatalogRepository)(nil)

// ListMockFlights returns every mock flight.
func (r *PgxCatalogRepository) ListMockFlights(ctx context.Context) ([]domain.MockFlight, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, airline, from_city, to_city, departure_time, arrival_time, price
		FROM mock_flights ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query mock flights: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	flights := []models.MockFlight{}
	for rows.Next() {
		var m models.MockFlight
		err := rows.Scan(&m.FlightID, &m.Airline, &m.FromCity, &m.ToCity, &m.DepartureTime, &m.ArrivalTime, &m.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan mock flight row: %v", apperrors.ErrInternal, err)
		}
		flights = append(flights, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating mock flight rows: %v", apperrors.ErrInternal, err)
	}
	return mapping.ToDomainMockFlightSlice(flights), nil
}

// ListMockHotels returns every mock hotel.
func (r *PgxCatalogRepository) ListMockHotels(ctx context.Context) ([]domain.MockHotel, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, name, city, rating, price_per_night
		FROM mock_hotels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query mock hotels: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	hotels := []models.MockHotel{}
	for rows.Next() {
		var m models.MockHotel
		err := rows.Scan(&m.HotelID, &m.Name, &m.City, &m.Rating, &m.PricePerNight)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan mock hotel row: %v", apperrors.ErrInternal, err)
		}
		hotels = append(hotels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating mock hotel rows: %v", apperrors.ErrInternal, err)
	}
	return mapping.ToDomainMockHotelSlice(hotels), nil
}
