package mapping

import (
	"github.com/tripvault/tripvault/internal/core/domain"
	"github.com/tripvault/tripvault/internal/models"
)

// ToDomainMockFlightSlice converts mock_flights rows.
func ToDomainMockFlightSlice(ms []models.MockFlight) []domain.MockFlight {
	out := make([]domain.MockFlight, len(ms))
	for i, m := range ms {
		out[i] = domain.MockFlight{
			FlightID:      m.FlightID,
			Airline:       m.Airline,
			FromCity:      m.FromCity,
			ToCity:        m.ToCity,
			DepartureTime: m.DepartureTime,
			ArrivalTime:   m.ArrivalTime,
			Price:         m.Price,
		}
	}
	return out
}

// ToDomainMockHotelSlice converts mock_hotels rows.
func ToDomainMockHotelSlice(ms []models.MockHotel) []domain.MockHotel {
	out := make([]domain.MockHotel, len(ms))
	for i, m := range ms {
		out[i] = domain.MockHotel{
			HotelID:       m.HotelID,
			Name:          m.Name,
			City:          m.City,
			Rating:        m.Rating,
			PricePerNight: m.PricePerNight,
		}
	}
	return out
}
