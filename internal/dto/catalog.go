package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// MockFlightResponse is one bookable flight option.
type MockFlightResponse struct {
	FlightID      int64           `json:"id"`
	Airline       string          `json:"airline"`
	FromCity      string          `json:"from_city"`
	ToCity        string          `json:"to_city"`
	DepartureTime string          `json:"departure_time"`
	ArrivalTime   string          `json:"arrival_time"`
	Price         decimal.Decimal `json:"price"`
}

// MockHotelResponse is one bookable hotel option.
type MockHotelResponse struct {
	HotelID       int64           `json:"id"`
	Name          string          `json:"name"`
	City          string          `json:"city"`
	Rating        int             `json:"rating"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
}

// ToMockFlightResponseSlice converts flight catalog entries.
func ToMockFlightResponseSlice(flights []domain.MockFlight) []MockFlightResponse {
	out := make([]MockFlightResponse, len(flights))
	for i, f := range flights {
		out[i] = MockFlightResponse{
			FlightID:      f.FlightID,
			Airline:       f.Airline,
			FromCity:      f.FromCity,
			ToCity:        f.ToCity,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Price:         f.Price,
		}
	}
	return out
}

// ToMockHotelResponseSlice converts hotel catalog entries.
func ToMockHotelResponseSlice(hotels []domain.MockHotel) []MockHotelResponse {
	out := make([]MockHotelResponse, len(hotels))
	for i, h := range hotels {
		out[i] = MockHotelResponse{
			HotelID:       h.HotelID,
			Name:          h.Name,
			City:          h.City,
			Rating:        h.Rating,
			PricePerNight: h.PricePerNight,
		}
	}
	return out
}
