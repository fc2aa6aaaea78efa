package models

import "github.com/shopspring/decimal"

// MockFlight is a mock_flights catalog row.
type MockFlight struct {
	FlightID      int64           `db:"id"`
	Airline       string          `db:"airline"`
	FromCity      string          `db:"from_city"`
	ToCity        string          `db:"to_city"`
	DepartureTime string          `db:"departure_time"`
	ArrivalTime   string          `db:"arrival_time"`
	Price         decimal.Decimal `db:"price"`
}

// MockHotel is a mock_hotels catalog row.
type MockHotel struct {
	HotelID       int64           `db:"id"`
	Name          string          `db:"name"`
	City          string          `db:"city"`
	Rating        int             `db:"rating"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
}
