package domain

import "github.com/shopspring/decimal"

// MockFlight is a static catalog row employees book against.
type MockFlight struct {
	FlightID      int64           `json:"flightID"`
	Airline       string          `json:"airline"`
	FromCity      string          `json:"fromCity"`
	ToCity        string          `json:"toCity"`
	DepartureTime string          `json:"departureTime"`
	ArrivalTime   string          `json:"arrivalTime"`
	Price         decimal.Decimal `json:"price"`
}

// MockHotel is a static catalog row employees book against.
type MockHotel struct {
	HotelID       int64           `json:"hotelID"`
	Name          string          `json:"name"`
	City          string          `json:"city"`
	Rating        int             `json:"rating"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
}
