package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelType distinguishes flight and hotel bookings.
type TravelType string

const (
	TravelFlight TravelType = "flight"
	TravelHotel  TravelType = "hotel"
)

// TripType qualifies flight bookings.
type TripType string

const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "roundtrip"
	TripMultiCity TripType = "multicity"
)

// BookingStatus is the state of a booking. Transitions form a small state
// machine: pending -> {approved, rejected, cancelled}, each terminal.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// ItineraryLeg is one segment of a multi-city flight.
type ItineraryLeg struct {
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
	Date     string `json:"date"`
}

// Booking is a requested travel purchase awaiting or having received manager
// approval. ManagerID is captured from the employee's record at creation
// time. Approval is the only transition that moves funds.
type Booking struct {
	BookingID    int64           `json:"bookingID"`
	UserID       int64           `json:"userID"`
	ManagerID    *int64          `json:"managerID,omitempty"`
	CompanyID    int64           `json:"companyID"`
	StorehouseID int64           `json:"storehouseID"`
	TravelType   TravelType      `json:"travelType"`
	TripType     TripType        `json:"tripType,omitempty"`
	MockItemID   int64           `json:"mockItemID"`
	FromCity     *string         `json:"fromCity,omitempty"`
	ToCity       *string         `json:"toCity,omitempty"`
	TravelDate   *string         `json:"travelDate,omitempty"`
	ReturnDate   *string         `json:"returnDate,omitempty"`
	CheckIn      *string         `json:"checkIn,omitempty"`
	CheckOut     *string         `json:"checkOut,omitempty"`
	Itinerary    []ItineraryLeg  `json:"itinerary,omitempty"`
	Purpose      string          `json:"purpose,omitempty"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       BookingStatus   `json:"status"`
	ReferenceNo  string          `json:"referenceNo"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// BookingListing is a booking row projected for display, with the employee
// and storehouse names joined in.
type BookingListing struct {
	Booking
	EmployeeName   string `json:"employeeName"`
	StorehouseName string `json:"storehouseName"`
}
