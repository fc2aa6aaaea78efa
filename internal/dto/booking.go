package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// ItineraryLegRequest is one segment of a multicity flight payload.
type ItineraryLegRequest struct {
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
	Date     string `json:"date"`
}

// CreateBookingRequest is the booking payload. Field requirements depend on
// travel_type and trip_type, so the shape is validated by the booking
// service rather than by binding tags.
type CreateBookingRequest struct {
	UserID       int64                 `json:"user_id"`
	CompanyID    int64                 `json:"company_id"`
	StorehouseID int64                 `json:"storehouse_id"`
	TravelType   string                `json:"travel_type"`
	TripType     string                `json:"trip_type"`
	MockItemID   int64                 `json:"mock_item_id"`
	FromCity     string                `json:"from_city"`
	ToCity       string                `json:"to_city"`
	City         string                `json:"city"`
	TravelDate   string                `json:"travel_date"`
	ReturnDate   string                `json:"return_date"`
	CheckIn      string                `json:"check_in"`
	CheckOut     string                `json:"check_out"`
	Itinerary    []ItineraryLegRequest `json:"itinerary"`
	Purpose      string                `json:"purpose"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
}

// BookingResponse is a created or fetched booking.
type BookingResponse struct {
	BookingID    int64                 `json:"id"`
	UserID       int64                 `json:"user_id"`
	ManagerID    *int64                `json:"manager_id"`
	CompanyID    int64                 `json:"company_id"`
	StorehouseID int64                 `json:"storehouse_id"`
	TravelType   string                `json:"travel_type"`
	TripType     string                `json:"trip_type,omitempty"`
	MockItemID   int64                 `json:"mock_item_id"`
	FromCity     *string               `json:"from_city"`
	ToCity       *string               `json:"to_city"`
	TravelDate   *string               `json:"travel_date"`
	ReturnDate   *string               `json:"return_date"`
	CheckIn      *string               `json:"check_in"`
	CheckOut     *string               `json:"check_out"`
	Itinerary    []domain.ItineraryLeg `json:"itinerary,omitempty"`
	Purpose      string                `json:"purpose,omitempty"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	Status       string                `json:"status"`
	ReferenceNo  string                `json:"reference_no"`
	CreatedAt    time.Time             `json:"created_at"`
}

// BookingListingResponse is a booking row with joined display names.
type BookingListingResponse struct {
	BookingResponse
	EmployeeName   string `json:"employee_name"`
	StorehouseName string `json:"storehouse_name"`
}

// StatusMessageResponse reports the outcome of a status transition.
type StatusMessageResponse struct {
	Message string `json:"message"`
}

// ToBookingResponse converts a domain booking to its response DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:    b.BookingID,
		UserID:       b.UserID,
		ManagerID:    b.ManagerID,
		CompanyID:    b.CompanyID,
		StorehouseID: b.StorehouseID,
		TravelType:   string(b.TravelType),
		TripType:     string(b.TripType),
		MockItemID:   b.MockItemID,
		FromCity:     b.FromCity,
		ToCity:       b.ToCity,
		TravelDate:   b.TravelDate,
		ReturnDate:   b.ReturnDate,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Itinerary:    b.Itinerary,
		Purpose:      b.Purpose,
		TotalAmount:  b.TotalAmount,
		Status:       string(b.Status),
		ReferenceNo:  b.ReferenceNo,
		CreatedAt:    b.CreatedAt,
	}
}

// ToBookingListingResponseSlice converts joined booking listings.
func ToBookingListingResponseSlice(listings []domain.BookingListing) []BookingListingResponse {
	out := make([]BookingListingResponse, len(listings))
	for i, l := range listings {
		out[i] = BookingListingResponse{
			BookingResponse: ToBookingResponse(&l.Booking),
			EmployeeName:    l.EmployeeName,
			StorehouseName:  l.StorehouseName,
		}
	}
	return out
}
