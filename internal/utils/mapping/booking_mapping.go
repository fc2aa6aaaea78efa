package mapping

import (
	"encoding/json"

	"github.com/tripvault/tripvault/internal/core/domain"
	"github.com/tripvault/tripvault/internal/models"
)

// ToModelBooking converts a domain booking to its row representation.
// The itinerary is serialized to JSON for the JSONB column.
func ToModelBooking(b domain.Booking) (models.Booking, error) {
	m := models.Booking{
		BookingID:    b.BookingID,
		UserID:       b.UserID,
		ManagerID:    b.ManagerID,
		CompanyID:    b.CompanyID,
		StorehouseID: b.StorehouseID,
		TravelType:   string(b.TravelType),
		MockItemID:   b.MockItemID,
		FromCity:     b.FromCity,
		ToCity:       b.ToCity,
		TravelDate:   b.TravelDate,
		ReturnDate:   b.ReturnDate,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		TotalAmount:  b.TotalAmount,
		Status:       string(b.Status),
		ReferenceNo:  b.ReferenceNo,
		CreatedAt:    b.CreatedAt,
	}
	if b.TripType != "" {
		tripType := string(b.TripType)
		m.TripType = &tripType
	}
	if b.Purpose != "" {
		purpose := b.Purpose
		m.Purpose = &purpose
	}
	if len(b.Itinerary) > 0 {
		raw, err := json.Marshal(b.Itinerary)
		if err != nil {
			return models.Booking{}, err
		}
		m.Itinerary = raw
	}
	return m, nil
}

// ToDomainBooking converts a bookings row to the domain representation.
func ToDomainBooking(m models.Booking) (domain.Booking, error) {
	b := domain.Booking{
		BookingID:    m.BookingID,
		UserID:       m.UserID,
		ManagerID:    m.ManagerID,
		CompanyID:    m.CompanyID,
		StorehouseID: m.StorehouseID,
		TravelType:   domain.TravelType(m.TravelType),
		MockItemID:   m.MockItemID,
		FromCity:     m.FromCity,
		ToCity:       m.ToCity,
		TravelDate:   m.TravelDate,
		ReturnDate:   m.ReturnDate,
		CheckIn:      m.CheckIn,
		CheckOut:     m.CheckOut,
		TotalAmount:  m.TotalAmount,
		Status:       domain.BookingStatus(m.Status),
		ReferenceNo:  m.ReferenceNo,
		CreatedAt:    m.CreatedAt,
	}
	if m.TripType != nil {
		b.TripType = domain.TripType(*m.TripType)
	}
	if m.Purpose != nil {
		b.Purpose = *m.Purpose
	}
	if len(m.Itinerary) > 0 {
		if err := json.Unmarshal(m.Itinerary, &b.Itinerary); err != nil {
			return domain.Booking{}, err
		}
	}
	return b, nil
}

// ToDomainBookingListing converts a joined bookings row to a display listing.
func ToDomainBookingListing(m models.Booking) (domain.BookingListing, error) {
	b, err := ToDomainBooking(m)
	if err != nil {
		return domain.BookingListing{}, err
	}
	listing := domain.BookingListing{Booking: b}
	if m.EmployeeName != nil {
		listing.EmployeeName = *m.EmployeeName
	}
	if m.StorehouseName != nil {
		listing.StorehouseName = *m.StorehouseName
	}
	return listing, nil
}
