package services

import (
	"context"

	"github.com/tripvault/tripvault/internal/core/domain"
	"github.com/tripvault/tripvault/internal/dto"
)

// BookingReaderSvc defines read operations for bookings.
type BookingReaderSvc interface {
	// ListBookings returns a user's bookings with display names joined in.
	ListBookings(ctx context.Context, userID int64) ([]domain.BookingListing, error)

	// ListManagerBookings returns the pending bookings awaiting a manager.
	ListManagerBookings(ctx context.Context, managerID int64) ([]domain.BookingListing, error)
}

// BookingWriterSvc defines the booking lifecycle operations.
type BookingWriterSvc interface {
	// CreateBooking validates the payload per travel type, resolves the
	// employee's manager, assigns a reference number and persists the
	// booking as pending. No wallet is touched.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, error)

	// ApproveBooking atomically settles a pending booking against the
	// employee and company wallets and marks it approved.
	ApproveBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)

	// RejectBooking marks a pending booking rejected. No ledger interaction.
	RejectBooking(ctx context.Context, bookingID int64) error

	// CancelBooking marks a pending booking cancelled. No ledger interaction.
	CancelBooking(ctx context.Context, bookingID int64) error
}

// BookingSvcFacade combines all booking-related service interfaces.
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}

// CatalogSvcFacade serves the static flight/hotel catalog, cached where a
// cache is configured.
type CatalogSvcFacade interface {
	ListFlights(ctx context.Context) ([]domain.MockFlight, error)
	ListHotels(ctx context.Context) ([]domain.MockHotel, error)
}
