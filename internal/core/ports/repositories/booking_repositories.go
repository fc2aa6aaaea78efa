package repositories

import (
	"context"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// BookingReader defines read operations for booking data.
type BookingReader interface {
	// FindBookingByID retrieves a booking by its identifier.
	FindBookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error)

	// ListBookingsByUser returns a user's bookings, newest first, with
	// employee and storehouse display names joined in.
	ListBookingsByUser(ctx context.Context, userID int64) ([]domain.BookingListing, error)

	// ListPendingBookingsByManager returns the pending bookings routed to a
	// manager, newest first, with display names joined in.
	ListPendingBookingsByManager(ctx context.Context, managerID int64) ([]domain.BookingListing, error)
}

// BookingWriter defines write operations for booking data.
type BookingWriter interface {
	// SaveBooking persists a new booking row and returns it with the
	// assigned identifier.
	SaveBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error)

	// TransitionBookingStatus moves a booking from one status to another in
	// a single conditional update. Returns apperrors.ErrNotFound if the
	// booking does not exist and apperrors.ErrInvalidState if it is not in
	// the expected source status.
	TransitionBookingStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error
}

// BookingSettlement is the atomic approval unit of work. SettleApproval runs
// one database transaction that locks the booking row, asserts it is still
// pending, locks the employee wallet, checks sufficiency, debits the
// employee wallet, credits the company wallet's used amount, marks the
// booking approved and appends the audit record. On any failure every
// effect rolls back and the booking stays exactly as it was.
type BookingSettlement interface {
	SettleApproval(ctx context.Context, bookingID int64) (*domain.Booking, error)
}

// BookingRepositoryFacade combines all booking-related repository interfaces.
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
	BookingSettlement
}
