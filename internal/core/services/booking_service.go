package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/dto"
	"github.com/tripvault/tripvault/internal/events"
	"github.com/tripvault/tripvault/internal/middleware"
	"github.com/tripvault/tripvault/internal/utils"
)

type bookingService struct {
	bookingRepo portsrepo.BookingRepositoryFacade
	userRepo    portsrepo.UserReader
	producer    *events.Producer
}

// NewBookingService creates the booking lifecycle service. producer may be
// nil when no event broker is configured.
func NewBookingService(bookingRepo portsrepo.BookingRepositoryFacade, userRepo portsrepo.UserReader, producer *events.Producer) portssvc.BookingSvcFacade {
	return &bookingService{bookingRepo: bookingRepo, userRepo: userRepo, producer: producer}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// CreateBooking validates the payload for its travel type, resolves the
// employee's approving manager, assigns a reference number and persists the
// booking as pending. No wallet is read or written here; funds only move at
// approval time.
func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	booking, err := buildBooking(req)
	if err != nil {
		return nil, err
	}

	managerID, err := s.userRepo.FindManagerID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve approving manager: %w", err)
	}
	booking.ManagerID = managerID

	referenceNo, err := utils.GenerateBookingReference()
	if err != nil {
		return nil, err
	}
	booking.ReferenceNo = referenceNo
	booking.Status = domain.BookingPending

	saved, err := s.bookingRepo.SaveBooking(ctx, *booking)
	if err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	logger.Info("booking created",
		"booking_id", saved.BookingID,
		"reference_no", saved.ReferenceNo,
		"travel_type", saved.TravelType,
		"total_amount", saved.TotalAmount.String())

	s.publishEvent(ctx, events.TypeBookingCreated, saved)
	return saved, nil
}

// buildBooking checks the payload shape for its travel type and maps it to a
// domain booking. Every missing field is named in the returned error.
func buildBooking(req dto.CreateBookingRequest) (*domain.Booking, error) {
	missing := []string{}
	if req.UserID <= 0 {
		missing = append(missing, "user_id")
	}
	if req.CompanyID <= 0 {
		missing = append(missing, "company_id")
	}
	if req.StorehouseID <= 0 {
		missing = append(missing, "storehouse_id")
	}
	if req.MockItemID <= 0 {
		missing = append(missing, "mock_item_id")
	}
	if req.TravelType == "" {
		missing = append(missing, "travel_type")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total_amount must not be negative", apperrors.ErrValidation)
	}

	booking := &domain.Booking{
		UserID:       req.UserID,
		CompanyID:    req.CompanyID,
		StorehouseID: req.StorehouseID,
		MockItemID:   req.MockItemID,
		Purpose:      req.Purpose,
		TotalAmount:  req.TotalAmount,
	}

	switch domain.TravelType(req.TravelType) {
	case domain.TravelFlight:
		if err := applyFlightFields(booking, req); err != nil {
			return nil, err
		}
	case domain.TravelHotel:
		if err := applyHotelFields(booking, req); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: travel_type %q", apperrors.ErrUnsupportedType, req.TravelType)
	}

	return booking, nil
}

func applyFlightFields(booking *domain.Booking, req dto.CreateBookingRequest) error {
	booking.TravelType = domain.TravelFlight
	booking.TripType = domain.TripType(req.TripType)
	// A flight without an explicit trip_type is a one-way flight.
	if booking.TripType == "" {
		booking.TripType = domain.TripOneWay
	}

	switch booking.TripType {
	case domain.TripOneWay, domain.TripRoundTrip:
		missing := []string{}
		if req.TravelDate == "" {
			missing = append(missing, "travel_date")
		}
		if booking.TripType == domain.TripRoundTrip && req.ReturnDate == "" {
			missing = append(missing, "return_date")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s flight requires: %s",
				apperrors.ErrValidation, booking.TripType, strings.Join(missing, ", "))
		}
		booking.FromCity = optional(req.FromCity)
		booking.ToCity = optional(req.ToCity)
		booking.TravelDate = ptr(req.TravelDate)
		if booking.TripType == domain.TripRoundTrip {
			booking.ReturnDate = ptr(req.ReturnDate)
		}
	case domain.TripMultiCity:
		if len(req.Itinerary) == 0 {
			return fmt.Errorf("%w: multicity flight requires a non-empty itinerary", apperrors.ErrValidation)
		}
		legs := make([]domain.ItineraryLeg, len(req.Itinerary))
		for i, leg := range req.Itinerary {
			if leg.FromCity == "" || leg.ToCity == "" || leg.Date == "" {
				return fmt.Errorf("%w: itinerary leg %d requires from_city, to_city and date", apperrors.ErrValidation, i+1)
			}
			legs[i] = domain.ItineraryLeg{FromCity: leg.FromCity, ToCity: leg.ToCity, Date: leg.Date}
		}
		booking.Itinerary = legs
		booking.FromCity = ptr(legs[0].FromCity)
		booking.ToCity = ptr(legs[len(legs)-1].ToCity)
		booking.TravelDate = ptr(legs[0].Date)
	default:
		return fmt.Errorf("%w: trip_type %q", apperrors.ErrUnsupportedType, req.TripType)
	}

	return nil
}

func applyHotelFields(booking *domain.Booking, req dto.CreateBookingRequest) error {
	booking.TravelType = domain.TravelHotel

	// Hotels accept the destination as either to_city or city.
	city := req.ToCity
	if city == "" {
		city = req.City
	}

	missing := []string{}
	if req.CheckIn == "" {
		missing = append(missing, "check_in")
	}
	if req.CheckOut == "" {
		missing = append(missing, "check_out")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: hotel booking requires: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}

	// Hotels have no origin, regardless of what the payload carried.
	booking.FromCity = nil
	booking.ToCity = optional(city)
	booking.CheckIn = ptr(req.CheckIn)
	booking.CheckOut = ptr(req.CheckOut)
	return nil
}

// ApproveBooking settles a pending booking against the wallets in one atomic
// unit. A booking past pending fails with ErrInvalidState, so a second
// approval can never debit twice.
func (s *bookingService) ApproveBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	booking, err := s.bookingRepo.SettleApproval(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to approve booking %d: %w", bookingID, err)
	}

	logger.Info("booking approved",
		"booking_id", booking.BookingID,
		"reference_no", booking.ReferenceNo,
		"total_amount", booking.TotalAmount.String())

	s.publishEvent(ctx, events.TypeBookingApproved, booking)
	return booking, nil
}

// RejectBooking marks a pending booking rejected. No wallet is touched.
func (s *bookingService) RejectBooking(ctx context.Context, bookingID int64) error {
	return s.transition(ctx, bookingID, domain.BookingRejected, events.TypeBookingRejected)
}

// CancelBooking marks a pending booking cancelled. No wallet is touched.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID int64) error {
	return s.transition(ctx, bookingID, domain.BookingCancelled, events.TypeBookingCancelled)
}

func (s *bookingService) transition(ctx context.Context, bookingID int64, to domain.BookingStatus, eventType string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	err := s.bookingRepo.TransitionBookingStatus(ctx, bookingID, domain.BookingPending, to)
	if err != nil {
		return fmt.Errorf("failed to mark booking %d %s: %w", bookingID, to, err)
	}

	logger.Info("booking status changed", "booking_id", bookingID, "status", to)

	if s.producer != nil {
		if booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID); err == nil {
			s.publishEvent(ctx, eventType, booking)
		}
	}
	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID int64) ([]domain.BookingListing, error) {
	listings, err := s.bookingRepo.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %d: %w", userID, err)
	}
	return listings, nil
}

func (s *bookingService) ListManagerBookings(ctx context.Context, managerID int64) ([]domain.BookingListing, error) {
	listings, err := s.bookingRepo.ListPendingBookingsByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending bookings for manager %d: %w", managerID, err)
	}
	return listings, nil
}

// publishEvent emits a lifecycle event after the database work committed. A
// publish failure is logged and otherwise ignored.
func (s *bookingService) publishEvent(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil {
		return
	}
	event := events.BookingEvent{
		Type:        eventType,
		BookingID:   booking.BookingID,
		ReferenceNo: booking.ReferenceNo,
		UserID:      booking.UserID,
		CompanyID:   booking.CompanyID,
		TravelType:  string(booking.TravelType),
		TotalAmount: booking.TotalAmount,
		Status:      string(booking.Status),
		OccurredAt:  time.Now(),
	}
	if err := s.producer.Publish(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to publish booking event",
			"booking_id", booking.BookingID, "type", eventType, "error", err)
	}
}

func ptr(s string) *string {
	return &s
}

// optional maps an empty string to a NULL column value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
