package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	"github.com/tripvault/tripvault/internal/models"
	"github.com/tripvault/tripvault/internal/utils/mapping"
)

const bookingColumns = `id, user_id, manager_id, company_id, storehouse_id, travel_type, trip_type,
	mock_item_id, from_city, to_city, travel_date, return_date, check_in, check_out,
	itinerary, purpose, total_amount, status, reference_no, created_at`

// PgxBookingRepository owns the booking rows and the approval settlement
// unit of work.
type PgxBookingRepository struct {
	BaseRepository
}

// NewBookingRepository creates a new repository for booking data.
func NewBookingRepository(pool PGXPool) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID, &m.UserID, &m.ManagerID, &m.CompanyID, &m.StorehouseID,
		&m.TravelType, &m.TripType, &m.MockItemID, &m.FromCity, &m.ToCity,
		&m.TravelDate, &m.ReturnDate, &m.CheckIn, &m.CheckOut,
		&m.Itinerary, &m.Purpose, &m.TotalAmount, &m.Status, &m.ReferenceNo, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveBooking persists a new booking row and returns it with the assigned id.
func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	m, err := mapping.ToModelBooking(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize booking: %v", apperrors.ErrInternal, err)
	}

	row := r.Pool.QueryRow(ctx, `
		INSERT INTO bookings
			(user_id, manager_id, company_id, storehouse_id, travel_type, trip_type, mock_item_id,
			 from_city, to_city, travel_date, return_date, check_in, check_out, itinerary,
			 purpose, total_amount, status, reference_no)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING `+bookingColumns,
		m.UserID, m.ManagerID, m.CompanyID, m.StorehouseID, m.TravelType, m.TripType, m.MockItemID,
		m.FromCity, m.ToCity, m.TravelDate, m.ReturnDate, m.CheckIn, m.CheckOut, m.Itinerary,
		m.Purpose, m.TotalAmount, m.Status, m.ReferenceNo,
	)

	saved, err := scanBooking(row)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert booking: %v", apperrors.ErrInternal, err)
	}

	result, err := mapping.ToDomainBooking(*saved)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", apperrors.ErrInternal, err)
	}
	return &result, nil
}

// FindBookingByID retrieves a booking by its identifier.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID)
	m, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking %d", apperrors.ErrNotFound, bookingID)
		}
		return nil, fmt.Errorf("%w: failed to find booking %d: %v", apperrors.ErrInternal, bookingID, err)
	}
	result, err := mapping.ToDomainBooking(*m)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking %d: %v", apperrors.ErrInternal, bookingID, err)
	}
	return &result, nil
}

func (r *PgxBookingRepository) listBookings(ctx context.Context, filter string, arg int64) ([]domain.BookingListing, error) {
	query := `
		SELECT b.id, b.user_id, b.manager_id, b.company_id, b.storehouse_id, b.travel_type, b.trip_type,
		       b.mock_item_id, b.from_city, b.to_city, b.travel_date, b.return_date, b.check_in, b.check_out,
		       b.itinerary, b.purpose, b.total_amount, b.status, b.reference_no, b.created_at,
		       u.name AS employee_name, s.name AS storehouse_name
		FROM bookings b
		LEFT JOIN users u ON b.user_id = u.id
		LEFT JOIN storehouses s ON b.storehouse_id = s.id
		` + filter + `
		ORDER BY b.id DESC`

	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query bookings: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	listings := []domain.BookingListing{}
	for rows.Next() {
		var m models.Booking
		err := rows.Scan(
			&m.BookingID, &m.UserID, &m.ManagerID, &m.CompanyID, &m.StorehouseID,
			&m.TravelType, &m.TripType, &m.MockItemID, &m.FromCity, &m.ToCity,
			&m.TravelDate, &m.ReturnDate, &m.CheckIn, &m.CheckOut,
			&m.Itinerary, &m.Purpose, &m.TotalAmount, &m.Status, &m.ReferenceNo, &m.CreatedAt,
			&m.EmployeeName, &m.StorehouseName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan booking row: %v", apperrors.ErrInternal, err)
		}
		listing, err := mapping.ToDomainBookingListing(m)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode booking %d: %v", apperrors.ErrInternal, m.BookingID, err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating booking rows: %v", apperrors.ErrInternal, err)
	}

	return listings, nil
}

// ListBookingsByUser returns a user's bookings, newest first.
func (r *PgxBookingRepository) ListBookingsByUser(ctx context.Context, userID int64) ([]domain.BookingListing, error) {
	return r.listBookings(ctx, `WHERE b.user_id = $1`, userID)
}

// ListPendingBookingsByManager returns the pending bookings routed to a manager.
func (r *PgxBookingRepository) ListPendingBookingsByManager(ctx context.Context, managerID int64) ([]domain.BookingListing, error) {
	return r.listBookings(ctx, `WHERE b.manager_id = $1 AND b.status = 'pending'`, managerID)
}

// TransitionBookingStatus moves a booking between statuses in one
// conditional update. The status precondition is part of the UPDATE itself,
// so two concurrent transitions cannot both succeed.
func (r *PgxBookingRepository) TransitionBookingStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE bookings SET status = $3 WHERE id = $1 AND status = $2`,
		bookingID, string(from), string(to))
	if err != nil {
		return fmt.Errorf("%w: failed to update booking %d status: %v", apperrors.ErrInternal, bookingID, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing booking from a booking in the wrong status.
	var current string
	err = r.Pool.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1`, bookingID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: booking %d", apperrors.ErrNotFound, bookingID)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to read booking %d status: %v", apperrors.ErrInternal, bookingID, err)
	}
	return fmt.Errorf("%w: booking %d is %s, expected %s", apperrors.ErrInvalidState, bookingID, current, from)
}

// SettleApproval atomically settles a pending booking: lock the booking row,
// assert it is still pending, lock the company and employee wallet rows,
// check the company's remaining allocation and the employee balance, debit
// the employee wallet, credit the company wallet's used amount, mark the
// booking approved and append the audit record. Any failure rolls back every
// effect and the booking stays pending.
//
// Wallet rows are locked company-first, matching the allocation path, so
// concurrent allocations and settlements against the same wallets cannot
// deadlock.
func (r *PgxBookingRepository) SettleApproval(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	row := tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	m, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking %d", apperrors.ErrNotFound, bookingID)
		}
		return nil, fmt.Errorf("%w: failed to lock booking %d: %v", apperrors.ErrInternal, bookingID, err)
	}

	if m.Status != string(domain.BookingPending) {
		return nil, fmt.Errorf("%w: booking %d is %s, expected pending", apperrors.ErrInvalidState, bookingID, m.Status)
	}

	var cw models.CompanyWallet
	err = tx.QueryRow(ctx,
		`SELECT company_id, allocated_amount, used_amount FROM company_wallets WHERE company_id = $1 FOR UPDATE`,
		m.CompanyID).
		Scan(&cw.CompanyID, &cw.AllocatedAmount, &cw.UsedAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: company wallet %d", apperrors.ErrWalletNotFound, m.CompanyID)
		}
		return nil, fmt.Errorf("%w: failed to lock company wallet %d: %v", apperrors.ErrInternal, m.CompanyID, err)
	}

	// The used_amount credit below must respect the wallet's allocation
	// ceiling, otherwise the ledger CHECK aborts the transaction with an
	// untyped error.
	if cw.UsedAmount.Add(m.TotalAmount).GreaterThan(cw.AllocatedAmount) {
		return nil, fmt.Errorf("%w: company wallet %d has %s of its allocation left, booking requires %s",
			apperrors.ErrInsufficientFunds, m.CompanyID, cw.AllocatedAmount.Sub(cw.UsedAmount), m.TotalAmount)
	}

	var ew models.EmployeeWallet
	err = tx.QueryRow(ctx,
		`SELECT employee_id, company_id, balance FROM employee_wallets WHERE employee_id = $1 FOR UPDATE`, m.UserID).
		Scan(&ew.EmployeeID, &ew.CompanyID, &ew.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee wallet %d", apperrors.ErrWalletNotFound, m.UserID)
		}
		return nil, fmt.Errorf("%w: failed to lock employee wallet %d: %v", apperrors.ErrInternal, m.UserID, err)
	}

	if ew.Balance.LessThan(m.TotalAmount) {
		return nil, fmt.Errorf("%w: employee wallet %d holds %s, booking requires %s",
			apperrors.ErrInsufficientFunds, m.UserID, ew.Balance, m.TotalAmount)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE employee_wallets SET balance = balance - $1 WHERE employee_id = $2`,
		m.TotalAmount, m.UserID); err != nil {
		return nil, fmt.Errorf("%w: failed to debit employee wallet %d: %v", apperrors.ErrInternal, m.UserID, err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE company_wallets SET used_amount = used_amount + $1 WHERE company_id = $2`,
		m.TotalAmount, m.CompanyID); err != nil {
		return nil, fmt.Errorf("%w: failed to credit company wallet %d: %v", apperrors.ErrInternal, m.CompanyID, err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE bookings SET status = 'approved' WHERE id = $1`, bookingID); err != nil {
		return nil, fmt.Errorf("%w: failed to update booking %d status: %v", apperrors.ErrInternal, bookingID, err)
	}

	// The audit append is part of the atomic unit, never best effort.
	if _, err := tx.Exec(ctx, `
		INSERT INTO transactions (from_level, from_id, to_level, to_id, amount, description)
		VALUES ('employee', $1, 'booking', $2, $3, $4)`,
		m.UserID, bookingID, m.TotalAmount, "Booking amount deducted from employee wallet"); err != nil {
		return nil, fmt.Errorf("%w: failed to append transaction record: %v", apperrors.ErrInternal, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.Status = string(domain.BookingApproved)
	result, err := mapping.ToDomainBooking(*m)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking %d: %v", apperrors.ErrInternal, bookingID, err)
	}
	return &result, nil
}
