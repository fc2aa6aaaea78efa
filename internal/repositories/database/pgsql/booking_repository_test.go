package pgsql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	"github.com/tripvault/tripvault/internal/repositories/database/pgsql"
)

var bookingCols = []string{
	"id", "user_id", "manager_id", "company_id", "storehouse_id", "travel_type", "trip_type",
	"mock_item_id", "from_city", "to_city", "travel_date", "return_date", "check_in", "check_out",
	"itinerary", "purpose", "total_amount", "status", "reference_no", "created_at",
}

// SettleApprovalTestSuite drives the settlement unit of work against a
// scripted connection, so the lock/check/debit/credit/append sequence and its
// rollback behavior are exercised without a live database.
type SettleApprovalTestSuite struct {
	suite.Suite
	mockPool pgxmock.PgxPoolIface
	repo     portsrepo.BookingRepositoryFacade
	ctx      context.Context
}

func (suite *SettleApprovalTestSuite) SetupTest() {
	mockPool, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mockPool = mockPool
	suite.repo = pgsql.NewBookingRepository(mockPool)
	suite.ctx = context.Background()
}

func (suite *SettleApprovalTestSuite) TearDownTest() {
	suite.mockPool.Close()
}

func (suite *SettleApprovalTestSuite) pendingBookingRow(amount decimal.Decimal) *pgxmock.Rows {
	managerID := int64(3)
	fromCity := "Mumbai"
	toCity := "Delhi"
	travelDate := "2026-09-15"
	return pgxmock.NewRows(bookingCols).AddRow(
		int64(10), int64(7), &managerID, int64(2), int64(4), "flight", ptrString("oneway"),
		int64(1), &fromCity, &toCity, &travelDate, nil, nil, nil,
		nil, nil, amount, "pending", "BK-1756600000000-A1B2C3", time.Now(),
	)
}

func (suite *SettleApprovalTestSuite) expectLocks(amount, allocated, used, balance decimal.Decimal) {
	suite.mockPool.ExpectBegin()
	suite.mockPool.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(10)).
		WillReturnRows(suite.pendingBookingRow(amount))
	suite.mockPool.ExpectQuery(`SELECT company_id, allocated_amount, used_amount FROM company_wallets`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"company_id", "allocated_amount", "used_amount"}).
			AddRow(int64(2), allocated, used))
	suite.mockPool.ExpectQuery(`SELECT employee_id, company_id, balance FROM employee_wallets`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"employee_id", "company_id", "balance"}).
			AddRow(int64(7), int64(2), balance))
}

func (suite *SettleApprovalTestSuite) TestSettleApproval_CommitsWholeSequence() {
	amount := decimal.NewFromInt(4500)
	suite.expectLocks(amount, decimal.NewFromInt(20000), decimal.NewFromInt(5000), decimal.NewFromInt(10000))
	suite.mockPool.ExpectExec(`UPDATE employee_wallets SET balance = balance - \$1`).
		WithArgs(amount, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mockPool.ExpectExec(`UPDATE company_wallets SET used_amount = used_amount \+ \$1`).
		WithArgs(amount, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mockPool.ExpectExec(`UPDATE bookings SET status = 'approved'`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mockPool.ExpectExec(`INSERT INTO transactions`).
		WithArgs(int64(7), int64(10), amount, "Booking amount deducted from employee wallet").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mockPool.ExpectCommit()

	booking, err := suite.repo.SettleApproval(suite.ctx, 10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.BookingApproved, booking.Status)
	assert.NoError(suite.T(), suite.mockPool.ExpectationsWereMet())
}

func (suite *SettleApprovalTestSuite) TestSettleApproval_AuditAppendFailureRollsBackDebit() {
	amount := decimal.NewFromInt(4500)
	suite.expectLocks(amount, decimal.NewFromInt(20000), decimal.NewFromInt(5000), decimal.NewFromInt(10000))
	suite.mockPool.ExpectExec(`UPDATE employee_wallets SET balance = balance - \$1`).
		WithArgs(amount, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mockPool.ExpectExec(`UPDATE company_wallets SET used_amount = used_amount \+ \$1`).
		WithArgs(amount, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mockPool.ExpectExec(`UPDATE bookings SET status = 'approved'`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	// The debit already happened; the log append dies mid-transaction.
	suite.mockPool.ExpectExec(`INSERT INTO transactions`).
		WithArgs(int64(7), int64(10), amount, "Booking amount deducted from employee wallet").
		WillReturnError(errors.New("connection reset by peer"))
	suite.mockPool.ExpectRollback()

	booking, err := suite.repo.SettleApproval(suite.ctx, 10)

	assert.Nil(suite.T(), booking)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInternal)
	assert.NoError(suite.T(), suite.mockPool.ExpectationsWereMet())
}

func (suite *SettleApprovalTestSuite) TestSettleApproval_InsufficientEmployeeBalanceWritesNothing() {
	amount := decimal.NewFromInt(4500)
	suite.expectLocks(amount, decimal.NewFromInt(20000), decimal.NewFromInt(5000), decimal.NewFromInt(100))
	suite.mockPool.ExpectRollback()

	booking, err := suite.repo.SettleApproval(suite.ctx, 10)

	assert.Nil(suite.T(), booking)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientFunds)
	assert.NoError(suite.T(), suite.mockPool.ExpectationsWereMet())
}

func (suite *SettleApprovalTestSuite) TestSettleApproval_ExhaustedCompanyAllocationWritesNothing() {
	amount := decimal.NewFromInt(4500)
	suite.mockPool.ExpectBegin()
	suite.mockPool.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(10)).
		WillReturnRows(suite.pendingBookingRow(amount))
	// The company handed its whole allocation to employee wallets already.
	suite.mockPool.ExpectQuery(`SELECT company_id, allocated_amount, used_amount FROM company_wallets`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"company_id", "allocated_amount", "used_amount"}).
			AddRow(int64(2), decimal.NewFromInt(20000), decimal.NewFromInt(20000)))
	suite.mockPool.ExpectRollback()

	booking, err := suite.repo.SettleApproval(suite.ctx, 10)

	assert.Nil(suite.T(), booking)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientFunds)
	assert.NoError(suite.T(), suite.mockPool.ExpectationsWereMet())
}

func (suite *SettleApprovalTestSuite) TestSettleApproval_NonPendingBookingConflicts() {
	fromCity := "Mumbai"
	suite.mockPool.ExpectBegin()
	suite.mockPool.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows(bookingCols).AddRow(
			int64(10), int64(7), nil, int64(2), int64(4), "flight", ptrString("oneway"),
			int64(1), &fromCity, nil, nil, nil, nil, nil,
			nil, nil, decimal.NewFromInt(4500), "approved", "BK-1756600000000-A1B2C3", time.Now(),
		))
	suite.mockPool.ExpectRollback()

	booking, err := suite.repo.SettleApproval(suite.ctx, 10)

	assert.Nil(suite.T(), booking)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidState)
	assert.NoError(suite.T(), suite.mockPool.ExpectationsWereMet())
}

func (suite *SettleApprovalTestSuite) TestSettleApproval_UnknownBookingNotFound() {
	suite.mockPool.ExpectBegin()
	suite.mockPool.ExpectQuery(`FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(bookingCols))
	suite.mockPool.ExpectRollback()

	booking, err := suite.repo.SettleApproval(suite.ctx, 99)

	assert.Nil(suite.T(), booking)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	assert.NoError(suite.T(), suite.mockPool.ExpectationsWereMet())
}

func ptrString(s string) *string {
	return &s
}

func TestSettleApprovalTestSuite(t *testing.T) {
	suite.Run(t, new(SettleApprovalTestSuite))
}
