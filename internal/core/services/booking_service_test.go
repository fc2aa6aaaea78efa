package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/core/services"
	"github.com/tripvault/tripvault/internal/dto"
)

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

var _ portsrepo.BookingRepositoryFacade = (*MockBookingRepository)(nil)

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookingsByUser(ctx context.Context, userID int64) ([]domain.BookingListing, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingListing), args.Error(1)
}

func (m *MockBookingRepository) ListPendingBookingsByManager(ctx context.Context, managerID int64) ([]domain.BookingListing, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingListing), args.Error(1)
}

func (m *MockBookingRepository) TransitionBookingStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, from, to)
	return args.Error(0)
}

func (m *MockBookingRepository) SettleApproval(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

var _ portsrepo.UserReader = (*MockUserReader)(nil)

func (m *MockUserReader) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindManagerID(ctx context.Context, userID int64) (*int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

func (m *MockUserReader) ListUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite Setup ---
type BookingServiceTestSuite struct {
	suite.Suite
	mockBookingRepo *MockBookingRepository
	mockUserReader  *MockUserReader
	service         portssvc.BookingSvcFacade
	ctx             context.Context
	managerID       int64
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockBookingRepo = new(MockBookingRepository)
	suite.mockUserReader = new(MockUserReader)
	suite.service = services.NewBookingService(suite.mockBookingRepo, suite.mockUserReader, nil)
	suite.ctx = context.Background()
	suite.managerID = int64(3)
}

func (suite *BookingServiceTestSuite) onewayRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		UserID:       7,
		CompanyID:    2,
		StorehouseID: 4,
		TravelType:   "flight",
		TripType:     "oneway",
		MockItemID:   1,
		FromCity:     "Mumbai",
		ToCity:       "Delhi",
		TravelDate:   "2026-09-15",
		Purpose:      "Client visit",
		TotalAmount:  decimal.NewFromInt(4500),
	}
}

func (suite *BookingServiceTestSuite) TestCreateBooking_OneWayFlight() {
	req := suite.onewayRequest()
	suite.mockUserReader.On("FindManagerID", suite.ctx, int64(7)).Return(&suite.managerID, nil).Once()

	var saved domain.Booking
	suite.mockBookingRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		saved = b
		return b.UserID == 7 && b.Status == domain.BookingPending
	})).Return(&domain.Booking{BookingID: 1, Status: domain.BookingPending}, nil).Once()

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &suite.managerID, saved.ManagerID)
	assert.Equal(suite.T(), domain.TravelFlight, saved.TravelType)
	assert.Equal(suite.T(), domain.TripOneWay, saved.TripType)
	assert.Equal(suite.T(), "Mumbai", *saved.FromCity)
	assert.Equal(suite.T(), "Delhi", *saved.ToCity)
	assert.True(suite.T(), strings.HasPrefix(saved.ReferenceNo, "BK-"))
	suite.mockBookingRepo.AssertExpectations(suite.T())
	suite.mockUserReader.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_NamesEveryMissingField() {
	_, err := suite.service.CreateBooking(suite.ctx, dto.CreateBookingRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	for _, field := range []string{"user_id", "company_id", "storehouse_id", "mock_item_id", "travel_type"} {
		assert.Contains(suite.T(), err.Error(), field)
	}
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBooking")
}

func (suite *BookingServiceTestSuite) TestCreateBooking_RejectsNegativeAmount() {
	req := suite.onewayRequest()
	req.TotalAmount = decimal.NewFromInt(-1)

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Contains(suite.T(), err.Error(), "total_amount")
}

func (suite *BookingServiceTestSuite) TestCreateBooking_ZeroAmountAccepted() {
	req := suite.onewayRequest()
	req.TotalAmount = decimal.Zero

	suite.mockUserReader.On("FindManagerID", suite.ctx, int64(7)).Return(&suite.managerID, nil).Once()
	suite.mockBookingRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.TotalAmount.IsZero()
	})).Return(&domain.Booking{BookingID: 5}, nil).Once()

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.NoError(suite.T(), err)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_UnknownTravelType() {
	req := suite.onewayRequest()
	req.TravelType = "train"

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnsupportedType)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBooking")
}

func (suite *BookingServiceTestSuite) TestCreateBooking_RoundTripRequiresReturnDate() {
	req := suite.onewayRequest()
	req.TripType = "roundtrip"

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Contains(suite.T(), err.Error(), "return_date")
}

func (suite *BookingServiceTestSuite) TestCreateBooking_MissingTripTypeDefaultsToOneWay() {
	req := suite.onewayRequest()
	req.TripType = ""

	suite.mockUserReader.On("FindManagerID", suite.ctx, int64(7)).Return(&suite.managerID, nil).Once()

	var saved domain.Booking
	suite.mockBookingRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		saved = b
		return true
	})).Return(&domain.Booking{BookingID: 6}, nil).Once()

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.TripOneWay, saved.TripType)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_OneWayWithoutCitiesAccepted() {
	req := suite.onewayRequest()
	req.FromCity = ""
	req.ToCity = ""

	suite.mockUserReader.On("FindManagerID", suite.ctx, int64(7)).Return(&suite.managerID, nil).Once()

	var saved domain.Booking
	suite.mockBookingRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		saved = b
		return true
	})).Return(&domain.Booking{BookingID: 7}, nil).Once()

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), saved.FromCity)
	assert.Nil(suite.T(), saved.ToCity)
	assert.Equal(suite.T(), "2026-09-15", *saved.TravelDate)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_UnknownTripType() {
	req := suite.onewayRequest()
	req.TripType = "zigzag"

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnsupportedType)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBooking")
}

func (suite *BookingServiceTestSuite) TestCreateBooking_MultiCityRequiresItinerary() {
	req := suite.onewayRequest()
	req.TripType = "multicity"
	req.Itinerary = nil

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	assert.Contains(suite.T(), err.Error(), "itinerary")
}

func (suite *BookingServiceTestSuite) TestCreateBooking_MultiCitySingleLegAccepted() {
	req := suite.onewayRequest()
	req.TripType = "multicity"
	req.FromCity = ""
	req.ToCity = ""
	req.TravelDate = ""
	req.Itinerary = []dto.ItineraryLegRequest{
		{FromCity: "Mumbai", ToCity: "Delhi", Date: "2026-09-15"},
	}

	suite.mockUserReader.On("FindManagerID", suite.ctx, int64(7)).Return(&suite.managerID, nil).Once()

	var saved domain.Booking
	suite.mockBookingRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		saved = b
		return true
	})).Return(&domain.Booking{BookingID: 8}, nil).Once()

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), saved.Itinerary, 1)
	assert.Equal(suite.T(), "Mumbai", *saved.FromCity)
	assert.Equal(suite.T(), "Delhi", *saved.ToCity)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_MultiCityUsesFirstAndLastLeg() {
	req := suite.onewayRequest()
	req.TripType = "multicity"
	req.FromCity = ""
	req.ToCity = ""
	req.TravelDate = ""
	req.Itinerary = []dto.ItineraryLegRequest{
		{FromCity: "Mumbai", ToCity: "Delhi", Date: "2026-09-15"},
		{FromCity: "Delhi", ToCity: "Kolkata", Date: "2026-09-18"},
	}

	suite.mockUserReader.On("FindManagerID", suite.ctx, int64(7)).Return(&suite.managerID, nil).Once()

	var saved domain.Booking
	suite.mockBookingRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		saved = b
		return true
	})).Return(&domain.Booking{BookingID: 2}, nil).Once()

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), saved.Itinerary, 2)
	assert.Equal(suite.T(), "Mumbai", *saved.FromCity)
	assert.Equal(suite.T(), "Kolkata", *saved.ToCity)
	assert.Equal(suite.T(), "2026-09-15", *saved.TravelDate)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_HotelForcesNoOrigin() {
	req := dto.CreateBookingRequest{
		UserID:       7,
		CompanyID:    2,
		StorehouseID: 4,
		TravelType:   "hotel",
		MockItemID:   3,
		FromCity:     "Mumbai",
		City:         "Delhi",
		CheckIn:      "2026-09-15",
		CheckOut:     "2026-09-18",
		TotalAmount:  decimal.NewFromInt(9500),
	}

	suite.mockUserReader.On("FindManagerID", suite.ctx, int64(7)).Return(&suite.managerID, nil).Once()

	var saved domain.Booking
	suite.mockBookingRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		saved = b
		return true
	})).Return(&domain.Booking{BookingID: 3}, nil).Once()

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), saved.FromCity)
	assert.Equal(suite.T(), "Delhi", *saved.ToCity)
	assert.Equal(suite.T(), "2026-09-15", *saved.CheckIn)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_HotelNamesMissingStayFields() {
	req := dto.CreateBookingRequest{
		UserID:       7,
		CompanyID:    2,
		StorehouseID: 4,
		TravelType:   "hotel",
		MockItemID:   3,
		TotalAmount:  decimal.NewFromInt(9500),
	}

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	for _, field := range []string{"check_in", "check_out"} {
		assert.Contains(suite.T(), err.Error(), field)
	}
}

func (suite *BookingServiceTestSuite) TestCreateBooking_HotelWithoutCityAccepted() {
	req := dto.CreateBookingRequest{
		UserID:       7,
		CompanyID:    2,
		StorehouseID: 4,
		TravelType:   "hotel",
		MockItemID:   3,
		CheckIn:      "2026-09-15",
		CheckOut:     "2026-09-18",
		TotalAmount:  decimal.NewFromInt(9500),
	}

	suite.mockUserReader.On("FindManagerID", suite.ctx, int64(7)).Return(&suite.managerID, nil).Once()

	var saved domain.Booking
	suite.mockBookingRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		saved = b
		return true
	})).Return(&domain.Booking{BookingID: 9}, nil).Once()

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), saved.ToCity)
	assert.Nil(suite.T(), saved.FromCity)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_UserWithoutManagerStaysUnrouted() {
	req := suite.onewayRequest()
	suite.mockUserReader.On("FindManagerID", suite.ctx, int64(7)).Return(nil, nil).Once()

	var saved domain.Booking
	suite.mockBookingRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		saved = b
		return true
	})).Return(&domain.Booking{BookingID: 4}, nil).Once()

	_, err := suite.service.CreateBooking(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), saved.ManagerID)
}

func (suite *BookingServiceTestSuite) TestApproveBooking_Success() {
	approved := &domain.Booking{
		BookingID:   10,
		UserID:      7,
		CompanyID:   2,
		TotalAmount: decimal.NewFromInt(4500),
		Status:      domain.BookingApproved,
	}
	suite.mockBookingRepo.On("SettleApproval", suite.ctx, int64(10)).Return(approved, nil).Once()

	booking, err := suite.service.ApproveBooking(suite.ctx, 10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.BookingApproved, booking.Status)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestApproveBooking_SecondApprovalFails() {
	suite.mockBookingRepo.On("SettleApproval", suite.ctx, int64(10)).
		Return(nil, apperrors.ErrInvalidState).Once()

	_, err := suite.service.ApproveBooking(suite.ctx, 10)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidState)
}

func (suite *BookingServiceTestSuite) TestApproveBooking_InsufficientFunds() {
	suite.mockBookingRepo.On("SettleApproval", suite.ctx, int64(10)).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	_, err := suite.service.ApproveBooking(suite.ctx, 10)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientFunds)
}

func (suite *BookingServiceTestSuite) TestRejectBooking_TransitionsFromPending() {
	suite.mockBookingRepo.On("TransitionBookingStatus", suite.ctx, int64(10), domain.BookingPending, domain.BookingRejected).
		Return(nil).Once()

	err := suite.service.RejectBooking(suite.ctx, 10)

	assert.NoError(suite.T(), err)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCancelBooking_FailsWhenNotPending() {
	suite.mockBookingRepo.On("TransitionBookingStatus", suite.ctx, int64(10), domain.BookingPending, domain.BookingCancelled).
		Return(apperrors.ErrInvalidState).Once()

	err := suite.service.CancelBooking(suite.ctx, 10)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidState)
}

func (suite *BookingServiceTestSuite) TestListManagerBookings() {
	listings := []domain.BookingListing{
		{Booking: domain.Booking{BookingID: 10, Status: domain.BookingPending}, EmployeeName: "Asha"},
	}
	suite.mockBookingRepo.On("ListPendingBookingsByManager", suite.ctx, suite.managerID).Return(listings, nil).Once()

	got, err := suite.service.ListManagerBookings(suite.ctx, suite.managerID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), listings, got)
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}
