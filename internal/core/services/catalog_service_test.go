package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/core/services"
)

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

var _ portsrepo.CatalogRepository = (*MockCatalogRepository)(nil)

func (m *MockCatalogRepository) ListMockFlights(ctx context.Context) ([]domain.MockFlight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MockFlight), args.Error(1)
}

func (m *MockCatalogRepository) ListMockHotels(ctx context.Context) ([]domain.MockHotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MockHotel), args.Error(1)
}

// --- Test Suite Setup ---
type CatalogServiceTestSuite struct {
	suite.Suite
	mockCatalogRepo *MockCatalogRepository
	service         portssvc.CatalogSvcFacade
	ctx             context.Context
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockCatalogRepo = new(MockCatalogRepository)
	// nil cache: every read falls through to the repository.
	suite.service = services.NewCatalogService(suite.mockCatalogRepo, nil)
	suite.ctx = context.Background()
}

func (suite *CatalogServiceTestSuite) TestListFlights_WithoutCacheHitsRepository() {
	flights := []domain.MockFlight{
		{FlightID: 1, Airline: "IndiGo", FromCity: "Mumbai", ToCity: "Delhi", Price: decimal.NewFromInt(4500)},
	}
	suite.mockCatalogRepo.On("ListMockFlights", suite.ctx).Return(flights, nil).Once()

	got, err := suite.service.ListFlights(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), flights, got)
	suite.mockCatalogRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestListHotels_WithoutCacheHitsRepository() {
	hotels := []domain.MockHotel{
		{HotelID: 1, Name: "The Grand Meridian", City: "Delhi", Rating: 5, PricePerNight: decimal.NewFromInt(9500)},
	}
	suite.mockCatalogRepo.On("ListMockHotels", suite.ctx).Return(hotels, nil).Once()

	got, err := suite.service.ListHotels(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), hotels, got)
	suite.mockCatalogRepo.AssertExpectations(suite.T())
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
