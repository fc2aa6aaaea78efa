package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a bookings row. Itinerary holds the raw JSONB payload for
// multicity flights; date fields are stored as text in ISO form.
type Booking struct {
	BookingID    int64           `db:"id"`
	UserID       int64           `db:"user_id"`
	ManagerID    *int64          `db:"manager_id"`
	CompanyID    int64           `db:"company_id"`
	StorehouseID int64           `db:"storehouse_id"`
	TravelType   string          `db:"travel_type"`
	TripType     *string         `db:"trip_type"`
	MockItemID   int64           `db:"mock_item_id"`
	FromCity     *string         `db:"from_city"`
	ToCity       *string         `db:"to_city"`
	TravelDate   *string         `db:"travel_date"`
	ReturnDate   *string         `db:"return_date"`
	CheckIn      *string         `db:"check_in"`
	CheckOut     *string         `db:"check_out"`
	Itinerary    []byte          `db:"itinerary"`
	Purpose      *string         `db:"purpose"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	Status       string          `db:"status"`
	ReferenceNo  string          `db:"reference_no"`
	CreatedAt    time.Time       `db:"created_at"`

	// Joined display fields for listings.
	EmployeeName   *string `db:"employee_name"`
	StorehouseName *string `db:"storehouse_name"`
}
