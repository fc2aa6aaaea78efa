package domain

import "time"

// Company represents the root company or one of its subsidiaries.
// A nil ParentCompanyID marks the root; every subsidiary points at the root,
// the hierarchy is exactly two levels deep.
type Company struct {
	CompanyID       int64     `json:"companyID"`
	Name            string    `json:"name"`
	ContactEmail    string    `json:"contactEmail"`
	ParentCompanyID *int64    `json:"parentCompanyID,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// IsRoot reports whether the company is the root of the hierarchy.
func (c Company) IsRoot() bool {
	return c.ParentCompanyID == nil
}

// Department groups employees inside a company or subsidiary.
type Department struct {
	DepartmentID int64     `json:"departmentID"`
	Name         string    `json:"name"`
	CompanyID    int64     `json:"companyID"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Storehouse is a travel desk location bookings are raised against.
type Storehouse struct {
	StorehouseID int64     `json:"storehouseID"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	CompanyID    int64     `json:"companyID"`
	CreatedAt    time.Time `json:"createdAt"`
}
