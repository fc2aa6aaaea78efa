package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// CreateCompanyRequest creates the root company.
type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
}

// CreateSubsidiaryRequest creates a subsidiary under the root company.
type CreateSubsidiaryRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
}

// CompanyResponse is a company or subsidiary.
type CompanyResponse struct {
	CompanyID       int64     `json:"id"`
	Name            string    `json:"name"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	ParentCompanyID *int64    `json:"parent_company_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// SubsidiarySummaryResponse is a subsidiary with its wallet figures.
type SubsidiarySummaryResponse struct {
	CompanyID        int64           `json:"id"`
	Name             string          `json:"name"`
	AllocatedAmount  decimal.Decimal `json:"allocated_amount"`
	UsedAmount       decimal.Decimal `json:"used_amount"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CreateDepartmentRequest creates a department inside a company.
type CreateDepartmentRequest struct {
	Name      string `json:"name" binding:"required"`
	CompanyID int64  `json:"company_id" binding:"required"`
}

// DepartmentResponse is a department row.
type DepartmentResponse struct {
	DepartmentID int64     `json:"id"`
	Name         string    `json:"name"`
	CompanyID    int64     `json:"company_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateStorehouseRequest creates a storehouse for a company.
type CreateStorehouseRequest struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location"`
	CompanyID int64  `json:"company_id" binding:"required"`
}

// StorehouseResponse is a storehouse row.
type StorehouseResponse struct {
	StorehouseID int64     `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	CompanyID    int64     `json:"company_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToCompanyResponse converts a domain company to its response DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:       c.CompanyID,
		Name:            c.Name,
		ContactEmail:    c.ContactEmail,
		ParentCompanyID: c.ParentCompanyID,
		CreatedAt:       c.CreatedAt,
	}
}

// ToCompanyResponseSlice converts domain companies to response DTOs.
func ToCompanyResponseSlice(companies []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return out
}

// ToDepartmentResponse converts a domain department to its response DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		CompanyID:    d.CompanyID,
		CreatedAt:    d.CreatedAt,
	}
}

// ToStorehouseResponse converts a domain storehouse to its response DTO.
func ToStorehouseResponse(s *domain.Storehouse) StorehouseResponse {
	return StorehouseResponse{
		StorehouseID: s.StorehouseID,
		Name:         s.Name,
		Location:     s.Location,
		CompanyID:    s.CompanyID,
		CreatedAt:    s.CreatedAt,
	}
}
