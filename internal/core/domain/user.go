package domain

import "time"

// Role enumerates the authorization roles a user can hold.
type Role string

const (
	RoleSuperAdmin      Role = "SUPER_ADMIN"
	RoleCompanyAdmin    Role = "COMPANY_ADMIN"
	RoleSubsidiaryAdmin Role = "SUBSIDIARY_ADMIN"
	RoleEmployee        Role = "EMPLOYEE"
	RoleManager         Role = "MANAGER"
	RoleFinance         Role = "FINANCE"
	RoleHR              Role = "HR"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleSubsidiaryAdmin,
		RoleEmployee, RoleManager, RoleFinance, RoleHR:
		return true
	}
	return false
}

// User represents an account in the identity directory. ManagerID links an
// employee to the manager who approves their bookings; bookings created by a
// user without a manager are unrouted.
type User struct {
	UserID       int64     `json:"userID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CompanyID    int64     `json:"companyID"`
	SubsidiaryID *int64    `json:"subsidiaryID,omitempty"`
	ManagerID    *int64    `json:"managerID,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserScope is the authorization scope resolved for a user: their role and
// the company/subsidiary they belong to.
type UserScope struct {
	Role         Role   `json:"role"`
	CompanyID    int64  `json:"companyID"`
	SubsidiaryID *int64 `json:"subsidiaryID,omitempty"`
}
