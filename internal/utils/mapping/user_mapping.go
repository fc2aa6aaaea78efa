package mapping

import (
	"github.com/tripvault/tripvault/internal/core/domain"
	"github.com/tripvault/tripvault/internal/models"
)

// ToDomainUser converts a users row.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		CompanyID:    m.CompanyID,
		SubsidiaryID: m.SubsidiaryID,
		ManagerID:    m.ManagerID,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainUserSlice converts a slice of users rows.
func ToDomainUserSlice(ms []models.User) []domain.User {
	out := make([]domain.User, len(ms))
	for i, m := range ms {
		out[i] = ToDomainUser(m)
	}
	return out
}

// ToDomainCompany converts a companies row.
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:       m.CompanyID,
		Name:            m.Name,
		ContactEmail:    m.ContactEmail,
		ParentCompanyID: m.ParentCompanyID,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainDepartment converts a departments row.
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID: m.DepartmentID,
		Name:         m.Name,
		CompanyID:    m.CompanyID,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainStorehouse converts a storehouses row.
func ToDomainStorehouse(m models.Storehouse) domain.Storehouse {
	return domain.Storehouse{
		StorehouseID: m.StorehouseID,
		Name:         m.Name,
		Location:     m.Location,
		CompanyID:    m.CompanyID,
		CreatedAt:    m.CreatedAt,
	}
}
