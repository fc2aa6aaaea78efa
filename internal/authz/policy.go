// Package authz holds the declarative authorization policy: one table
// mapping each operation to the set of roles allowed to perform it,
// consulted by a single middleware instead of ad hoc role checks scattered
// across handlers.
package authz

import (
	"github.com/tripvault/tripvault/internal/core/domain"
)

// Operation names one guarded API action.
type Operation string

const (
	OpCreateCompany     Operation = "company:create"
	OpCreateSubsidiary  Operation = "company:create_subsidiary"
	OpListCompanies     Operation = "company:list"
	OpListSubsidiaries  Operation = "company:list_subsidiaries"
	OpManageDepartments Operation = "department:manage"
	OpManageStorehouses Operation = "storehouse:manage"
	OpRegisterUser      Operation = "user:register"
	OpListEmployees     Operation = "user:list"
	OpViewMainWallet    Operation = "wallet:view_main"
	OpViewCompanyWallet Operation = "wallet:view_company"
	OpViewOwnWallet     Operation = "wallet:view_own"
	OpAllocateCompany   Operation = "wallet:allocate_company"
	OpAllocateEmployee  Operation = "wallet:allocate_employee"
	OpViewTransactions  Operation = "wallet:view_transactions"
	OpViewCatalog       Operation = "booking:view_catalog"
	OpCreateBooking     Operation = "booking:create"
	OpListBookings      Operation = "booking:list"
	OpListManagerQueue  Operation = "booking:list_manager_queue"
	OpApproveBooking    Operation = "booking:approve"
	OpRejectBooking     Operation = "booking:reject"
	OpCancelBooking     Operation = "booking:cancel"
)

// allRoles is the full role universe, used for operations any authenticated
// user may perform.
var allRoles = []domain.Role{
	domain.RoleSuperAdmin, domain.RoleCompanyAdmin, domain.RoleSubsidiaryAdmin,
	domain.RoleEmployee, domain.RoleManager, domain.RoleFinance, domain.RoleHR,
}

// policy is the single source of truth for {operation -> allowed role set}.
var policy = map[Operation][]domain.Role{
	OpCreateCompany:    {domain.RoleSuperAdmin},
	OpCreateSubsidiary: {domain.RoleSuperAdmin},
	OpListCompanies:    {domain.RoleSuperAdmin, domain.RoleCompanyAdmin},
	OpListSubsidiaries: {domain.RoleSuperAdmin, domain.RoleCompanyAdmin, domain.RoleFinance},

	OpManageDepartments: {domain.RoleSubsidiaryAdmin},
	OpManageStorehouses: {domain.RoleSuperAdmin, domain.RoleCompanyAdmin, domain.RoleSubsidiaryAdmin},

	OpRegisterUser: {domain.RoleSuperAdmin, domain.RoleCompanyAdmin, domain.RoleSubsidiaryAdmin, domain.RoleHR},
	OpListEmployees: {domain.RoleSuperAdmin, domain.RoleCompanyAdmin, domain.RoleSubsidiaryAdmin, domain.RoleHR},

	OpViewMainWallet:    {domain.RoleSuperAdmin, domain.RoleCompanyAdmin, domain.RoleFinance},
	OpViewCompanyWallet: {domain.RoleSuperAdmin, domain.RoleCompanyAdmin, domain.RoleSubsidiaryAdmin, domain.RoleFinance},
	OpViewOwnWallet:     allRoles,
	OpAllocateCompany:   {domain.RoleCompanyAdmin, domain.RoleFinance},
	OpAllocateEmployee:  {domain.RoleCompanyAdmin, domain.RoleSubsidiaryAdmin, domain.RoleFinance},
	OpViewTransactions:  {domain.RoleSuperAdmin, domain.RoleCompanyAdmin, domain.RoleFinance},

	OpViewCatalog:      allRoles,
	OpCreateBooking:    {domain.RoleEmployee},
	OpListBookings:     allRoles,
	OpListManagerQueue: {domain.RoleManager, domain.RoleSuperAdmin, domain.RoleCompanyAdmin},
	OpApproveBooking:   {domain.RoleManager, domain.RoleSuperAdmin, domain.RoleCompanyAdmin},
	OpRejectBooking:    {domain.RoleManager, domain.RoleSuperAdmin, domain.RoleCompanyAdmin},
	OpCancelBooking:    {domain.RoleEmployee, domain.RoleManager},
}

// Allowed reports whether role may perform op. Unknown operations are denied.
func Allowed(op Operation, role domain.Role) bool {
	roles, ok := policy[op]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// RolesFor returns the allowed role set for an operation.
func RolesFor(op Operation) []domain.Role {
	return policy[op]
}
