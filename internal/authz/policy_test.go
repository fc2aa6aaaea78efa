package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripvault/tripvault/internal/authz"
	"github.com/tripvault/tripvault/internal/core/domain"
)

func TestAllowed(t *testing.T) {
	testCases := []struct {
		name string
		op   authz.Operation
		role domain.Role
		want bool
	}{
		{"employee can create booking", authz.OpCreateBooking, domain.RoleEmployee, true},
		{"manager cannot create booking", authz.OpCreateBooking, domain.RoleManager, false},
		{"manager approves booking", authz.OpApproveBooking, domain.RoleManager, true},
		{"employee cannot approve booking", authz.OpApproveBooking, domain.RoleEmployee, false},
		{"finance allocates to company", authz.OpAllocateCompany, domain.RoleFinance, true},
		{"hr cannot allocate to company", authz.OpAllocateCompany, domain.RoleHR, false},
		{"super admin creates subsidiary", authz.OpCreateSubsidiary, domain.RoleSuperAdmin, true},
		{"company admin cannot create subsidiary", authz.OpCreateSubsidiary, domain.RoleCompanyAdmin, false},
		{"any role views catalog", authz.OpViewCatalog, domain.RoleHR, true},
		{"unknown operation denied", authz.Operation("nope"), domain.RoleSuperAdmin, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, authz.Allowed(tc.op, tc.role))
		})
	}
}

func TestRolesFor_EveryOperationHasRoles(t *testing.T) {
	ops := []authz.Operation{
		authz.OpCreateCompany, authz.OpCreateSubsidiary, authz.OpListCompanies,
		authz.OpListSubsidiaries, authz.OpManageDepartments, authz.OpManageStorehouses,
		authz.OpRegisterUser, authz.OpListEmployees, authz.OpViewMainWallet,
		authz.OpViewCompanyWallet, authz.OpViewOwnWallet, authz.OpAllocateCompany,
		authz.OpAllocateEmployee, authz.OpViewTransactions, authz.OpViewCatalog,
		authz.OpCreateBooking, authz.OpListBookings, authz.OpListManagerQueue,
		authz.OpApproveBooking, authz.OpRejectBooking, authz.OpCancelBooking,
	}
	for _, op := range ops {
		assert.NotEmpty(t, authz.RolesFor(op), "operation %s has no allowed roles", op)
	}
}
