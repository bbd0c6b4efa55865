package authz

import (
	"testing"

	"restaurant-orders-api/models"

	"github.com/stretchr/testify/assert"
)

func TestPermissionMatrix(t *testing.T) {
	cases := []struct {
		role   models.UserRole
		action Action
		want   bool
	}{
		{models.RoleCustomer, ViewOwnOrders, true},
		{models.RoleCustomer, ViewAllOrders, false},
		{models.RoleCustomer, ViewDeliveryQueue, false},
		{models.RoleCustomer, AdvanceStatus, false},
		{models.RoleCustomer, CancelOrder, false},
		{models.RoleCustomer, ManageMenu, false},

		{models.RoleKitchen, ViewOwnOrders, true},
		{models.RoleKitchen, ViewAllOrders, true},
		{models.RoleKitchen, ViewDeliveryQueue, false},
		{models.RoleKitchen, AdvanceStatus, true},
		{models.RoleKitchen, CancelOrder, false},
		{models.RoleKitchen, ManageMenu, false},

		{models.RoleRider, ViewOwnOrders, true},
		{models.RoleRider, ViewAllOrders, false},
		{models.RoleRider, ViewDeliveryQueue, true},
		{models.RoleRider, AdvanceStatus, false},
		{models.RoleRider, CancelOrder, false},
		{models.RoleRider, ManageMenu, false},

		{models.RoleAdmin, ViewOwnOrders, true},
		{models.RoleAdmin, ViewAllOrders, true},
		{models.RoleAdmin, ViewDeliveryQueue, true},
		{models.RoleAdmin, AdvanceStatus, true},
		{models.RoleAdmin, CancelOrder, true},
		{models.RoleAdmin, ManageMenu, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Allowed(tc.role, tc.action),
			"role %s action %s", tc.role, tc.action)
	}
}

func TestDenyByDefault(t *testing.T) {
	assert.False(t, Allowed(models.UserRole("ghost"), ViewOwnOrders))
	assert.False(t, Allowed(models.RoleAdmin, Action("unknownAction")))
	assert.False(t, Allowed(models.UserRole(""), Action("")))
}
