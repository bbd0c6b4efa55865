package authz

import "restaurant-orders-api/models"

// Action is something a caller wants to do that needs a permission check
type Action string

const (
	ViewOwnOrders     Action = "viewOwnOrders"
	ViewAllOrders     Action = "viewAllOrders"
	ViewDeliveryQueue Action = "viewDeliveryQueue"
	AdvanceStatus     Action = "advanceStatus"
	CancelOrder       Action = "cancelOrder"
	ManageMenu        Action = "manageMenu"
)

// permissions is the full role/action matrix. Kitchen sees all orders so it
// can plan prep; only admin may cancel or touch the menu.
var permissions = map[models.UserRole]map[Action]bool{
	models.RoleCustomer: {
		ViewOwnOrders: true,
	},
	models.RoleKitchen: {
		ViewOwnOrders: true,
		ViewAllOrders: true,
		AdvanceStatus: true,
	},
	models.RoleRider: {
		ViewOwnOrders:     true,
		ViewDeliveryQueue: true,
	},
	models.RoleAdmin: {
		ViewOwnOrders:     true,
		ViewAllOrders:     true,
		ViewDeliveryQueue: true,
		AdvanceStatus:     true,
		CancelOrder:       true,
		ManageMenu:        true,
	},
}

// Allowed reports whether role may perform action. Any pair not listed in
// the matrix is denied.
func Allowed(role models.UserRole, action Action) bool {
	return permissions[role][action]
}
