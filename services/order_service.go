package services

import (
	"errors"
	"strings"

	"restaurant-orders-api/authz"
	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/statemachine"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService validates input, resolves catalog prices server-side,
// enforces role rules and the status state machine, and orchestrates
// repository calls.
type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs -----

type OrderItemInput struct {
	MenuItemID     uint                  `json:"menu_item_id" binding:"required"`
	Quantity       int                   `json:"quantity" binding:"required,min=1"`
	Customizations models.Customizations `json:"customizations"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput     `json:"items" binding:"required,min=1"`
	DeliveryAddress string               `json:"delivery_address" binding:"required"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"required"`

	// TotalPrice is a client-side display hint only. The server recomputes
	// the total from the catalog and never trusts this value.
	TotalPrice string `json:"total_price"`
}

type CreateOrderResult struct {
	OrderID    uint               `json:"order_id"`
	Status     models.OrderStatus `json:"status"`
	TotalPrice string             `json:"total_price"`
}

type OrderDetails struct {
	Order models.Order       `json:"order"`
	Items []models.OrderItem `json:"items"`
}

// Create places a new order for callerID. Prices are always resolved from
// the catalog at call time; a client-supplied total is never trusted. The
// order row, its line items and the initial history row are written in one
// transaction so a partial order is never visible.
func (s *OrderService) Create(callerID uint, in *CreateOrderInput) (*CreateOrderResult, error) {
	if len(in.Items) == 0 {
		return nil, validationf("order must contain at least one item")
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, validationf("delivery address is required")
	}
	if !in.PaymentMethod.Valid() {
		return nil, validationf("unknown payment method %q (must be cash or transfer)", in.PaymentMethod)
	}

	type resolvedLine struct {
		menuItemID     uint
		quantity       int
		unitPrice      decimal.Decimal
		customizations models.Customizations
	}

	lines := make([]resolvedLine, 0, len(in.Items))
	total := decimal.Zero

	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, validationf("quantity must be at least 1 for menu item %d", it.MenuItemID)
		}

		menuItem, err := s.Repo.GetMenuItem(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundf("menu item %d not found", it.MenuItemID)
			}
			return nil, internalf("resolve menu item %d: %v", it.MenuItemID, err)
		}
		if !menuItem.IsAvailable {
			return nil, validationf("menu item %q is not available", menuItem.Name)
		}

		// Unit price snapshot: catalog price plus chosen customization
		// modifiers, fixed here regardless of later catalog changes.
		unit := menuItem.Price
		for optionID, valueID := range it.Customizations {
			v, err := s.Repo.GetOptionValue(menuItem.ID, optionID, valueID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, notFoundf("customization value %d for option %d not found on menu item %d",
						valueID, optionID, menuItem.ID)
				}
				return nil, internalf("resolve customization %d/%d: %v", optionID, valueID, err)
			}
			unit = unit.Add(v.PriceModifier)
		}
		unit = unit.Round(2)

		total = total.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
		lines = append(lines, resolvedLine{
			menuItemID:     menuItem.ID,
			quantity:       it.Quantity,
			unitPrice:      unit,
			customizations: it.Customizations,
		})
	}
	total = total.Round(2)

	order := models.Order{
		UserID:          callerID,
		Status:          models.StatusPending,
		TotalPrice:      total,
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   models.PaymentPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, line := range lines {
			item := models.OrderItem{
				OrderID:        order.ID,
				MenuItemID:     line.menuItemID,
				Quantity:       line.quantity,
				Price:          line.unitPrice,
				Customizations: line.customizations,
			}
			if err := s.Repo.CreateOrderItem(tx, &item); err != nil {
				return err
			}
		}
		return s.Repo.CreateStatusHistory(tx, &models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPending,
			ChangedBy: callerID,
			Note:      "Order placed by customer",
		})
	})
	if err != nil {
		return nil, internalf("create order: %v", err)
	}

	return &CreateOrderResult{
		OrderID:    order.ID,
		Status:     order.Status,
		TotalPrice: order.TotalPrice.StringFixed(2),
	}, nil
}

// Details returns an order with its line items. Customers may only read
// their own orders; staff roles may read any. Reads never mutate the order.
func (s *OrderService) Details(callerID uint, role models.UserRole, orderID uint) (*OrderDetails, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("order %d not found", orderID)
		}
		return nil, internalf("load order %d: %v", orderID, err)
	}

	if role == models.RoleCustomer && order.UserID != callerID {
		return nil, forbiddenf("this order does not belong to you")
	}

	items, err := s.Repo.GetOrderItems(orderID)
	if err != nil {
		return nil, internalf("load order %d items: %v", orderID, err)
	}

	return &OrderDetails{Order: *order, Items: items}, nil
}

// UpdateStatus moves an order through the lifecycle. Only admin and kitchen
// may advance status, and only admin may cancel. The transition is checked
// against the persisted status inside a transaction with a conditional
// write, so two racing staff members cannot double-apply or skip a state.
func (s *OrderService) UpdateStatus(callerID uint, role models.UserRole, orderID uint, next models.OrderStatus) error {
	if !next.Valid() {
		return validationf("unknown order status %q", next)
	}
	if !authz.Allowed(role, authz.AdvanceStatus) {
		return forbiddenf("role %q may not update order status", role)
	}
	if next == models.StatusCancelled && !authz.Allowed(role, authz.CancelOrder) {
		return forbiddenf("role %q may not cancel orders", role)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("order %d not found", orderID)
			}
			return internalf("load order %d: %v", orderID, err)
		}

		if err := statemachine.CanTransition(order.Status, next); err != nil {
			return invalidTransitionf("%v", err)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, order.Status, next)
		if err != nil {
			return internalf("update order %d status: %v", orderID, err)
		}
		if affected == 0 {
			// Another transition won the race between our read and write.
			return invalidTransitionf("order %d status changed concurrently, re-read and retry", orderID)
		}

		return s.Repo.CreateStatusHistory(tx, &models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: order.Status,
			ToStatus:   next,
			ChangedBy:  callerID,
		})
	})
}

// AssignRider attaches a rider to an order (admin only). The target user
// must actually hold the rider role.
func (s *OrderService) AssignRider(role models.UserRole, orderID, riderID uint) error {
	if role != models.RoleAdmin {
		return forbiddenf("role %q may not assign riders", role)
	}

	rider, err := s.Repo.GetUser(riderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("user %d not found", riderID)
		}
		return internalf("load user %d: %v", riderID, err)
	}
	if rider.Role != models.RoleRider {
		return validationf("user %d is not a rider", riderID)
	}

	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("order %d not found", orderID)
		}
		return internalf("load order %d: %v", orderID, err)
	}

	if err := s.Repo.AssignRider(orderID, riderID); err != nil {
		return internalf("assign rider to order %d: %v", orderID, err)
	}
	return nil
}

// SetPaymentStatus records the outcome of an out-of-band payment (admin only).
func (s *OrderService) SetPaymentStatus(role models.UserRole, orderID uint, status models.PaymentStatus) error {
	if role != models.RoleAdmin {
		return forbiddenf("role %q may not update payment status", role)
	}
	if !status.Valid() {
		return validationf("unknown payment status %q", status)
	}

	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("order %d not found", orderID)
		}
		return internalf("load order %d: %v", orderID, err)
	}

	if err := s.Repo.UpdatePaymentStatus(orderID, status); err != nil {
		return internalf("update order %d payment status: %v", orderID, err)
	}
	return nil
}
