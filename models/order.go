package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of an order's fulfillment lifecycle
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusReady      OrderStatus = "ready"
	StatusDelivering OrderStatus = "delivering"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the recognized order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusDelivering, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentTransfer
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentCompleted || s == PaymentFailed
}

// Customizations maps a customization option id to the chosen value id.
// Persisted as a JSON text column, the same shape the checkout client sends.
type Customizations map[uint]uint

func (c Customizations) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *Customizations) Scan(src interface{}) error {
	if src == nil {
		*c = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan customizations from %T", src)
	}
	if len(b) == 0 {
		*c = nil
		return nil
	}
	return json.Unmarshal(b, c)
}

type Order struct {
	ID              uint                 `json:"id" gorm:"primaryKey"`
	UserID          uint                 `json:"user_id" gorm:"not null;index"`
	User            User                 `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status          OrderStatus          `json:"status" gorm:"not null;default:'pending';index"`
	TotalPrice      decimal.Decimal      `json:"total_price" gorm:"type:decimal(10,2);not null"` // fixed at creation, never recomputed
	DeliveryAddress string               `json:"delivery_address" gorm:"not null"`
	PaymentMethod   PaymentMethod        `json:"payment_method" gorm:"not null"`
	PaymentStatus   PaymentStatus        `json:"payment_status" gorm:"not null;default:'pending'"`
	AssignedRiderID *uint                `json:"assigned_rider_id"`
	AssignedRider   *User                `json:"assigned_rider,omitempty" gorm:"foreignKey:AssignedRiderID"`
	Items           []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory   []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	OrderID        uint            `json:"order_id" gorm:"not null;index"`
	MenuItemID     uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem       MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity       int             `json:"quantity" gorm:"not null"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"` // unit price snapshot at order time
	Customizations Customizations  `json:"customizations,omitempty" gorm:"type:text"`
	CreatedAt      time.Time       `json:"created_at"`
}

// OrderStatusHistory tracks every status change for audit purposes
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
