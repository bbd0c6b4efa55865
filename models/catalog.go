package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	MenuItems   []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID          uint                  `json:"id" gorm:"primaryKey"`
	CategoryID  uint                  `json:"category_id" gorm:"not null"`
	Name        string                `json:"name" gorm:"not null"`
	Description string                `json:"description"`
	Price       decimal.Decimal       `json:"price" gorm:"type:decimal(10,2);not null"`
	Image       string                `json:"image"`
	IsAvailable bool                  `json:"is_available" gorm:"default:true"`
	Options     []CustomizationOption `json:"options,omitempty" gorm:"foreignKey:MenuItemID"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// OptionType says whether a customization option takes one value or several
type OptionType string

const (
	OptionSingle   OptionType = "single"
	OptionMultiple OptionType = "multiple"
)

type CustomizationOption struct {
	ID         uint                 `json:"id" gorm:"primaryKey"`
	MenuItemID uint                 `json:"menu_item_id" gorm:"not null"`
	Name       string               `json:"name" gorm:"not null"`
	Type       OptionType           `json:"type" gorm:"not null;default:'single'"`
	Values     []CustomizationValue `json:"values,omitempty" gorm:"foreignKey:OptionID"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

type CustomizationValue struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OptionID      uint            `json:"option_id" gorm:"not null"`
	Value         string          `json:"value" gorm:"not null"`
	PriceModifier decimal.Decimal `json:"price_modifier" gorm:"type:decimal(10,2);default:0"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Favorite lets a customer bookmark a menu item
type Favorite struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_fav_user_item"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_fav_user_item"`
	MenuItem   MenuItem  `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	CreatedAt  time.Time `json:"created_at"`
}
