package services

import (
	"fmt"
	"testing"
	"time"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*OrderService, *OrderQueries, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// in-memory sqlite lives per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.CustomizationOption{},
		&models.CustomizationValue{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	))

	repo := repository.NewOrderRepository(db)
	return NewOrderService(db, repo), NewOrderQueries(repo), db
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole) models.User {
	t.Helper()
	userSeq++
	u := models.User{
		Name:         fmt.Sprintf("%s %d", role, userSeq),
		Email:        fmt.Sprintf("%s%d@example.com", role, userSeq),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, price string) models.MenuItem {
	t.Helper()

	var category models.Category
	err := db.First(&category).Error
	if err != nil {
		category = models.Category{Name: "Mains"}
		require.NoError(t, db.Create(&category).Error)
	}

	item := models.MenuItem{
		CategoryID:  category.ID,
		Name:        name,
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, status models.OrderStatus, createdAt time.Time) models.Order {
	t.Helper()
	o := models.Order{
		UserID:          userID,
		Status:          status,
		TotalPrice:      decimal.RequireFromString("10.00"),
		DeliveryAddress: "1 Test Lane",
		PaymentMethod:   models.PaymentCash,
		PaymentStatus:   models.PaymentPending,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func now() time.Time {
	return time.Now()
}

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	require.Error(t, err)
	return KindOf(err)
}
