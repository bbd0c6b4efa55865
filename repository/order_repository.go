package repository

import (
	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- writes ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *models.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, item *models.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) CreateStatusHistory(tx *gorm.DB, h *models.OrderStatusHistory) error {
	return tx.Create(h).Error
}

// UpdateStatusGuard performs a conditional write: the status only changes if
// the row still holds the expected current status. Returns rows affected so
// the caller can detect a concurrent transition that won the race.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to models.OrderStatus) (int64, error) {
	res := tx.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) AssignRider(orderID uint, riderID uint) error {
	return r.DB.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("assigned_rider_id", riderID).Error
}

func (r *OrderRepository) UpdatePaymentStatus(orderID uint, status models.PaymentStatus) error {
	return r.DB.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", status).Error
}

// ---------------- single-row reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*models.Order, error) {
	var o models.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.DB.Preload("MenuItem").
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetMenuItem(menuItemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.First(&item, menuItemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderRepository) GetUser(userID uint) (*models.User, error) {
	var u models.User
	if err := r.DB.First(&u, userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetOptionValue resolves a chosen customization value, verifying the whole
// chain: the value belongs to the option and the option belongs to the menu
// item the line refers to.
func (r *OrderRepository) GetOptionValue(menuItemID, optionID, valueID uint) (*models.CustomizationValue, error) {
	var v models.CustomizationValue
	err := r.DB.
		Joins("JOIN customization_options ON customization_options.id = customization_values.option_id").
		Where("customization_values.id = ? AND customization_values.option_id = ? AND customization_options.menu_item_id = ?",
			valueID, optionID, menuItemID).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ---------------- list projections ----------------

func (r *OrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByStatuses(statuses []models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items").
		Where("status IN ?", statuses).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// ListDelivering returns delivering orders visible to a rider: either
// assigned to them or still in the unassigned pool.
func (r *OrderRepository) ListDelivering(riderID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items").
		Where("status = ? AND (assigned_rider_id = ? OR assigned_rider_id IS NULL)",
			models.StatusDelivering, riderID).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}
