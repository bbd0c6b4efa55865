package services

import (
	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
)

// OrderQueries provides role-scoped read projections over the order store.
// Each is a thin filter; role enforcement happens at the route layer.
type OrderQueries struct {
	Repo *repository.OrderRepository
}

func NewOrderQueries(repo *repository.OrderRepository) *OrderQueries {
	return &OrderQueries{Repo: repo}
}

// CustomerOrders returns the caller's own orders, newest first.
func (q *OrderQueries) CustomerOrders(userID uint) ([]models.Order, error) {
	orders, err := q.Repo.ListByUser(userID)
	if err != nil {
		return nil, internalf("list orders for user %d: %v", userID, err)
	}
	return orders, nil
}

// KitchenQueue returns orders the kitchen needs to work on, oldest first
// so prep stays fair.
func (q *OrderQueries) KitchenQueue() ([]models.Order, error) {
	orders, err := q.Repo.ListByStatuses([]models.OrderStatus{
		models.StatusConfirmed,
		models.StatusPreparing,
	})
	if err != nil {
		return nil, internalf("list kitchen queue: %v", err)
	}
	return orders, nil
}

// RiderQueue returns delivering orders visible to a rider: assigned to them
// or still unassigned.
func (q *OrderQueries) RiderQueue(riderID uint) ([]models.Order, error) {
	orders, err := q.Repo.ListDelivering(riderID)
	if err != nil {
		return nil, internalf("list delivery queue for rider %d: %v", riderID, err)
	}
	return orders, nil
}

// AdminAll returns every order, newest first.
func (q *OrderQueries) AdminAll() ([]models.Order, error) {
	orders, err := q.Repo.ListAll()
	if err != nil {
		return nil, internalf("list all orders: %v", err)
	}
	return orders, nil
}
