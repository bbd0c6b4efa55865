package services

import (
	"testing"
	"time"

	"restaurant-orders-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerOrdersNewestFirst(t *testing.T) {
	_, queries, db := newTestService(t)
	customer := seedUser(t, db, models.RoleCustomer)
	other := seedUser(t, db, models.RoleCustomer)

	base := time.Now().Add(-3 * time.Hour)
	old := seedOrder(t, db, customer.ID, models.StatusPending, base)
	newer := seedOrder(t, db, customer.ID, models.StatusConfirmed, base.Add(time.Hour))
	seedOrder(t, db, other.ID, models.StatusPending, base.Add(2*time.Hour))

	orders, err := queries.CustomerOrders(customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2, "must only see own orders")
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, old.ID, orders[1].ID)
}

func TestKitchenQueueFilterAndFIFO(t *testing.T) {
	_, queries, db := newTestService(t)
	customer := seedUser(t, db, models.RoleCustomer)

	base := time.Now().Add(-4 * time.Hour)
	oldest := seedOrder(t, db, customer.ID, models.StatusPreparing, base)
	middle := seedOrder(t, db, customer.ID, models.StatusConfirmed, base.Add(time.Hour))

	// None of these belong in the prep queue.
	seedOrder(t, db, customer.ID, models.StatusPending, base.Add(2*time.Hour))
	seedOrder(t, db, customer.ID, models.StatusReady, base.Add(2*time.Hour))
	seedOrder(t, db, customer.ID, models.StatusDelivering, base.Add(2*time.Hour))
	seedOrder(t, db, customer.ID, models.StatusCompleted, base.Add(2*time.Hour))
	seedOrder(t, db, customer.ID, models.StatusCancelled, base.Add(2*time.Hour))

	queue, err := queries.KitchenQueue()
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, oldest.ID, queue[0].ID, "oldest order is prepped first")
	assert.Equal(t, middle.ID, queue[1].ID)
}

func TestRiderQueueAssignedAndUnassigned(t *testing.T) {
	_, queries, db := newTestService(t)
	customer := seedUser(t, db, models.RoleCustomer)
	rider := seedUser(t, db, models.RoleRider)
	otherRider := seedUser(t, db, models.RoleRider)

	base := time.Now().Add(-2 * time.Hour)
	mine := seedOrder(t, db, customer.ID, models.StatusDelivering, base)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", mine.ID).
		Update("assigned_rider_id", rider.ID).Error)

	pool := seedOrder(t, db, customer.ID, models.StatusDelivering, base.Add(time.Minute))

	someoneElses := seedOrder(t, db, customer.ID, models.StatusDelivering, base.Add(2*time.Minute))
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", someoneElses.ID).
		Update("assigned_rider_id", otherRider.ID).Error)

	// Not out for delivery yet.
	seedOrder(t, db, customer.ID, models.StatusReady, base.Add(3*time.Minute))

	queue, err := queries.RiderQueue(rider.ID)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	ids := []uint{queue[0].ID, queue[1].ID}
	assert.Contains(t, ids, mine.ID)
	assert.Contains(t, ids, pool.ID)
	assert.NotContains(t, ids, someoneElses.ID)
}

func TestAdminAllNewestFirst(t *testing.T) {
	_, queries, db := newTestService(t)
	a := seedUser(t, db, models.RoleCustomer)
	b := seedUser(t, db, models.RoleCustomer)

	base := time.Now().Add(-2 * time.Hour)
	first := seedOrder(t, db, a.ID, models.StatusPending, base)
	second := seedOrder(t, db, b.ID, models.StatusCompleted, base.Add(time.Hour))

	orders, err := queries.AdminAll()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
