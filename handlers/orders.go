package handlers

import (
	"net/http"

	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"
	"restaurant-orders-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderHandler adapts the order service and query facade to HTTP
type OrderHandler struct {
	Service *services.OrderService
	Queries *services.OrderQueries
}

func NewOrderHandler(service *services.OrderService, queries *services.OrderQueries) *OrderHandler {
	return &OrderHandler{Service: service, Queries: queries}
}

// CreateOrder places a new order (customer only)
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var in services.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Create(middleware.GetUserID(c), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   result,
	})
}

// ListMyOrders returns all orders for the logged-in customer, newest first
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.Queries.CustomerOrders(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetails returns a single order with its items. Customers may only
// see their own orders; staff may see any.
func (h *OrderHandler) GetOrderDetails(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	details, err := h.Service.Details(middleware.GetUserID(c), middleware.GetRole(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus advances an order through the lifecycle (admin/kitchen)
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.UpdateStatus(middleware.GetUserID(c), middleware.GetRole(c), orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order_id": orderID, "status": req.Status})
}

// KitchenQueue returns confirmed and preparing orders, oldest first
func (h *OrderHandler) KitchenQueue(c *gin.Context) {
	orders, err := h.Queries.KitchenQueue()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// RiderDeliveries returns delivering orders for the logged-in rider
func (h *OrderHandler) RiderDeliveries(c *gin.Context) {
	orders, err := h.Queries.RiderQueue(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListAllOrders returns every order with an aggregate dashboard summary
// (admin and kitchen)
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.Queries.AdminAll()
	if err != nil {
		respondError(c, err)
		return
	}

	summary := map[string]int{}
	revenue := decimal.Zero
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusCompleted {
			revenue = revenue.Add(o.TotalPrice)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": revenue.StringFixed(2),
		"count":         len(orders),
		"orders":        orders,
	})
}

type assignRiderRequest struct {
	RiderID uint `json:"rider_id" binding:"required"`
}

// AssignRider attaches a rider to an order (admin only)
func (h *OrderHandler) AssignRider(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req assignRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.AssignRider(middleware.GetRole(c), orderID, req.RiderID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order_id": orderID, "rider_id": req.RiderID})
}

type paymentStatusRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required"`
}

// SetPaymentStatus records the outcome of an out-of-band payment (admin only)
func (h *OrderHandler) SetPaymentStatus(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req paymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SetPaymentStatus(middleware.GetRole(c), orderID, req.PaymentStatus); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order_id": orderID, "payment_status": req.PaymentStatus})
}
