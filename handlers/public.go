package handlers

import (
	"net/http"

	"restaurant-orders-api/config"
	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListCategories returns every menu category
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Order("id asc").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// ListMenuItems returns available menu items, optionally filtered by category
func ListMenuItems(c *gin.Context) {
	query := config.DB.Where("is_available = ?", true)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var items []models.MenuItem
	query.Order("id asc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// GetMenuItem returns a single menu item with its customization options
func GetMenuItem(c *gin.Context) {
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var item models.MenuItem
	if err := config.DB.Preload("Options.Values").First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// GetStateMachineInfo documents the order lifecycle for clients
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	out := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"states": []models.OrderStatus{
			models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
			models.StatusReady, models.StatusDelivering, models.StatusCompleted,
			models.StatusCancelled,
		},
		"initial_state":   models.StatusPending,
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
		"transitions":     out,
	})
}
