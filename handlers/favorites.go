package handlers

import (
	"net/http"

	"restaurant-orders-api/config"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

// ListFavorites returns the customer's bookmarked menu items
func ListFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var favorites []models.Favorite
	config.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites)
	c.JSON(http.StatusOK, gin.H{"count": len(favorites), "favorites": favorites})
}

type addFavoriteRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
}

// AddFavorite bookmarks a menu item for the customer
func AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var existing models.Favorite
	if err := config.DB.Where("user_id = ? AND menu_item_id = ?", userID, req.MenuItemID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Already in favorites", "favorite": existing})
		return
	}

	favorite := models.Favorite{UserID: userID, MenuItemID: req.MenuItemID}
	if err := config.DB.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites", "favorite": favorite})
}

// RemoveFavorite deletes a bookmark
func RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}

	result := config.DB.Where("user_id = ? AND menu_item_id = ?", userID, itemID).
		Delete(&models.Favorite{})
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
