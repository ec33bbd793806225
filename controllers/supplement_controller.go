package controllers

import (
	"net/http"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/config"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/models"

	"github.com/gin-gonic/gin"
)

// GET /supplements/search?ingredient=밀크씨슬
func SearchSupplements(c *gin.Context) {
	name := c.Query("ingredient")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient query parameter required"})
		return
	}

	var ingredient models.Ingredient
	if err := config.DB.Where("name = ?", name).First(&ingredient).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"ingredient": name, "supplements": []models.Medicine{}})
		return
	}

	var medicines []models.Medicine
	if err := config.DB.
		Distinct("medicines.*").
		Joins("JOIN medicines_ingredients mi ON mi.medicine_id = medicines.id").
		Where("mi.ingredient_id = ?", ingredient.ID).
		Find(&medicines).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredient": ingredient.Name, "supplements": medicines})
}

// GET /supplements/ingredients
func ListIngredients(c *gin.Context) {
	var ingredients []models.Ingredient
	if err := config.DB.Order("name ASC").Find(&ingredients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}
