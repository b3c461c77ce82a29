package controllers

import (
	"net/http"
	"strconv"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
)

func GetShops(c *gin.Context) {
	var shops []models.Shop
	if err := config.DB.Order("id").Find(&shops).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	// pusta kolekcja dostaje domyslne sklepy
	if len(shops) == 0 {
		config.SeedDefaults()
		if err := config.DB.Order("id").Find(&shops).Error; err != nil {
			utils.ServerError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, shops)
}

// CreateShop nadaje kolejne geste ID (max + 1).
func CreateShop(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	var maxID int
	config.DB.Model(&models.Shop{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID)

	shop := models.Shop{
		ID:       maxID + 1,
		Name:     input.Name,
		Color:    input.Color,
		IsActive: true,
	}
	if err := config.DB.Create(&shop).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

func UpdateShop(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Nieprawidlowe ID")
		return
	}

	var shop models.Shop
	if err := config.DB.First(&shop, id).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono sklepu")
		return
	}

	var input struct {
		Name     *string `json:"name"`
		Color    *string `json:"color"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Color != nil {
		shop.Color = *input.Color
	}
	if input.IsActive != nil {
		shop.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&shop).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, shop)
}

// DeleteShop nie kasuje rekordow historycznych sklepu, zostaja ze
// swoim shop_id.
func DeleteShop(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Nieprawidlowe ID")
		return
	}

	var shop models.Shop
	if err := config.DB.First(&shop, id).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono sklepu")
		return
	}
	if err := config.DB.Delete(&shop).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
