package controllers

import (
	"net/http"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateProduct(c *gin.Context) {
	var input struct {
		ShopID       int     `json:"shop_id"`
		Name         string  `json:"name"`
		SKU          string  `json:"sku"`
		Category     string  `json:"category"`
		Price        float64 `json:"price"`
		ExtraPayment float64 `json:"extra_payment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	product := models.Product{
		ID:           uuid.NewString(),
		ShopID:       input.ShopID,
		Name:         input.Name,
		SKU:          input.SKU,
		Category:     input.Category,
		Price:        input.Price,
		ExtraPayment: input.ExtraPayment,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func GetProducts(c *gin.Context) {
	q := config.DB.Model(&models.Product{})
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}

	var products []models.Product
	if err := q.Order("name").Find(&products).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono produktu")
		return
	}

	var input struct {
		Name         *string  `json:"name"`
		SKU          *string  `json:"sku"`
		Category     *string  `json:"category"`
		Price        *float64 `json:"price"`
		ExtraPayment *float64 `json:"extra_payment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ExtraPayment != nil {
		product.ExtraPayment = *input.ExtraPayment
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono produktu")
		return
	}
	if err := config.DB.Delete(&product).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
