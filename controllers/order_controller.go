package controllers

import (
	"net/http"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/service"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateOrder zapisuje zamowienie i od razu dorabia rekord realizacji
// oraz wpisy ewidencji sprzedazy. Te dwa zapisy sa best-effort: ich
// blad nie cofa samego zamowienia.
func CreateOrder(c *gin.Context) {
	var input struct {
		OrderNumber   string             `json:"order_number"`
		ShopID        int                `json:"shop_id"`
		CustomerName  string             `json:"customer_name"`
		CustomerEmail string             `json:"customer_email"`
		CustomerPhone string             `json:"customer_phone"`
		Address       string             `json:"address"`
		City          string             `json:"city"`
		PostalCode    string             `json:"postal_code"`
		Date          string             `json:"date"`
		Total         float64            `json:"total"`
		Source        string             `json:"source"`
		Items         []models.OrderItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Source == "" {
		input.Source = "manual"
	}

	order := models.Order{
		ID:            uuid.NewString(),
		OrderNumber:   input.OrderNumber,
		ShopID:        input.ShopID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Address:       input.Address,
		City:          input.City,
		PostalCode:    input.PostalCode,
		Date:          input.Date,
		Total:         input.Total,
		Status:        "new",
		Source:        input.Source,
		Items:         input.Items,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	if err := createFulfillmentForOrder(&order, 0, ""); err != nil {
		config.LogError("orders", "CreateOrder", "fulfillment dla "+order.ID, err)
	}
	if err := generateLedgerForOrder(order); err != nil {
		config.LogError("orders", "CreateOrder", "ewidencja dla "+order.ID, err)
	}

	c.JSON(http.StatusOK, order)
}

func GetOrders(c *gin.Context) {
	q := config.DB.Model(&models.Order{})
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if prefix, ok := monthQuery(c); ok {
		q = q.Where("date LIKE ?", prefix+"%")
	}

	var orders []models.Order
	if err := q.Order("date DESC").Find(&orders).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono zamowienia")
		return
	}

	status := c.Query("status")
	if status == "" {
		var input struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
			utils.BadRequest(c, "Brak statusu")
			return
		}
		status = input.Status
	}

	if err := config.DB.Model(&order).Update("status", status).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder kasuje zamowienie razem ze zwrotami, realizacja i
// wpisami ewidencji w jednej transakcji.
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono zamowienia")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Return{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Fulfillment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.SalesRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func generateLedgerForOrder(order models.Order) error {
	rows := service.LedgerRowsFromOrder(order, loadAppSettings().VatRate)
	return config.DB.Create(&rows).Error
}
