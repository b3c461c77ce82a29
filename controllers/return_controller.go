package controllers

import (
	"net/http"
	"time"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateReturn zaklada zwrot i przestawia zamowienie na "returned".
// Kwota zwrotu domyslnie rowna sie kwocie zamowienia.
func CreateReturn(c *gin.Context) {
	var input struct {
		OrderID      string   `json:"order_id"`
		Reason       string   `json:"reason"`
		RefundAmount *float64 `json:"refund_amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.OrderID == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ?", input.OrderID).First(&order).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono zamowienia")
		return
	}

	refund := order.Total
	if input.RefundAmount != nil {
		refund = *input.RefundAmount
	}

	ret := models.Return{
		ID:           uuid.NewString(),
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		ShopID:       order.ShopID,
		CustomerName: order.CustomerName,
		Reason:       input.Reason,
		RefundAmount: refund,
		Date:         time.Now().Format(utils.DayLayout),
	}
	if err := config.DB.Create(&ret).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	if err := config.DB.Model(&order).Update("status", "returned").Error; err != nil {
		config.LogError("returns", "CreateReturn", "status zamowienia "+order.ID, err)
	}
	c.JSON(http.StatusOK, ret)
}

func GetReturns(c *gin.Context) {
	q := config.DB.Model(&models.Return{})
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}
	if prefix, ok := monthQuery(c); ok {
		q = q.Where("date LIKE ?", prefix+"%")
	}

	var returns []models.Return
	if err := q.Order("created_at DESC").Find(&returns).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, returns)
}

// DeleteReturn cofa zamowienie do statusu "new".
func DeleteReturn(c *gin.Context) {
	var ret models.Return
	if err := config.DB.Where("id = ?", c.Param("id")).First(&ret).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono zwrotu")
		return
	}
	if err := config.DB.Delete(&ret).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	if err := config.DB.Model(&models.Order{}).Where("id = ?", ret.OrderID).
		Update("status", "new").Error; err != nil {
		config.LogError("returns", "DeleteReturn", "status zamowienia "+ret.OrderID, err)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
