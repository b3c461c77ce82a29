package controllers

import (
	"net/http"
	"strconv"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateIncome(c *gin.Context) {
	var input struct {
		ShopID      int     `json:"shop_id"`
		Date        string  `json:"date"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	income := models.Income{
		ID:          uuid.NewString(),
		ShopID:      input.ShopID,
		Date:        input.Date,
		Amount:      input.Amount,
		Description: input.Description,
	}
	if err := config.DB.Create(&income).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, income)
}

// GetIncomes filtruje po shop_id, konkretnym dniu albo miesiacu.
// Brak filtrow zwraca cala liste.
func GetIncomes(c *gin.Context) {
	q := config.DB.Model(&models.Income{})
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	} else if prefix, ok := monthQuery(c); ok {
		q = q.Where("date LIKE ?", prefix+"%")
	}

	var incomes []models.Income
	if err := q.Order("date").Find(&incomes).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, incomes)
}

func DeleteIncome(c *gin.Context) {
	var income models.Income
	if err := config.DB.Where("id = ?", c.Param("id")).First(&income).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono przychodu")
		return
	}
	if err := config.DB.Delete(&income).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// monthQuery sklada prefiks "YYYY-MM" z parametrow year i month.
func monthQuery(c *gin.Context) (string, bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		return "", false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	return utils.MonthPrefix(year, month), true
}
