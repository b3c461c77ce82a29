package controllers

import (
	"errors"
	"net/http"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func CreateCost(c *gin.Context) {
	var input struct {
		ShopID      int     `json:"shop_id"`
		Date        string  `json:"date"`
		Category    string  `json:"category"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Category == "" {
		input.Category = models.CostCategoryOther
	}

	cost := models.Cost{
		ID:          uuid.NewString(),
		ShopID:      input.ShopID,
		Date:        input.Date,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
	}
	if err := config.DB.Create(&cost).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cost)
}

func GetCosts(c *gin.Context) {
	q := config.DB.Model(&models.Cost{})
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	} else if prefix, ok := monthQuery(c); ok {
		q = q.Where("date LIKE ?", prefix+"%")
	}

	var costs []models.Cost
	if err := q.Order("date").Find(&costs).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, costs)
}

func UpdateCost(c *gin.Context) {
	var cost models.Cost
	if err := config.DB.Where("id = ?", c.Param("id")).First(&cost).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono kosztu")
		return
	}

	var input struct {
		Date        *string  `json:"date"`
		Category    *string  `json:"category"`
		Amount      *float64 `json:"amount"`
		Description *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Date != nil {
		cost.Date = *input.Date
	}
	if input.Category != nil {
		cost.Category = *input.Category
	}
	if input.Amount != nil {
		cost.Amount = *input.Amount
	}
	if input.Description != nil {
		cost.Description = *input.Description
	}

	if err := config.DB.Save(&cost).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cost)
}

func DeleteCost(c *gin.Context) {
	var cost models.Cost
	if err := config.DB.Where("id = ?", c.Param("id")).First(&cost).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono kosztu")
		return
	}
	if err := config.DB.Delete(&cost).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func CreateCustomColumn(c *gin.Context) {
	var input struct {
		Name       string `json:"name"`
		ColumnType string `json:"column_type"`
		Color      string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.ColumnType == "" {
		input.ColumnType = "expense"
	}

	// Sprawdzamy nazwe przed insertem, ale unikalny indeks i tak lapie
	// wyscig dwoch rownoleglych zapisow.
	var exist models.CustomColumn
	if err := config.DB.Where("name = ?", input.Name).First(&exist).Error; err == nil {
		utils.BadRequest(c, "Kolumna o tej nazwie juz istnieje")
		return
	}

	column := models.CustomColumn{
		ID:         uuid.NewString(),
		Name:       input.Name,
		ColumnType: input.ColumnType,
		Color:      input.Color,
	}
	if err := config.DB.Create(&column).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.BadRequest(c, "Kolumna o tej nazwie juz istnieje")
			return
		}
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, column)
}

func GetCustomColumns(c *gin.Context) {
	var columns []models.CustomColumn
	if err := config.DB.Order("created_at").Find(&columns).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

func UpdateCustomColumn(c *gin.Context) {
	var column models.CustomColumn
	if err := config.DB.Where("id = ?", c.Param("id")).First(&column).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono kolumny")
		return
	}

	var input struct {
		Name       *string `json:"name"`
		ColumnType *string `json:"column_type"`
		Color      *string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Name != nil && *input.Name != column.Name {
		var exist models.CustomColumn
		if err := config.DB.Where("name = ?", *input.Name).First(&exist).Error; err == nil {
			utils.BadRequest(c, "Kolumna o tej nazwie juz istnieje")
			return
		}
		column.Name = *input.Name
	}
	if input.ColumnType != nil {
		column.ColumnType = *input.ColumnType
	}
	if input.Color != nil {
		column.Color = *input.Color
	}

	if err := config.DB.Save(&column).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, column)
}

// DeleteCustomColumn usuwa kolumne razem ze wszystkimi kosztami,
// ktorych kategoria rowna sie jej nazwie (dokladne dopasowanie).
func DeleteCustomColumn(c *gin.Context) {
	var column models.CustomColumn
	if err := config.DB.Where("id = ?", c.Param("id")).First(&column).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono kolumny")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category = ?", column.Name).Delete(&models.Cost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&column).Error
	})
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
