package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/service"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
)

func statsParams(c *gin.Context) (year, month int, ok bool) {
	now := time.Now()
	year = now.Year()
	month = int(now.Month())
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		year = y
	}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, false
		}
		month = m
	}
	return year, month, true
}

func monthRecords(prefix string, shopID int) ([]models.Income, []models.Cost, error) {
	incomeQ := config.DB.Where("date LIKE ?", prefix+"%")
	costQ := config.DB.Where("date LIKE ?", prefix+"%")
	if shopID > 0 {
		incomeQ = incomeQ.Where("shop_id = ?", shopID)
		costQ = costQ.Where("shop_id = ?", shopID)
	}

	var incomes []models.Income
	if err := incomeQ.Find(&incomes).Error; err != nil {
		return nil, nil, err
	}
	var costs []models.Cost
	if err := costQ.Find(&costs).Error; err != nil {
		return nil, nil, err
	}
	return incomes, costs, nil
}

func GetMonthlyStats(c *gin.Context) {
	shopID, err := strconv.Atoi(c.Query("shop_id"))
	if err != nil || shopID < 1 {
		utils.BadRequest(c, "Nieprawidlowy shop_id")
		return
	}
	year, month, ok := statsParams(c)
	if !ok {
		utils.BadRequest(c, "Nieprawidlowy rok lub miesiac")
		return
	}

	incomes, costs, err := monthRecords(utils.MonthPrefix(year, month), shopID)
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	var columns []models.CustomColumn
	if err := config.DB.Order("created_at").Find(&columns).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	stats := service.ComputeMonthlyStats(shopID, year, month, incomes, costs, columns, loadAppSettings())
	c.JSON(http.StatusOK, stats)
}

func GetCombinedMonthlyStats(c *gin.Context) {
	year, month, ok := statsParams(c)
	if !ok {
		utils.BadRequest(c, "Nieprawidlowy rok lub miesiac")
		return
	}

	incomes, costs, err := monthRecords(utils.MonthPrefix(year, month), 0)
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	var columns []models.CustomColumn
	if err := config.DB.Order("created_at").Find(&columns).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	var shops []models.Shop
	if err := config.DB.Order("id").Find(&shops).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	stats := service.ComputeCombinedMonthlyStats(year, month, shops, incomes, costs, columns, loadAppSettings(), time.Now())
	c.JSON(http.StatusOK, stats)
}

type weekTotals struct {
	Income float64 `json:"income"`
	Ads    float64 `json:"ads"`
	Netto  float64 `json:"netto"`
	Profit float64 `json:"profit"`
}

// GetWeeklyStats porownuje biezacy tydzien (od poniedzialku) z
// poprzednim pelnym tygodniem.
func GetWeeklyStats(c *gin.Context) {
	now := time.Now()
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // niedziela
	}
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(weekday - 1))

	current, err := sumWeek(monday, monday.AddDate(0, 0, 6))
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	previous, err := sumWeek(monday.AddDate(0, 0, -7), monday.AddDate(0, 0, -1))
	if err != nil {
		utils.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"current": current, "previous": previous})
}

func sumWeek(from, to time.Time) (weekTotals, error) {
	fromStr := from.Format(utils.DayLayout)
	toStr := to.Format(utils.DayLayout)

	var incomes []models.Income
	if err := config.DB.Where("date BETWEEN ? AND ?", fromStr, toStr).Find(&incomes).Error; err != nil {
		return weekTotals{}, err
	}
	var costs []models.Cost
	if err := config.DB.Where("date BETWEEN ? AND ?", fromStr, toStr).Find(&costs).Error; err != nil {
		return weekTotals{}, err
	}
	var columns []models.CustomColumn
	if err := config.DB.Find(&columns).Error; err != nil {
		return weekTotals{}, err
	}
	expense := make(map[string]bool, len(columns))
	for _, col := range columns {
		if col.ColumnType == "expense" {
			expense[col.Name] = true
		}
	}

	var t weekTotals
	for _, in := range incomes {
		t.Income += in.Amount
	}
	var otherCosts float64
	for _, cost := range costs {
		switch cost.Category {
		case models.CostCategoryTikTok, models.CostCategoryMeta, models.CostCategoryGoogle:
			t.Ads += cost.Amount
		case models.CostCategoryZwroty:
			otherCosts += cost.Amount
		default:
			if expense[cost.Category] {
				otherCosts += cost.Amount
			}
		}
	}
	t.Netto = utils.Round2(service.NetRevenue(t.Income))
	t.Profit = utils.Round2(service.NetRevenue(t.Income) - t.Ads - otherCosts)
	t.Income = utils.Round2(t.Income)
	t.Ads = utils.Round2(t.Ads)
	return t, nil
}
