package controllers

import (
	"fmt"
	"net/http"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/service"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateSalesRecord(c *gin.Context) {
	var input struct {
		ShopID        int      `json:"shop_id"`
		Date          string   `json:"date"`
		ProductName   string   `json:"product_name"`
		Quantity      int      `json:"quantity"`
		Brutto        float64  `json:"brutto"`
		VatRate       *float64 `json:"vat_rate"`
		PaymentMethod string   `json:"payment_method"`
		OrderNumber   string   `json:"order_number"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.Quantity < 1 {
		input.Quantity = 1
	}
	vatRate := loadAppSettings().VatRate
	if input.VatRate != nil {
		vatRate = *input.VatRate
	}
	netto, vat := service.VatBreakdown(input.Brutto, vatRate)

	record := models.SalesRecord{
		ID:            uuid.NewString(),
		ShopID:        input.ShopID,
		Date:          input.Date,
		ProductName:   input.ProductName,
		Quantity:      input.Quantity,
		Netto:         netto,
		VatRate:       vatRate,
		VatAmount:     vat,
		Brutto:        utils.Round2(input.Brutto),
		PaymentMethod: input.PaymentMethod,
		OrderNumber:   input.OrderNumber,
		Source:        "manual",
	}
	if err := config.DB.Create(&record).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func GetSalesRecords(c *gin.Context) {
	q := config.DB.Model(&models.SalesRecord{})
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	} else if prefix, ok := monthQuery(c); ok {
		q = q.Where("date LIKE ?", prefix+"%")
	}

	var records []models.SalesRecord
	if err := q.Order("date").Find(&records).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func DeleteSalesRecord(c *gin.Context) {
	var record models.SalesRecord
	if err := config.DB.Where("id = ?", c.Param("id")).First(&record).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono wpisu")
		return
	}
	if err := config.DB.Delete(&record).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GenerateSalesRecords dorabia wpisy ewidencji dla zamowien miesiaca,
// ktore jeszcze zadnych nie maja.
func GenerateSalesRecords(c *gin.Context) {
	prefix, ok := monthQuery(c)
	if !ok {
		utils.BadRequest(c, "Wymagane year i month")
		return
	}

	q := config.DB.Where("date LIKE ?", prefix+"%")
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}
	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	vatRate := loadAppSettings().VatRate
	generated := 0
	for _, order := range orders {
		var cnt int64
		config.DB.Model(&models.SalesRecord{}).Where("order_id = ?", order.ID).Count(&cnt)
		if cnt > 0 {
			continue
		}
		rows := service.LedgerRowsFromOrder(order, vatRate)
		if err := config.DB.Create(&rows).Error; err != nil {
			utils.ServerError(c, err)
			return
		}
		generated += len(rows)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"generated": generated,
		"message":   fmt.Sprintf("Wygenerowano %d wpisow ewidencji", generated),
	})
}

func ledgerRecords(c *gin.Context, dateEq, datePrefix string) ([]models.SalesRecord, error) {
	q := config.DB.Model(&models.SalesRecord{})
	if dateEq != "" {
		q = q.Where("date = ?", dateEq)
	} else {
		q = q.Where("date LIKE ?", datePrefix+"%")
	}
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}
	var records []models.SalesRecord
	err := q.Order("date").Find(&records).Error
	return records, err
}

func DailyLedgerPDF(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.BadRequest(c, "Wymagana data")
		return
	}
	records, err := ledgerRecords(c, date, "")
	if err != nil {
		utils.ServerError(c, err)
		return
	}

	data, err := service.RenderLedgerPDF("Ewidencja sprzedazy "+date, loadCompanySettings(), records)
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=ewidencja_"+date+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

func MonthlyLedgerPDF(c *gin.Context) {
	prefix, ok := monthQuery(c)
	if !ok {
		utils.BadRequest(c, "Wymagane year i month")
		return
	}
	records, err := ledgerRecords(c, "", prefix)
	if err != nil {
		utils.ServerError(c, err)
		return
	}

	data, err := service.RenderLedgerPDF("Ewidencja sprzedazy "+prefix, loadCompanySettings(), records)
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=ewidencja_"+prefix+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

func MonthlyLedgerExcel(c *gin.Context) {
	prefix, ok := monthQuery(c)
	if !ok {
		utils.BadRequest(c, "Wymagane year i month")
		return
	}
	records, err := ledgerRecords(c, "", prefix)
	if err != nil {
		utils.ServerError(c, err)
		return
	}

	f, err := service.RenderLedgerExcel(records)
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=ewidencja_"+prefix+".xlsx")
	if err := f.Write(c.Writer); err != nil {
		config.LogError("sales_records", "MonthlyLedgerExcel", "zapis xlsx", err)
	}
}
