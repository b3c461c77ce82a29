package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/service"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// nextReceiptNumber nadaje kolejny numer w obrebie miesiaca paragonu.
// Sekwencja startuje od 1 w kazdym miesiacu i idzie od najwyzszego
// istniejacego numeru, zeby po usunieciu paragonu ze srodka miesiaca
// nie powstal duplikat.
func nextReceiptNumber(date string) (string, error) {
	day, err := time.Parse(utils.DayLayout, date)
	if err != nil {
		return "", err
	}
	prefix := utils.SourceMonth(date)
	var last models.Receipt
	err = config.DB.Where("date LIKE ?", prefix+"%").
		Order("receipt_number DESC").First(&last).Error
	seq := 0
	if err == nil {
		seq, _ = strconv.Atoi(strings.SplitN(last.ReceiptNumber, "/", 2)[0])
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	return utils.FormatReceiptNumber(int64(seq+1), int(day.Month()), day.Year()), nil
}

func receiptItemsFrom(items []models.OrderItem, vatRate float64) ([]models.ReceiptItem, float64, float64, float64) {
	out := make([]models.ReceiptItem, 0, len(items))
	var totalNetto, totalVat, totalBrutto float64
	for _, item := range items {
		brutto := utils.Round2(item.Price * float64(item.Quantity))
		netto, vat := service.VatBreakdown(brutto, vatRate)
		out = append(out, models.ReceiptItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Netto:    netto,
			Vat:      vat,
			Brutto:   brutto,
		})
		totalNetto += netto
		totalVat += vat
		totalBrutto += brutto
	}
	return out, utils.Round2(totalNetto), utils.Round2(totalVat), utils.Round2(totalBrutto)
}

func CreateReceipt(c *gin.Context) {
	var input struct {
		ShopID        int                `json:"shop_id"`
		Date          string             `json:"date"`
		CustomerName  string             `json:"customer_name"`
		PaymentMethod string             `json:"payment_method"`
		Items         []models.OrderItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if _, err := time.Parse(utils.DayLayout, input.Date); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	number, err := nextReceiptNumber(input.Date)
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	items, netto, vat, brutto := receiptItemsFrom(input.Items, loadAppSettings().VatRate)

	receipt := models.Receipt{
		ID:            uuid.NewString(),
		ReceiptNumber: number,
		ShopID:        input.ShopID,
		Date:          input.Date,
		CustomerName:  input.CustomerName,
		PaymentMethod: input.PaymentMethod,
		TotalNetto:    netto,
		TotalVat:      vat,
		TotalBrutto:   brutto,
		Items:         items,
	}
	if err := config.DB.Create(&receipt).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// CreateReceiptFromOrder generuje paragon z zamowienia. Zamowienie moze
// miec najwyzej jeden paragon.
func CreateReceiptFromOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Where("id = ?", c.Param("order_id")).First(&order).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono zamowienia")
		return
	}
	if order.ReceiptID != nil {
		utils.BadRequest(c, "Zamowienie ma juz paragon")
		return
	}

	number, err := nextReceiptNumber(order.Date)
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	items, netto, vat, brutto := receiptItemsFrom(order.Items, loadAppSettings().VatRate)
	if len(items) == 0 {
		netto, vat = service.VatBreakdown(order.Total, loadAppSettings().VatRate)
		brutto = utils.Round2(order.Total)
	}

	orderID := order.ID
	receipt := models.Receipt{
		ID:            uuid.NewString(),
		ReceiptNumber: number,
		OrderID:       &orderID,
		ShopID:        order.ShopID,
		Date:          order.Date,
		CustomerName:  order.CustomerName,
		TotalNetto:    netto,
		TotalVat:      vat,
		TotalBrutto:   brutto,
		Items:         items,
	}
	if err := config.DB.Create(&receipt).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	if err := config.DB.Model(&order).Update("receipt_id", receipt.ID).Error; err != nil {
		config.LogError("receipts", "CreateReceiptFromOrder", "receipt_id zamowienia "+order.ID, err)
	}
	c.JSON(http.StatusOK, receipt)
}

func GetReceipts(c *gin.Context) {
	q := config.DB.Model(&models.Receipt{})
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}
	if prefix, ok := monthQuery(c); ok {
		q = q.Where("date LIKE ?", prefix+"%")
	}

	var receipts []models.Receipt
	if err := q.Order("date").Find(&receipts).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipts)
}

// DeleteReceipt odpina paragon od zamowienia, zeby dalo sie go
// wygenerowac ponownie.
func DeleteReceipt(c *gin.Context) {
	var receipt models.Receipt
	if err := config.DB.Where("id = ?", c.Param("id")).First(&receipt).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono paragonu")
		return
	}
	if err := config.DB.Delete(&receipt).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	if receipt.OrderID != nil {
		config.DB.Model(&models.Order{}).Where("id = ?", *receipt.OrderID).
			Update("receipt_id", nil)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
