package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/service"
	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// createFulfillmentForOrder zaklada rekord realizacji z migawka
// zamowienia. Doplata 0 oznacza "policz z katalogu produktow".
// Zamowienie przechodzi na "processing".
func createFulfillmentForOrder(order *models.Order, extraPayment float64, notes string) error {
	if extraPayment == 0 {
		var products []models.Product
		if err := config.DB.Find(&products).Error; err != nil {
			return err
		}
		extraPayment = service.ExtraPaymentFor(order.Items, order.ShopID, products)
	}

	f := models.Fulfillment{
		ID:           uuid.NewString(),
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		ShopID:       order.ShopID,
		CustomerName: order.CustomerName,
		Items:        order.Items,
		Total:        order.Total,
		Status:       models.FulfillmentWaiting,
		SourceMonth:  utils.SourceMonth(order.Date),
		ExtraPayment: extraPayment,
		Notes:        notes,
	}
	if err := config.DB.Create(&f).Error; err != nil {
		return err
	}
	return config.DB.Model(order).Update("status", "processing").Error
}

func CreateFulfillment(c *gin.Context) {
	var input struct {
		OrderID      string  `json:"order_id"`
		ExtraPayment float64 `json:"extra_payment"`
		Notes        string  `json:"notes"`
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

	var existing models.Fulfillment
	if err := config.DB.Where("order_id = ?", input.OrderID).First(&existing).Error; err == nil {
		// duplikat: niepuste pola moga zaktualizowac istniejacy rekord
		if input.ExtraPayment != 0 || input.Notes != "" {
			if input.ExtraPayment != 0 {
				existing.ExtraPayment = input.ExtraPayment
			}
			if input.Notes != "" {
				existing.Notes = input.Notes
			}
			if err := config.DB.Save(&existing).Error; err != nil {
				utils.ServerError(c, err)
				return
			}
			c.JSON(http.StatusOK, existing)
			return
		}
		utils.BadRequest(c, "Zamowienie juz jest w realizacji")
		return
	}

	if err := createFulfillmentForOrder(&order, input.ExtraPayment, input.Notes); err != nil {
		// wyscig dwoch rownoleglych zapisow lapie unikalny indeks order_id
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.BadRequest(c, "Zamowienie juz jest w realizacji")
			return
		}
		utils.ServerError(c, err)
		return
	}
	var created models.Fulfillment
	if err := config.DB.Where("order_id = ?", order.ID).First(&created).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func GetFulfillment(c *gin.Context) {
	q := config.DB.Model(&models.Fulfillment{})
	if sourceMonth := c.Query("source_month"); sourceMonth != "" {
		q = q.Where("source_month = ?", sourceMonth)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}

	var records []models.Fulfillment
	if err := q.Order("created_at DESC").Find(&records).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	now := time.Now()
	views := make([]service.FulfillmentView, 0, len(records))
	for _, f := range records {
		views = append(views, service.AnnotateFulfillment(f, now))
	}
	c.JSON(http.StatusOK, views)
}

// UpdateFulfillment to zwykly zapis pol. Statusy wstecz tez przechodza,
// a archived dodatkowo oznacza zamowienie jako dostarczone.
func UpdateFulfillment(c *gin.Context) {
	var f models.Fulfillment
	if err := config.DB.Where("id = ?", c.Param("id")).First(&f).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono realizacji")
		return
	}

	var input struct {
		Status           *string  `json:"status"`
		ExtraPayment     *float64 `json:"extra_payment"`
		ExtraPaymentPaid *bool    `json:"extra_payment_paid"`
		Notes            *string  `json:"notes"`
		TrackingNumber   *string  `json:"tracking_number"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}

	if input.Status != nil {
		service.ApplyStatusChange(&f, *input.Status, time.Now())
	}
	if input.ExtraPayment != nil {
		f.ExtraPayment = *input.ExtraPayment
	}
	if input.ExtraPaymentPaid != nil {
		f.ExtraPaymentPaid = *input.ExtraPaymentPaid
	}
	if input.Notes != nil {
		f.Notes = *input.Notes
	}
	if input.TrackingNumber != nil {
		f.TrackingNumber = *input.TrackingNumber
	}

	if err := config.DB.Save(&f).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	if input.Status != nil && *input.Status == models.FulfillmentArchived {
		if err := config.DB.Model(&models.Order{}).Where("id = ?", f.OrderID).
			Update("status", "delivered").Error; err != nil {
			config.LogError("fulfillment", "UpdateFulfillment", "status zamowienia "+f.OrderID, err)
		}
	}

	c.JSON(http.StatusOK, f)
}

// DeleteFulfillment cofa zamowienie do statusu "new".
func DeleteFulfillment(c *gin.Context) {
	var f models.Fulfillment
	if err := config.DB.Where("id = ?", c.Param("id")).First(&f).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono realizacji")
		return
	}
	if err := config.DB.Delete(&f).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	if err := config.DB.Model(&models.Order{}).Where("id = ?", f.OrderID).
		Update("status", "new").Error; err != nil {
		config.LogError("fulfillment", "DeleteFulfillment", "status zamowienia "+f.OrderID, err)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// BulkFulfillmentStatus przesuwa wszystkie rekordy miesiaca z jednego
// statusu na drugi, z tymi samymi znacznikami czasu co pojedyncze
// przejscie.
func BulkFulfillmentStatus(c *gin.Context) {
	sourceMonth := c.Query("source_month")
	fromStatus := c.Query("from_status")
	toStatus := c.Query("to_status")
	if sourceMonth == "" || fromStatus == "" || toStatus == "" {
		utils.BadRequest(c, "Wymagane source_month, from_status i to_status")
		return
	}

	var records []models.Fulfillment
	if err := config.DB.Where("source_month = ? AND status = ?", sourceMonth, fromStatus).
		Find(&records).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	now := time.Now()
	for i := range records {
		service.ApplyStatusChange(&records[i], toStatus, now)
		if err := config.DB.Save(&records[i]).Error; err != nil {
			utils.ServerError(c, err)
			return
		}
		if toStatus == models.FulfillmentArchived {
			config.DB.Model(&models.Order{}).Where("id = ?", records[i].OrderID).
				Update("status", "delivered")
		}
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(records)})
}

func GetReminderCheck(c *gin.Context) {
	now := time.Now()

	var waiting int64
	if err := config.DB.Model(&models.Fulfillment{}).
		Where("source_month = ? AND status = ?", utils.PrevMonth(now), models.FulfillmentWaiting).
		Count(&waiting).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	var reminded []models.Fulfillment
	if err := config.DB.Where("status = ?", models.FulfillmentReminderSent).
		Find(&reminded).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	var ready int64
	for _, f := range reminded {
		if service.ReminderSentReady(f, now) {
			ready++
		}
	}

	c.JSON(http.StatusOK, service.BuildReminderSummary(waiting, ready, now))
}

func CreateFulfillmentNote(c *gin.Context) {
	var input struct {
		Content     string `json:"content"`
		SourceMonth string `json:"source_month"`
		CreatedBy   string `json:"created_by"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		utils.BadRequest(c, "Nieprawidlowe dane")
		return
	}
	if input.CreatedBy == "" {
		if name, ok := c.Get("user_name"); ok {
			input.CreatedBy, _ = name.(string)
		}
	}

	note := models.FulfillmentNote{
		ID:          uuid.NewString(),
		Content:     input.Content,
		SourceMonth: input.SourceMonth,
		CreatedBy:   input.CreatedBy,
	}
	if err := config.DB.Create(&note).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func GetFulfillmentNotes(c *gin.Context) {
	q := config.DB.Model(&models.FulfillmentNote{})
	if sourceMonth := c.Query("source_month"); sourceMonth != "" {
		q = q.Where("source_month = ?", sourceMonth)
	}

	var notes []models.FulfillmentNote
	if err := q.Order("created_at DESC").Find(&notes).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func DeleteFulfillmentNote(c *gin.Context) {
	var note models.FulfillmentNote
	if err := config.DB.Where("id = ?", c.Param("id")).First(&note).Error; err != nil {
		utils.NotFound(c, "Nie znaleziono notatki")
		return
	}
	if err := config.DB.Delete(&note).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
