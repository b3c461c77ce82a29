package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zzzzzsaz/ecommifyy/config"
	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/routes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupAPI stawia router na swiezej bazie sqlite w pamieci.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.Income{},
		&models.Cost{},
		&models.CustomColumn{},
		&models.AppSettings{},
		&models.CompanySettings{},
		&models.Product{},
		&models.Order{},
		&models.Fulfillment{},
		&models.FulfillmentNote{},
		&models.Return{},
		&models.SalesRecord{},
		&models.Receipt{},
		&models.Task{},
		&models.CalendarNote{},
		&models.Reminder{},
		&models.ShopifyConfig{},
		&models.TikTokConfig{},
	))

	config.DB = db
	config.SeedDefaults()

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createOrder(t *testing.T, r *gin.Engine, orderNumber string) models.Order {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"order_number":  orderNumber,
		"shop_id":       1,
		"customer_name": "Jan Kowalski",
		"date":          "2026-02-25",
		"total":         400.0,
		"items": []gin.H{
			{"name": "Krem", "quantity": 2, "price": 100},
			{"name": "Serum", "quantity": 2, "price": 100},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var order models.Order
	decode(t, w, &order)
	return order
}

func TestLogin(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"pin": "2409"})
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User  models.User   `json:"user"`
		Shops []models.Shop `json:"shops"`
		Token string        `json:"token"`
	}
	decode(t, w, &body)
	assert.Equal(t, "admin", body.User.Username)
	assert.Len(t, body.Shops, 4)
	assert.NotEmpty(t, body.Token)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"pin": "0000"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Nieprawidlowy PIN")
}

func TestOrderCreateSpinsUpFulfillmentAndLedger(t *testing.T) {
	r := setupAPI(t)

	// produkt z doplata dopasowany po nazwie
	w := doJSON(t, r, http.MethodPost, "/api/products", gin.H{
		"shop_id": 1, "name": "Krem", "extra_payment": 45.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	order := createOrder(t, r, "1001")
	assert.Equal(t, "new", order.Status)

	var stored models.Order
	require.NoError(t, config.DB.Where("id = ?", order.ID).First(&stored).Error)
	assert.Equal(t, "processing", stored.Status)

	var f models.Fulfillment
	require.NoError(t, config.DB.Where("order_id = ?", order.ID).First(&f).Error)
	assert.Equal(t, models.FulfillmentWaiting, f.Status)
	assert.Equal(t, "2026-02", f.SourceMonth)
	assert.Equal(t, 90.0, f.ExtraPayment)

	var ledger []models.SalesRecord
	require.NoError(t, config.DB.Where("order_id = ?", order.ID).Find(&ledger).Error)
	assert.Len(t, ledger, 2)
	assert.Equal(t, "auto", ledger[0].Source)
}

func TestDuplicateFulfillmentRejected(t *testing.T) {
	r := setupAPI(t)
	order := createOrder(t, r, "1002")

	w := doJSON(t, r, http.MethodPost, "/api/fulfillment", gin.H{"order_id": order.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Zamowienie juz jest w realizacji")

	var cnt int64
	config.DB.Model(&models.Fulfillment{}).Where("order_id = ?", order.ID).Count(&cnt)
	assert.Equal(t, int64(1), cnt)
}

func TestDuplicateFulfillmentRejectedForSeededRecord(t *testing.T) {
	r := setupAPI(t)

	// rekord realizacji zalozony poza endpointem tez blokuje duplikat
	order := models.Order{
		ID: uuid.NewString(), OrderNumber: "1010", ShopID: 1,
		Date: "2026-02-10", Total: 100, Status: "processing",
	}
	require.NoError(t, config.DB.Create(&order).Error)
	require.NoError(t, config.DB.Create(&models.Fulfillment{
		ID: uuid.NewString(), OrderID: order.ID, OrderNumber: order.OrderNumber,
		ShopID: 1, Status: models.FulfillmentWaiting, SourceMonth: "2026-02",
	}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/fulfillment", gin.H{"order_id": order.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Zamowienie juz jest w realizacji")
}

func TestDuplicateFulfillmentUpsertsNotes(t *testing.T) {
	r := setupAPI(t)
	order := createOrder(t, r, "1003")

	w := doJSON(t, r, http.MethodPost, "/api/fulfillment", gin.H{
		"order_id": order.ID, "notes": "dzwonic po 16", "extra_payment": 12.5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var f models.Fulfillment
	require.NoError(t, config.DB.Where("order_id = ?", order.ID).First(&f).Error)
	assert.Equal(t, "dzwonic po 16", f.Notes)
	assert.Equal(t, 12.5, f.ExtraPayment)
}

func TestFulfillmentStatusPropagation(t *testing.T) {
	r := setupAPI(t)
	order := createOrder(t, r, "1004")

	var f models.Fulfillment
	require.NoError(t, config.DB.Where("order_id = ?", order.ID).First(&f).Error)

	w := doJSON(t, r, http.MethodPut, "/api/fulfillment/"+f.ID, gin.H{"status": "reminder_sent"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.Where("id = ?", f.ID).First(&f).Error)
	require.NotNil(t, f.ReminderSentAt)

	w = doJSON(t, r, http.MethodPut, "/api/fulfillment/"+f.ID, gin.H{"status": "archived"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	require.NoError(t, config.DB.Where("id = ?", order.ID).First(&stored).Error)
	assert.Equal(t, "delivered", stored.Status)

	w = doJSON(t, r, http.MethodDelete, "/api/fulfillment/"+f.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.Where("id = ?", order.ID).First(&stored).Error)
	assert.Equal(t, "new", stored.Status)
}

func TestBulkFulfillmentStatus(t *testing.T) {
	r := setupAPI(t)
	createOrder(t, r, "1005")
	createOrder(t, r, "1006")

	w := doJSON(t, r, http.MethodPost,
		"/api/fulfillment/bulk-status?source_month=2026-02&from_status=waiting&to_status=reminder_sent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Updated int `json:"updated"`
	}
	decode(t, w, &body)
	assert.Equal(t, 2, body.Updated)

	var reminded []models.Fulfillment
	require.NoError(t, config.DB.Where("status = ?", models.FulfillmentReminderSent).Find(&reminded).Error)
	require.Len(t, reminded, 2)
	for _, f := range reminded {
		assert.NotNil(t, f.ReminderSentAt)
	}
}

func TestReturnLifecycle(t *testing.T) {
	r := setupAPI(t)
	order := createOrder(t, r, "1007")

	w := doJSON(t, r, http.MethodPost, "/api/returns", gin.H{"order_id": order.ID, "reason": "uszkodzony"})
	require.Equal(t, http.StatusOK, w.Code)
	var ret models.Return
	decode(t, w, &ret)
	assert.Equal(t, 400.0, ret.RefundAmount)

	var stored models.Order
	require.NoError(t, config.DB.Where("id = ?", order.ID).First(&stored).Error)
	assert.Equal(t, "returned", stored.Status)

	w = doJSON(t, r, http.MethodDelete, "/api/returns/"+ret.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.Where("id = ?", order.ID).First(&stored).Error)
	assert.Equal(t, "new", stored.Status)
}

func TestReturnMissingOrder(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/returns", gin.H{"order_id": "nie-ma"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderDeleteCascades(t *testing.T) {
	r := setupAPI(t)
	order := createOrder(t, r, "1008")

	w := doJSON(t, r, http.MethodPost, "/api/returns", gin.H{"order_id": order.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/orders/"+order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cnt int64
	config.DB.Model(&models.Return{}).Where("order_id = ?", order.ID).Count(&cnt)
	assert.Zero(t, cnt)
	config.DB.Model(&models.Fulfillment{}).Where("order_id = ?", order.ID).Count(&cnt)
	assert.Zero(t, cnt)
	config.DB.Model(&models.SalesRecord{}).Where("order_id = ?", order.ID).Count(&cnt)
	assert.Zero(t, cnt)
	config.DB.Model(&models.Order{}).Where("id = ?", order.ID).Count(&cnt)
	assert.Zero(t, cnt)
}

func TestCustomColumnDeleteCascadesExactName(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/custom-columns", gin.H{"name": "kurier"})
	require.Equal(t, http.StatusOK, w.Code)
	var column models.CustomColumn
	decode(t, w, &column)

	w = doJSON(t, r, http.MethodPost, "/api/custom-columns", gin.H{"name": "kurierzy"})
	require.Equal(t, http.StatusOK, w.Code)

	doJSON(t, r, http.MethodPost, "/api/costs", gin.H{
		"shop_id": 1, "date": "2026-02-10", "category": "kurier", "amount": 20.0,
	})
	doJSON(t, r, http.MethodPost, "/api/costs", gin.H{
		"shop_id": 1, "date": "2026-02-10", "category": "kurierzy", "amount": 30.0,
	})

	w = doJSON(t, r, http.MethodDelete, "/api/custom-columns/"+column.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var costs []models.Cost
	require.NoError(t, config.DB.Find(&costs).Error)
	require.Len(t, costs, 1)
	assert.Equal(t, "kurierzy", costs[0].Category)
}

func TestCustomColumnDuplicateName(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/custom-columns", gin.H{"name": "kurier"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/custom-columns", gin.H{"name": "kurier"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceiptSequencePerMonth(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/receipts", gin.H{
		"shop_id": 1, "date": "2026-02-05",
		"items": []gin.H{{"name": "Krem", "quantity": 1, "price": 123}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var first models.Receipt
	decode(t, w, &first)
	assert.Equal(t, "0001/02/2026", first.ReceiptNumber)
	assert.Equal(t, 100.0, first.TotalNetto)
	assert.Equal(t, 23.0, first.TotalVat)

	w = doJSON(t, r, http.MethodPost, "/api/receipts", gin.H{
		"shop_id": 1, "date": "2026-02-09",
		"items": []gin.H{{"name": "Serum", "quantity": 1, "price": 50}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var second models.Receipt
	decode(t, w, &second)
	assert.Equal(t, "0002/02/2026", second.ReceiptNumber)

	// nowy miesiac startuje od jedynki
	w = doJSON(t, r, http.MethodPost, "/api/receipts", gin.H{
		"shop_id": 1, "date": "2026-03-01",
		"items": []gin.H{{"name": "Krem", "quantity": 1, "price": 10}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var march models.Receipt
	decode(t, w, &march)
	assert.Equal(t, "0001/03/2026", march.ReceiptNumber)
}

func TestReceiptRejectsMalformedDate(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/receipts", gin.H{
		"shop_id": 1, "date": "26-02",
		"items": []gin.H{{"name": "Krem", "quantity": 1, "price": 10}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Nieprawidlowe dane")
}

func TestReceiptSequenceSurvivesDeletion(t *testing.T) {
	r := setupAPI(t)

	issue := func(day string) models.Receipt {
		w := doJSON(t, r, http.MethodPost, "/api/receipts", gin.H{
			"shop_id": 1, "date": day,
			"items": []gin.H{{"name": "Krem", "quantity": 1, "price": 10}},
		})
		require.Equal(t, http.StatusOK, w.Code)
		var receipt models.Receipt
		decode(t, w, &receipt)
		return receipt
	}

	first := issue("2026-04-02")
	second := issue("2026-04-05")
	require.Equal(t, "0001/04/2026", first.ReceiptNumber)
	require.Equal(t, "0002/04/2026", second.ReceiptNumber)

	// usuniecie paragonu ze srodka miesiaca nie cofa sekwencji
	w := doJSON(t, r, http.MethodDelete, "/api/receipts/"+first.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	third := issue("2026-04-07")
	assert.Equal(t, "0003/04/2026", third.ReceiptNumber)
}

func TestReceiptFromOrderOnlyOnce(t *testing.T) {
	r := setupAPI(t)
	order := createOrder(t, r, "1009")

	w := doJSON(t, r, http.MethodPost, "/api/receipts/from-order/"+order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var receipt models.Receipt
	decode(t, w, &receipt)

	var stored models.Order
	require.NoError(t, config.DB.Where("id = ?", order.ID).First(&stored).Error)
	require.NotNil(t, stored.ReceiptID)
	assert.Equal(t, receipt.ID, *stored.ReceiptID)

	w = doJSON(t, r, http.MethodPost, "/api/receipts/from-order/"+order.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Zamowienie ma juz paragon")

	// skasowanie paragonu odpina go od zamowienia
	w = doJSON(t, r, http.MethodDelete, "/api/receipts/"+receipt.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.Where("id = ?", order.ID).First(&stored).Error)
	assert.Nil(t, stored.ReceiptID)
}

func TestGenerateSalesRecordsSkipsCovered(t *testing.T) {
	r := setupAPI(t)
	createOrder(t, r, "1010") // ewidencja powstaje przy tworzeniu

	w := doJSON(t, r, http.MethodPost, "/api/sales-records/generate-from-orders?year=2026&month=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status    string `json:"status"`
		Generated int    `json:"generated"`
	}
	decode(t, w, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Zero(t, body.Generated)
}

func TestMonthlyStatsEndpoint(t *testing.T) {
	r := setupAPI(t)

	doJSON(t, r, http.MethodPost, "/api/incomes", gin.H{
		"shop_id": 1, "date": "2026-02-25", "amount": 1000.0,
	})
	doJSON(t, r, http.MethodPost, "/api/costs", gin.H{
		"shop_id": 1, "date": "2026-02-25", "category": "tiktok", "amount": 200.0,
	})

	w := doJSON(t, r, http.MethodGet, "/api/monthly-stats?shop_id=1&year=2026&month=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		TotalIncome float64 `json:"total_income"`
		TotalProfit float64 `json:"total_profit"`
		Days        []struct {
			Income float64 `json:"income"`
			Netto  float64 `json:"netto"`
		} `json:"days"`
	}
	decode(t, w, &body)
	require.Len(t, body.Days, 28)
	assert.Equal(t, 1000.0, body.TotalIncome)
	assert.Equal(t, 570.0, body.TotalProfit)
	assert.Equal(t, 770.0, body.Days[24].Netto)
}

func TestCostNotFound(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPut, "/api/costs/nie-ma", gin.H{"amount": 5.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/costs/nie-ma", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShopsDenseIDs(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/shops", gin.H{"name": "ecom5", "color": "#000000"})
	require.Equal(t, http.StatusOK, w.Code)
	var shop models.Shop
	decode(t, w, &shop)
	assert.Equal(t, 5, shop.ID)
	assert.True(t, shop.IsActive)
}
