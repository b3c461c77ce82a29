package service

import (
	"testing"
	"time"

	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateFulfillmentReadyAfterSevenDays(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	sent := now.AddDate(0, 0, -8)
	f := models.Fulfillment{Status: models.FulfillmentReminderSent, ReminderSentAt: &sent}

	view := AnnotateFulfillment(f, now)

	require.NotNil(t, view.AutoCheckReady)
	assert.True(t, *view.AutoCheckReady)
	assert.Nil(t, view.DaysUntilCheck)
}

func TestAnnotateFulfillmentCountsDaysLeft(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	sent := now.AddDate(0, 0, -6)
	f := models.Fulfillment{Status: models.FulfillmentReminderSent, ReminderSentAt: &sent}

	view := AnnotateFulfillment(f, now)

	require.NotNil(t, view.AutoCheckReady)
	assert.False(t, *view.AutoCheckReady)
	require.NotNil(t, view.DaysUntilCheck)
	assert.Equal(t, 1, *view.DaysUntilCheck)
}

func TestAnnotateFulfillmentOnlyForReminderSent(t *testing.T) {
	now := time.Now()
	sent := now.AddDate(0, 0, -10)
	f := models.Fulfillment{Status: models.FulfillmentWaiting, ReminderSentAt: &sent}

	view := AnnotateFulfillment(f, now)
	assert.Nil(t, view.AutoCheckReady)
	assert.Nil(t, view.DaysUntilCheck)
}

func TestBuildReminderSummary(t *testing.T) {
	now := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)

	summary := BuildReminderSummary(3, 1, now)

	assert.True(t, summary.Is15th)
	assert.Equal(t, "2026-01", summary.PrevMonth)
	assert.Equal(t, int64(3), summary.WaitingForReminder)
	assert.Equal(t, int64(1), summary.ReadyForCheck)
	assert.True(t, summary.ShowReminder)
}

func TestBuildReminderSummaryBeforeFifteenth(t *testing.T) {
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	summary := BuildReminderSummary(5, 0, now)
	assert.False(t, summary.Is15th)
	assert.False(t, summary.ShowReminder)
}

func TestBuildReminderSummaryNoWaiting(t *testing.T) {
	now := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)

	summary := BuildReminderSummary(0, 2, now)
	assert.True(t, summary.Is15th)
	assert.False(t, summary.ShowReminder)
}

func TestExtraPaymentMatchesProductsByName(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Krem do twarzy", Quantity: 2, Price: 100},
		{Name: "Serum", Quantity: 2, Price: 100},
	}
	products := []models.Product{
		{ShopID: 1, Name: "Krem do twarzy", ExtraPayment: 45},
	}

	got := ExtraPaymentFor(items, 1, products)
	assert.Equal(t, 90.0, got)
}

func TestExtraPaymentPrefersSameShop(t *testing.T) {
	items := []models.OrderItem{{Name: "Serum", Quantity: 1}}
	products := []models.Product{
		{ShopID: 2, Name: "Serum", ExtraPayment: 10},
		{ShopID: 1, Name: "Serum", ExtraPayment: 25},
	}

	assert.Equal(t, 25.0, ExtraPaymentFor(items, 1, products))
	// bez sklepu 3 w katalogu bierzemy pierwsze dopasowanie z innego
	assert.Equal(t, 10.0, ExtraPaymentFor(items, 3, products))
}

func TestApplyStatusChangeSetsTimestamps(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	f := &models.Fulfillment{Status: models.FulfillmentWaiting}

	ApplyStatusChange(f, models.FulfillmentReminderSent, now)
	require.NotNil(t, f.ReminderSentAt)
	assert.Equal(t, now, *f.ReminderSentAt)

	later := now.AddDate(0, 0, 3)
	ApplyStatusChange(f, models.FulfillmentCheckPayment, later)
	require.NotNil(t, f.PaymentCheckedAt)
	assert.Equal(t, later, *f.PaymentCheckedAt)

	ApplyStatusChange(f, models.FulfillmentArchived, later)
	require.NotNil(t, f.ShippedAt)
}

func TestApplyStatusChangeUndoKeepsTimestamps(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	f := &models.Fulfillment{Status: models.FulfillmentWaiting}

	ApplyStatusChange(f, models.FulfillmentCheckPayment, now)
	ApplyStatusChange(f, models.FulfillmentReminderSent, now.AddDate(0, 0, 1))

	// cofniecie statusu nie kasuje wczesniejszego znacznika
	assert.Equal(t, models.FulfillmentReminderSent, f.Status)
	require.NotNil(t, f.PaymentCheckedAt)
	assert.Equal(t, now, *f.PaymentCheckedAt)
}
