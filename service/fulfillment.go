package service

import (
	"time"

	"github.com/Zzzzzsaz/ecommifyy/models"
	"github.com/Zzzzzsaz/ecommifyy/utils"
)

// Po tylu pelnych dniach od wyslania przypomnienia zamowienie jest
// gotowe do sprawdzenia platnosci.
const reminderWindowDays = 7

// FulfillmentView to rekord realizacji z adnotacjami wyliczanymi przy
// odczycie. Adnotacje dostaja tylko rekordy w statusie reminder_sent.
type FulfillmentView struct {
	models.Fulfillment
	AutoCheckReady *bool `json:"auto_check_ready,omitempty"`
	DaysUntilCheck *int  `json:"days_until_check,omitempty"`
}

func AnnotateFulfillment(f models.Fulfillment, now time.Time) FulfillmentView {
	view := FulfillmentView{Fulfillment: f}
	if f.Status != models.FulfillmentReminderSent || f.ReminderSentAt == nil {
		return view
	}
	elapsed := int(now.Sub(*f.ReminderSentAt).Hours() / 24)
	ready := elapsed >= reminderWindowDays
	view.AutoCheckReady = &ready
	if !ready {
		left := reminderWindowDays - elapsed
		if left < 0 {
			left = 0
		}
		view.DaysUntilCheck = &left
	}
	return view
}

// ReminderSentReady mowi, czy okno 7 dni od przypomnienia juz minelo.
func ReminderSentReady(f models.Fulfillment, now time.Time) bool {
	if f.Status != models.FulfillmentReminderSent || f.ReminderSentAt == nil {
		return false
	}
	return now.Sub(*f.ReminderSentAt).Hours() >= reminderWindowDays*24
}

type ReminderSummary struct {
	Is15th             bool   `json:"is_15th"`
	PrevMonth          string `json:"prev_month"`
	WaitingForReminder int64  `json:"waiting_for_reminder"`
	ReadyForCheck      int64  `json:"ready_for_check"`
	ShowReminder       bool   `json:"show_reminder"`
}

// BuildReminderSummary sklada miesieczna podpowiedz: po 15. dniu
// miesiaca i przy zaleglych zamowieniach z poprzedniego miesiaca
// frontend pokazuje przypomnienie.
func BuildReminderSummary(waitingPrevMonth, readyForCheck int64, now time.Time) ReminderSummary {
	is15th := now.Day() >= 15
	return ReminderSummary{
		Is15th:             is15th,
		PrevMonth:          utils.PrevMonth(now),
		WaitingForReminder: waitingPrevMonth,
		ReadyForCheck:      readyForCheck,
		ShowReminder:       is15th && waitingPrevMonth > 0,
	}
}

// ExtraPaymentFor liczy doplate pobraniowa zamowienia: kazda pozycja
// dopasowana po nazwie do katalogu produktow, najpierw w tym samym
// sklepie, potem w dowolnym. Pozycje bez dopasowania daja zero.
func ExtraPaymentFor(items []models.OrderItem, shopID int, products []models.Product) float64 {
	total := 0.0
	for _, item := range items {
		var match *models.Product
		for i := range products {
			if products[i].Name != item.Name {
				continue
			}
			if products[i].ShopID == shopID {
				match = &products[i]
				break
			}
			if match == nil {
				match = &products[i]
			}
		}
		if match != nil {
			total += match.ExtraPayment * float64(item.Quantity)
		}
	}
	return utils.Round2(total)
}

// ApplyStatusChange ustawia status i znaczniki czasu przejscia.
// Cofniecie statusu nie czysci juz ustawionych znacznikow: trzymaja
// ostatni moment dojscia do danego etapu.
func ApplyStatusChange(f *models.Fulfillment, status string, now time.Time) {
	f.Status = status
	switch status {
	case models.FulfillmentReminderSent:
		t := now
		f.ReminderSentAt = &t
	case models.FulfillmentCheckPayment:
		t := now
		f.PaymentCheckedAt = &t
	case models.FulfillmentArchived:
		t := now
		f.ShippedAt = &t
	}
}
