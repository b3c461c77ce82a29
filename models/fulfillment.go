package models

import "time"

// Statusy realizacji zamowienia pobraniowego.
const (
	FulfillmentWaiting      = "waiting"
	FulfillmentReminderSent = "reminder_sent"
	FulfillmentCheckPayment = "check_payment"
	FulfillmentToShip       = "to_ship"
	FulfillmentUnpaid       = "unpaid"
	FulfillmentArchived     = "archived"
)

// Fulfillment jest 1:1 z zamowieniem i trzyma jego migawke,
// zeby lista realizacji nie musiala doczytywac orders.
type Fulfillment struct {
	ID           string      `gorm:"primaryKey;size:40" json:"id"`
	OrderID      string      `gorm:"uniqueIndex;size:40;not null" json:"order_id"`
	OrderNumber  string      `gorm:"size:60" json:"order_number"`
	ShopID       int         `gorm:"index;not null" json:"shop_id"`
	CustomerName string      `gorm:"size:180" json:"customer_name"`
	Items        []OrderItem `gorm:"serializer:json" json:"items"`
	Total        float64     `json:"total"`

	Status           string  `gorm:"size:30;index;not null;default:waiting" json:"status"`
	SourceMonth      string  `gorm:"size:7;index;not null" json:"source_month"` // YYYY-MM
	ExtraPayment     float64 `json:"extra_payment"`
	ExtraPaymentPaid bool    `gorm:"not null;default:false" json:"extra_payment_paid"`
	Notes            string  `gorm:"size:500" json:"notes,omitempty"`
	TrackingNumber   string  `gorm:"size:60" json:"tracking_number,omitempty"`

	ReminderSentAt   *time.Time `json:"reminder_sent_at,omitempty"`
	PaymentCheckedAt *time.Time `json:"payment_checked_at,omitempty"`
	ShippedAt        *time.Time `json:"shipped_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FulfillmentNote to wolna notatka przypieta do miesiaca realizacji.
type FulfillmentNote struct {
	ID          string `gorm:"primaryKey;size:40" json:"id"`
	Content     string `gorm:"size:1000;not null" json:"content"`
	SourceMonth string `gorm:"size:7;index" json:"source_month"`
	CreatedBy   string `gorm:"size:120" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
