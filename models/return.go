package models

import "time"

// Return snapshotuje pola zamowienia w momencie zgloszenia zwrotu.
type Return struct {
	ID           string  `gorm:"primaryKey;size:40" json:"id"`
	OrderID      string  `gorm:"index;size:40;not null" json:"order_id"`
	OrderNumber  string  `gorm:"size:60" json:"order_number"`
	ShopID       int     `gorm:"index;not null" json:"shop_id"`
	CustomerName string  `gorm:"size:180" json:"customer_name"`
	Reason       string  `gorm:"size:255" json:"reason,omitempty"`
	RefundAmount float64 `json:"refund_amount"`
	Date         string  `gorm:"size:10;not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
