package models

import "time"

// SalesRecord to pozycja ewidencji sprzedazy bezrachunkowej, jedna na
// pozycje zamowienia. Source: "manual" albo "auto".
type SalesRecord struct {
	ID            string  `gorm:"primaryKey;size:40" json:"id"`
	ShopID        int     `gorm:"index;not null" json:"shop_id"`
	OrderID       *string `gorm:"index;size:40" json:"order_id,omitempty"`
	OrderNumber   string  `gorm:"size:60" json:"order_number,omitempty"`
	Date          string  `gorm:"size:10;index;not null" json:"date"`
	ProductName   string  `gorm:"size:200" json:"product_name"`
	Quantity      int     `gorm:"not null;default:1" json:"quantity"`
	Netto         float64 `gorm:"not null" json:"netto"`
	VatRate       float64 `gorm:"not null" json:"vat_rate"`
	VatAmount     float64 `gorm:"not null" json:"vat_amount"`
	Brutto        float64 `gorm:"not null" json:"brutto"`
	PaymentMethod string  `gorm:"size:40" json:"payment_method,omitempty"`
	Source        string  `gorm:"size:20;not null;default:manual" json:"source"`

	CreatedAt time.Time `json:"created_at"`
}
