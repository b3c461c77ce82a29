package models

import "time"

type ReceiptItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Netto    float64 `json:"netto"`
	Vat      float64 `json:"vat"`
	Brutto   float64 `json:"brutto"`
}

// Receipt dostaje numer sekwencyjny w obrebie miesiaca: NNNN/MM/RRRR.
type Receipt struct {
	ID            string        `gorm:"primaryKey;size:40" json:"id"`
	ReceiptNumber string        `gorm:"uniqueIndex;size:20;not null" json:"receipt_number"`
	OrderID       *string       `gorm:"uniqueIndex;size:40" json:"order_id,omitempty"`
	ShopID        int           `gorm:"index;not null" json:"shop_id"`
	Date          string        `gorm:"size:10;index;not null" json:"date"`
	CustomerName  string        `gorm:"size:180" json:"customer_name,omitempty"`
	PaymentMethod string        `gorm:"size:40" json:"payment_method,omitempty"`
	TotalNetto    float64       `gorm:"not null" json:"total_netto"`
	TotalVat      float64       `gorm:"not null" json:"total_vat"`
	TotalBrutto   float64       `gorm:"not null" json:"total_brutto"`
	Items         []ReceiptItem `gorm:"serializer:json" json:"items"`

	CreatedAt time.Time `json:"created_at"`
}
