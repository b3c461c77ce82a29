package models

import "time"

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Status zamowienia: new, processing, delivered, returned, cancelled.
// Zmieniaja go podsystemy realizacji i zwrotow.
type Order struct {
	ID            string      `gorm:"primaryKey;size:40" json:"id"`
	OrderNumber   string      `gorm:"size:60;index" json:"order_number"`
	ShopID        int         `gorm:"index;not null" json:"shop_id"`
	CustomerName  string      `gorm:"size:180" json:"customer_name"`
	CustomerEmail string      `gorm:"size:180" json:"customer_email,omitempty"`
	CustomerPhone string      `gorm:"size:60" json:"customer_phone,omitempty"`
	Address       string      `gorm:"size:255" json:"address,omitempty"`
	City          string      `gorm:"size:120" json:"city,omitempty"`
	PostalCode    string      `gorm:"size:12" json:"postal_code,omitempty"`
	Date          string      `gorm:"size:10;index;not null" json:"date"`
	Total         float64     `gorm:"not null" json:"total"`
	Status        string      `gorm:"size:30;index;not null;default:new" json:"status"`
	Source        string      `gorm:"size:30;not null;default:manual" json:"source"`
	Items         []OrderItem `gorm:"serializer:json" json:"items"`
	ReceiptID     *string     `gorm:"size:40" json:"receipt_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
