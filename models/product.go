package models

import "time"

// Product trzyma doplate pobraniowa dopasowywana po nazwie produktu
// z pozycji zamowienia.
type Product struct {
	ID           string  `gorm:"primaryKey;size:40" json:"id"`
	ShopID       int     `gorm:"index;not null" json:"shop_id"`
	Name         string  `gorm:"size:200;not null" json:"name"`
	SKU          string  `gorm:"size:60" json:"sku,omitempty"`
	Category     string  `gorm:"size:120" json:"category,omitempty"`
	Price        float64 `json:"price"`
	ExtraPayment float64 `json:"extra_payment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
