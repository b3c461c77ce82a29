package models

import "time"

type Income struct {
	ID          string  `gorm:"primaryKey;size:40" json:"id"`
	ShopID      int     `gorm:"index;not null" json:"shop_id"`
	Date        string  `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Amount      float64 `gorm:"not null" json:"amount"`
	Description string  `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
