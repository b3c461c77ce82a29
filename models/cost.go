package models

import "time"

// Wbudowane kategorie kosztow. Kazda inna wartosc musi pasowac do nazwy
// kolumny z custom_columns, inaczej laduje w kubelku "inne".
const (
	CostCategoryTikTok = "tiktok"
	CostCategoryMeta   = "meta"
	CostCategoryGoogle = "google"
	CostCategoryZwroty = "zwroty"
	CostCategoryOther  = "inne"
)

type Cost struct {
	ID          string  `gorm:"primaryKey;size:40" json:"id"`
	ShopID      int     `gorm:"index;not null" json:"shop_id"`
	Date        string  `gorm:"size:10;index;not null" json:"date"`
	Category    string  `gorm:"size:120;not null" json:"category"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Description string  `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
