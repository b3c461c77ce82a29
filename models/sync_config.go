package models

import "time"

type ShopifyConfig struct {
	ID          string     `gorm:"primaryKey;size:40" json:"id"`
	ShopID      int        `gorm:"uniqueIndex;not null" json:"shop_id"`
	StoreDomain string     `gorm:"size:200;not null" json:"store_domain"`
	AccessToken string     `gorm:"size:200;not null" json:"-"`
	LastSync    *time.Time `json:"last_sync,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TikTokConfig laczy jedno konto reklamowe z wieloma sklepami.
// Koszt dzielony jest po rowno miedzy LinkedShopIDs.
type TikTokConfig struct {
	ID            string     `gorm:"primaryKey;size:40" json:"id"`
	Name          string     `gorm:"size:120;not null" json:"name"`
	AdvertiserID  string     `gorm:"size:60;not null" json:"advertiser_id"`
	AccessToken   string     `gorm:"size:200;not null" json:"-"`
	LinkedShopIDs []int      `gorm:"serializer:json" json:"linked_shop_ids"`
	LastSync      *time.Time `json:"last_sync,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
