package models

import "time"

// AppSettings to pojedynczy rekord konfiguracji aplikacji.
type AppSettings struct {
	ID            int     `gorm:"primaryKey" json:"-"`
	TargetRevenue float64 `gorm:"not null" json:"target_revenue"`
	VatRate       float64 `gorm:"not null" json:"vat_rate"`
	Currency      string  `gorm:"size:10;not null" json:"currency"`
	ProfitSplit   int     `gorm:"not null" json:"profit_split"`
	AppName       string  `gorm:"size:120" json:"app_name"`

	UpdatedAt time.Time `json:"updated_at"`
}

// CompanySettings to dane firmy drukowane na paragonach i w ewidencji.
type CompanySettings struct {
	ID         int    `gorm:"primaryKey" json:"-"`
	Name       string `gorm:"size:180" json:"name"`
	NIP        string `gorm:"size:20" json:"nip"`
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:120" json:"city"`
	PostalCode string `gorm:"size:12" json:"postal_code"`

	UpdatedAt time.Time `json:"updated_at"`
}
