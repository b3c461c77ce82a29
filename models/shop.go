package models

import "time"

// Identyfikatory sklepow to kolejne liczby od 1, nadawane po stronie serwera.
type Shop struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120" json:"name"`
	Color     string    `gorm:"size:20" json:"color"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
