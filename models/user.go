package models

import "time"

// Logowanie po 4-cyfrowym PIN, bez hasel.
type User struct {
	ID        string `gorm:"primaryKey;size:40" json:"id"`
	PIN       string `gorm:"uniqueIndex;size:8;not null" json:"-"`
	Name      string `gorm:"size:120;not null" json:"name"`
	Username  string `gorm:"uniqueIndex;size:120;not null" json:"username"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
}
