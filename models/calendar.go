package models

import "time"

type Task struct {
	ID      string `gorm:"primaryKey;size:40" json:"id"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Status  string `gorm:"size:20;not null;default:todo" json:"status"` // todo, in_progress, done
	DueDate string `gorm:"size:10" json:"due_date,omitempty"`
	ShopID  *int   `gorm:"index" json:"shop_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CalendarNote struct {
	ID      string `gorm:"primaryKey;size:40" json:"id"`
	Date    string `gorm:"size:10;index;not null" json:"date"`
	Content string `gorm:"size:1000;not null" json:"content"`
	ShopID  *int   `gorm:"index" json:"shop_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Reminder powtarza sie wg Recurring: none, daily, weekly, monthly.
type Reminder struct {
	ID        string `gorm:"primaryKey;size:40" json:"id"`
	Title     string `gorm:"size:200;not null" json:"title"`
	Date      string `gorm:"size:10;index;not null" json:"date"`
	Time      string `gorm:"size:5" json:"time,omitempty"` // HH:MM
	Recurring string `gorm:"size:10;not null;default:none" json:"recurring"`
	Done      bool   `gorm:"not null;default:false" json:"done"`

	CreatedAt time.Time `json:"created_at"`
}
