package models

import "time"

// CustomColumn opisuje dodatkowa kolumne w tabeli miesiecznej.
// ColumnType: "expense" albo "income".
type CustomColumn struct {
	ID         string `gorm:"primaryKey;size:40" json:"id"`
	Name       string `gorm:"uniqueIndex;size:120;not null" json:"name"`
	ColumnType string `gorm:"size:20;not null;default:expense" json:"column_type"`
	Color      string `gorm:"size:20" json:"color,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
