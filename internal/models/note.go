package models

import (
	"time"

	"gorm.io/datatypes"
)

// Note represents a note owned by a single user. Content is a rich-text
// document stored as an opaque JSON tree; the server validates that it is
// well-formed JSON on write and never interprets it.
type Note struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"not null"`
	Content   datatypes.JSON `json:"content"`
	Order     *int           `json:"order" gorm:"column:display_order"`
	UserID    string         `json:"-" gorm:"column:user_id;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// TableName specifies the table name for Note Model
func (Note) TableName() string {
	return "notes"
}
