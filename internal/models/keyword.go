// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Keyword is a tracked topic owned by a user. The analysis engine treats
// keywords as read-only; creation and deactivation live in the ingestion layer.
type Keyword struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"not null;index" json:"text"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Active    bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
