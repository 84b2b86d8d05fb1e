package models

import "time"

// Section name is unique within its class, not globally.
type Section struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:20;not null;uniqueIndex:uniq_class_section"`
	ClassID   uint      `json:"class_id" gorm:"not null;uniqueIndex:uniq_class_section"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
