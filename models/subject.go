package models

import "time"

type Subject struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:80;not null"`
	Code      string    `json:"code" gorm:"uniqueIndex;size:20;not null"`
	TeacherID *uint     `json:"teacher_id"`
	ClassID   *uint     `json:"class_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
