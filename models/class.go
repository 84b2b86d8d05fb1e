package models

import "time"

type Class struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Description string    `json:"description" gorm:"type:text"`
	TeacherID   *uint     `json:"teacher_id"`
	Teacher     *Teacher  `json:"teacher,omitempty"`
	Sections    []Section `json:"sections,omitempty"`
	Students    []Student `json:"students,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
