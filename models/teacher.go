package models

import "time"

// Teacher is the staff profile; the auth principal lives in User (1:1).
type Teacher struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User      User      `json:"user"`
	Phone     string    `json:"phone" gorm:"size:20"`
	Address   string    `json:"address" gorm:"type:text"`
	Subjects  []Subject `json:"subjects,omitempty" gorm:"foreignKey:TeacherID"`
	Classes   []Class   `json:"classes,omitempty" gorm:"foreignKey:TeacherID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
