package models

import "time"

// Student rows are never deleted physically; IsActive=false marks a student
// as removed while keeping attendance history intact.
type Student struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	FirstName     string     `json:"first_name" gorm:"size:50;not null"`
	LastName      string     `json:"last_name" gorm:"size:50;not null"`
	Email         string     `json:"email" gorm:"size:120"`
	Phone         string     `json:"phone" gorm:"size:20"`
	Address       string     `json:"address" gorm:"type:text"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	RollNo        string     `json:"roll_no" gorm:"size:20"`
	FatherName    string     `json:"father_name" gorm:"size:100"`
	MotherName    string     `json:"mother_name" gorm:"size:100"`
	GuardianPhone string     `json:"guardian_phone" gorm:"size:20"`
	AdmissionNo   string     `json:"admission_no" gorm:"uniqueIndex;size:20;not null"`
	ClassID       *uint      `json:"class_id"`
	Class         *Class     `json:"class,omitempty"`
	SectionID     *uint      `json:"section_id"`
	Section       *Section   `json:"section,omitempty"`
	IsActive      bool       `json:"is_active" gorm:"not null;default:true"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
