package models

import "time"

const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceLate    = "LATE"
	AttendanceExcused = "EXCUSED"
)

// ValidAttendanceStatus reports whether s is one of the four statuses.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceRecord holds one row per student per calendar day. Date is always
// a UTC day boundary; the composite unique index on (student_id, date) is the
// storage-level contract every write goes through.
type AttendanceRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:uniq_student_date"`
	Student   *Student  `json:"student,omitempty"`
	Date      time.Time `json:"date" gorm:"not null;uniqueIndex:uniq_student_date"`
	Status    string    `json:"status" gorm:"size:10;not null"` // PRESENT | ABSENT | LATE | EXCUSED
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
