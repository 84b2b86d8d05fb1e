package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iamaakashks/school-management-system/models"
)

// AttendanceAssertion is one "student X was <status> on date Y" claim.
type AttendanceAssertion struct {
	StudentID uint   `json:"student_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

type AttendanceFilter struct {
	Date      string
	ClassID   uint
	StudentID uint
}

// StudentSummary is the slice of Student embedded in attendance responses.
type StudentSummary struct {
	ID          uint            `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	AdmissionNo string          `json:"admission_no"`
	Class       *models.Class   `json:"class"`
	Section     *models.Section `json:"section"`
}

type AttendanceView struct {
	ID        uint           `json:"id"`
	StudentID uint           `json:"student_id"`
	Date      time.Time      `json:"date"`
	Status    string         `json:"status"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Student   StudentSummary `json:"student"`
}

// AttendanceService reconciles attendance assertions into duplicate-free
// per-day records. It never checks-then-writes: every mark is a single
// upsert against the (student_id, date) unique index, so concurrent marks
// for the same pair cannot race into duplicates.
type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// day parses an ISO date or RFC3339 timestamp and drops any time-of-day
// component, returning the UTC day boundary.
func day(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, Validationf("date is required")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, Validationf("date must be YYYY-MM-DD or RFC3339")
		}
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Submit applies a batch of assertions, creating or overwriting one record
// per (student, day). The whole batch is validated before any write; a bad
// record rejects the batch. Writes themselves are independent upserts with
// no transaction around the batch, so a storage failure mid-batch leaves
// earlier records written.
func (s *AttendanceService) Submit(assertions []AttendanceAssertion) ([]models.AttendanceRecord, error) {
	if len(assertions) == 0 {
		return nil, Validationf("no records submitted")
	}

	rows := make([]models.AttendanceRecord, 0, len(assertions))
	for i, a := range assertions {
		d, err := day(a.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		status := strings.ToUpper(strings.TrimSpace(a.Status))
		if !models.ValidAttendanceStatus(status) {
			return nil, Validationf("record %d: unknown status %q", i, a.Status)
		}
		if a.StudentID == 0 {
			return nil, Validationf("record %d: student_id is required", i)
		}
		rows = append(rows, models.AttendanceRecord{
			StudentID: a.StudentID,
			Date:      d,
			Status:    status,
			Notes:     strings.TrimSpace(a.Notes),
		})
	}

	out := make([]models.AttendanceRecord, 0, len(rows))
	for i := range rows {
		rec := rows[i]
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "updated_at"}),
		}).Create(&rec).Error
		if err != nil {
			return out, err
		}
		// Re-read so an update reports the original id and created_at, not
		// the values from the discarded insert attempt.
		var saved models.AttendanceRecord
		if err := s.db.Where("student_id = ? AND date = ?", rec.StudentID, rec.Date).
			First(&saved).Error; err != nil {
			return out, err
		}
		out = append(out, saved)
	}
	return out, nil
}

// Query lists records matching the filter. Filters AND together. The class
// filter joins through the student's current class assignment; history is
// not snapshotted, so reassigning a student moves their old records to the
// new class's view. Soft-deleted students stay queryable.
func (s *AttendanceService) Query(f AttendanceFilter) ([]AttendanceView, error) {
	tx := s.db.Model(&models.AttendanceRecord{}).
		Select("attendance_records.*").
		Joins("JOIN students ON students.id = attendance_records.student_id")

	if f.Date != "" {
		d, err := day(f.Date)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("attendance_records.date >= ? AND attendance_records.date < ?",
			d, d.AddDate(0, 0, 1))
	}
	if f.StudentID != 0 {
		tx = tx.Where("attendance_records.student_id = ?", f.StudentID)
	}
	if f.ClassID != 0 {
		tx = tx.Where("students.class_id = ?", f.ClassID)
	}

	var recs []models.AttendanceRecord
	err := tx.
		Preload("Student").
		Preload("Student.Class").
		Preload("Student.Section").
		Order("attendance_records.date DESC, students.first_name ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	out := make([]AttendanceView, 0, len(recs))
	for _, r := range recs {
		v := AttendanceView{
			ID:        r.ID,
			StudentID: r.StudentID,
			Date:      r.Date,
			Status:    r.Status,
			Notes:     r.Notes,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
		if r.Student != nil {
			v.Student = StudentSummary{
				ID:          r.Student.ID,
				FirstName:   r.Student.FirstName,
				LastName:    r.Student.LastName,
				AdmissionNo: r.Student.AdmissionNo,
				Class:       r.Student.Class,
				Section:     r.Student.Section,
			}
		}
		out = append(out, v)
	}
	return out, nil
}
