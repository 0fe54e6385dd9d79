package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordStudentID      uuid.UUID  `gorm:"type:uuid;not null;index;column:attendance_record_student_id" json:"attendance_record_student_id"`
	AttendanceRecordScheduleID     uuid.UUID  `gorm:"type:uuid;not null;column:attendance_record_schedule_id" json:"attendance_record_schedule_id"`
	AttendanceRecordAcademicYearID uuid.UUID  `gorm:"type:uuid;not null;column:attendance_record_academic_year_id" json:"attendance_record_academic_year_id"`
	AttendanceRecordQuarterID      *uuid.UUID `gorm:"type:uuid;column:attendance_record_quarter_id" json:"attendance_record_quarter_id,omitempty"`

	AttendanceRecordDate time.Time `gorm:"type:date;not null;index;column:attendance_record_date" json:"attendance_record_date"`

	// present | absent | late | excused
	AttendanceRecordStatus  string  `gorm:"not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordRemarks *string `gorm:"column:attendance_record_remarks" json:"attendance_record_remarks,omitempty"`

	AttendanceRecordRecordedBy *uuid.UUID `gorm:"type:uuid;column:attendance_record_recorded_by" json:"attendance_record_recorded_by,omitempty"`

	AttendanceRecordCreatedAt time.Time      `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time     `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at,omitempty"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index" json:"attendance_record_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

// ValidStatus reports whether s is a supported attendance status value.
func ValidStatus(s string) bool {
	switch s {
	case "present", "absent", "late", "excused":
		return true
	default:
		return false
	}
}
