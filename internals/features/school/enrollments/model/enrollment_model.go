package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`

	EnrollmentStudentID      uuid.UUID `gorm:"type:uuid;not null;column:enrollment_student_id" json:"enrollment_student_id"`
	EnrollmentAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:enrollment_academic_year_id" json:"enrollment_academic_year_id"`
	EnrollmentSectionID      uuid.UUID `gorm:"type:uuid;not null;column:enrollment_section_id" json:"enrollment_section_id"`
	EnrollmentGradeLevel     int       `gorm:"not null;column:enrollment_grade_level" json:"enrollment_grade_level"`

	// enrolled | pending | withdrawn | transferred
	EnrollmentStatus string `gorm:"not null;default:'pending';column:enrollment_status" json:"enrollment_status"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt *time.Time     `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at,omitempty"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
