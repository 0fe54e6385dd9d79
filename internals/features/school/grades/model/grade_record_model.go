package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradeRecordModel struct {
	GradeRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_record_id" json:"grade_record_id"`

	GradeRecordStudentID      uuid.UUID `gorm:"type:uuid;not null;index;column:grade_record_student_id" json:"grade_record_student_id"`
	GradeRecordSubjectID      uuid.UUID `gorm:"type:uuid;not null;column:grade_record_subject_id" json:"grade_record_subject_id"`
	GradeRecordQuarterID      uuid.UUID `gorm:"type:uuid;not null;column:grade_record_quarter_id" json:"grade_record_quarter_id"`
	GradeRecordAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:grade_record_academic_year_id" json:"grade_record_academic_year_id"`

	GradeRecordGrade float64 `gorm:"type:numeric(5,2);not null;column:grade_record_grade" json:"grade_record_grade"`

	GradeRecordRecordedBy *uuid.UUID `gorm:"type:uuid;column:grade_record_recorded_by" json:"grade_record_recorded_by,omitempty"`

	GradeRecordCreatedAt time.Time      `gorm:"column:grade_record_created_at;autoCreateTime" json:"grade_record_created_at"`
	GradeRecordUpdatedAt *time.Time     `gorm:"column:grade_record_updated_at;autoUpdateTime" json:"grade_record_updated_at,omitempty"`
	GradeRecordDeletedAt gorm.DeletedAt `gorm:"column:grade_record_deleted_at;index" json:"grade_record_deleted_at,omitempty"`
}

func (GradeRecordModel) TableName() string { return "grade_records" }
