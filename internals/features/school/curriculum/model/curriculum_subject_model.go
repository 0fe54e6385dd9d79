package model

import (
	"time"

	"github.com/google/uuid"
)

// CurriculumSubjectModel is the expected-subjects-per-grade-level pivot.
type CurriculumSubjectModel struct {
	CurriculumSubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:curriculum_subject_id" json:"curriculum_subject_id"`

	CurriculumSubjectGradeLevel int       `gorm:"not null;index;column:curriculum_subject_grade_level" json:"curriculum_subject_grade_level"`
	CurriculumSubjectSubjectID  uuid.UUID `gorm:"type:uuid;not null;column:curriculum_subject_subject_id" json:"curriculum_subject_subject_id"`

	CurriculumSubjectCreatedAt time.Time `gorm:"column:curriculum_subject_created_at;autoCreateTime" json:"curriculum_subject_created_at"`
}

func (CurriculumSubjectModel) TableName() string { return "curriculum_subjects" }
