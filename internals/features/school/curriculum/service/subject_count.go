package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/curriculum/model"
)

// SubjectCountSource resolves how many subjects a student is expected to
// carry. Primary source is the curriculum_subjects pivot for the grade
// level; when the pivot has no rows the count is inferred from the subjects
// the student actually has grades for. Fallback use is audit-logged.
type SubjectCountSource struct {
	DB *gorm.DB
}

func NewSubjectCountSource(db *gorm.DB) *SubjectCountSource {
	return &SubjectCountSource{DB: db}
}

type SubjectCountResult struct {
	ExpectedSubjects int    `json:"expected_subjects"`
	Source           string `json:"source"` // "curriculum" | "graded_subjects"
}

func (s *SubjectCountSource) ExpectedSubjects(gradeLevel int, studentID, academicYearID uuid.UUID) (SubjectCountResult, error) {
	var n int64
	if err := s.DB.Model(&model.CurriculumSubjectModel{}).
		Where("curriculum_subject_grade_level = ?", gradeLevel).
		Count(&n).Error; err != nil {
		return SubjectCountResult{}, err
	}
	if n > 0 {
		return SubjectCountResult{ExpectedSubjects: int(n), Source: "curriculum"}, nil
	}

	// Fallback: distinct subjects that actually have grades recorded.
	var graded int64
	if err := s.DB.Table("grade_records").
		Where("grade_record_student_id = ? AND grade_record_academic_year_id = ?", studentID, academicYearID).
		Distinct("grade_record_subject_id").
		Count(&graded).Error; err != nil {
		return SubjectCountResult{}, err
	}

	log.Printf("[AUDIT] curriculum pivot empty for grade_level=%d; inferred expected subjects=%d from graded subjects (student=%s)",
		gradeLevel, graded, studentID)

	return SubjectCountResult{ExpectedSubjects: int(graded), Source: "graded_subjects"}, nil
}
