package dto

import (
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/grades/model"
)

type CreateGradeRecordRequest struct {
	GradeRecordStudentID      uuid.UUID  `json:"grade_record_student_id" validate:"required,uuid4"`
	GradeRecordSubjectID      uuid.UUID  `json:"grade_record_subject_id" validate:"required,uuid4"`
	GradeRecordQuarterID      uuid.UUID  `json:"grade_record_quarter_id" validate:"required,uuid4"`
	GradeRecordAcademicYearID *uuid.UUID `json:"grade_record_academic_year_id" validate:"omitempty,uuid4"`

	GradeRecordGrade float64 `json:"grade_record_grade" validate:"min=0,max=100"`
}

type UpdateGradeRecordRequest struct {
	GradeRecordGrade float64 `json:"grade_record_grade" validate:"min=0,max=100"`
}

func (r CreateGradeRecordRequest) ToModel(academicYearID uuid.UUID, recordedBy *uuid.UUID) m.GradeRecordModel {
	return m.GradeRecordModel{
		GradeRecordStudentID:      r.GradeRecordStudentID,
		GradeRecordSubjectID:      r.GradeRecordSubjectID,
		GradeRecordQuarterID:      r.GradeRecordQuarterID,
		GradeRecordAcademicYearID: academicYearID,
		GradeRecordGrade:          r.GradeRecordGrade,
		GradeRecordRecordedBy:     recordedBy,
	}
}
