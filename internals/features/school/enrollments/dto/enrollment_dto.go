package dto

import (
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/enrollments/model"
)

type CreateEnrollmentRequest struct {
	EnrollmentStudentID      uuid.UUID `json:"enrollment_student_id" validate:"required,uuid4"`
	EnrollmentAcademicYearID uuid.UUID `json:"enrollment_academic_year_id" validate:"required,uuid4"`
	EnrollmentSectionID      uuid.UUID `json:"enrollment_section_id" validate:"required,uuid4"`
	EnrollmentGradeLevel     int       `json:"enrollment_grade_level" validate:"required,min=1,max=12"`
	EnrollmentStatus         *string   `json:"enrollment_status" validate:"omitempty,oneof=enrolled pending withdrawn transferred"`
}

type UpdateEnrollmentStatusRequest struct {
	EnrollmentStatus string `json:"enrollment_status" validate:"required,oneof=enrolled pending withdrawn transferred"`
}

func (r CreateEnrollmentRequest) ToModel() m.EnrollmentModel {
	status := "pending"
	if r.EnrollmentStatus != nil {
		status = *r.EnrollmentStatus
	}
	return m.EnrollmentModel{
		EnrollmentStudentID:      r.EnrollmentStudentID,
		EnrollmentAcademicYearID: r.EnrollmentAcademicYearID,
		EnrollmentSectionID:      r.EnrollmentSectionID,
		EnrollmentGradeLevel:     r.EnrollmentGradeLevel,
		EnrollmentStatus:         status,
	}
}
