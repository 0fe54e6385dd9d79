package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "schoolku_backend/internals/features/school/classes/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateClassScheduleRequest struct {
	ClassScheduleSectionID      uuid.UUID `json:"class_schedule_section_id" validate:"required,uuid4"`
	ClassScheduleSubjectID      uuid.UUID `json:"class_schedule_subject_id" validate:"required,uuid4"`
	ClassScheduleAcademicYearID uuid.UUID `json:"class_schedule_academic_year_id" validate:"required,uuid4"`

	// 0=Sunday .. 6=Saturday
	ClassScheduleDaysOfWeek []int64 `json:"class_schedule_days_of_week" validate:"required,min=1,dive,min=0,max=6"`
	ClassScheduleStartTime  string  `json:"class_schedule_start_time" validate:"required"`
	ClassScheduleEndTime    string  `json:"class_schedule_end_time" validate:"required"`
	ClassScheduleTeacher    *string `json:"class_schedule_teacher" validate:"omitempty,max=120"`
}

type FilterClassScheduleRequest struct {
	SectionID *uuid.UUID `query:"section_id" validate:"omitempty,uuid4"`
	SubjectID *uuid.UUID `query:"subject_id" validate:"omitempty,uuid4"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateClassScheduleRequest) ToModel() m.ClassScheduleModel {
	return m.ClassScheduleModel{
		ClassScheduleSectionID:      r.ClassScheduleSectionID,
		ClassScheduleSubjectID:      r.ClassScheduleSubjectID,
		ClassScheduleAcademicYearID: r.ClassScheduleAcademicYearID,
		ClassScheduleDaysOfWeek:     pq.Int64Array(r.ClassScheduleDaysOfWeek),
		ClassScheduleStartTime:      r.ClassScheduleStartTime,
		ClassScheduleEndTime:        r.ClassScheduleEndTime,
		ClassScheduleTeacher:        r.ClassScheduleTeacher,
	}
}
