package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateAttendanceRecordRequest struct {
	AttendanceRecordStudentID      uuid.UUID  `json:"attendance_record_student_id" validate:"required,uuid4"`
	AttendanceRecordScheduleID     uuid.UUID  `json:"attendance_record_schedule_id" validate:"required,uuid4"`
	AttendanceRecordAcademicYearID *uuid.UUID `json:"attendance_record_academic_year_id" validate:"omitempty,uuid4"`
	AttendanceRecordQuarterID      *uuid.UUID `json:"attendance_record_quarter_id" validate:"omitempty,uuid4"`

	AttendanceRecordDate   time.Time `json:"attendance_record_date" validate:"required"`
	AttendanceRecordStatus string    `json:"attendance_record_status" validate:"required,oneof=present absent late excused"`

	AttendanceRecordRemarks *string `json:"attendance_record_remarks" validate:"omitempty,max=500"`
}

type UpdateAttendanceRecordRequest struct {
	AttendanceRecordStatus  *string `json:"attendance_record_status" validate:"omitempty,oneof=present absent late excused"`
	AttendanceRecordRemarks *string `json:"attendance_record_remarks" validate:"omitempty,max=500"`
}

type FilterAttendanceRecordRequest struct {
	StudentID  *uuid.UUID `query:"student_id" validate:"omitempty,uuid4"`
	ScheduleID *uuid.UUID `query:"schedule_id" validate:"omitempty,uuid4"`
	QuarterID  *uuid.UUID `query:"quarter_id" validate:"omitempty,uuid4"`
	Status     *string    `query:"status" validate:"omitempty,oneof=present absent late excused"`
	DateFrom   *time.Time `query:"date_from" validate:"omitempty"`
	DateTo     *time.Time `query:"date_to" validate:"omitempty"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type CreateAttendanceRecordResponse struct {
	Record        m.AttendanceRecordModel `json:"record"`
	Converted     bool                    `json:"converted"`
	ShouldConvert bool                    `json:"should_convert"`
	LateCount     int                     `json:"late_count"`
	Message       string                  `json:"message,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateAttendanceRecordRequest) ToModel(academicYearID uuid.UUID, recordedBy *uuid.UUID) m.AttendanceRecordModel {
	return m.AttendanceRecordModel{
		AttendanceRecordStudentID:      r.AttendanceRecordStudentID,
		AttendanceRecordScheduleID:     r.AttendanceRecordScheduleID,
		AttendanceRecordAcademicYearID: academicYearID,
		AttendanceRecordQuarterID:      r.AttendanceRecordQuarterID,
		AttendanceRecordDate:           r.AttendanceRecordDate,
		AttendanceRecordStatus:         r.AttendanceRecordStatus,
		AttendanceRecordRemarks:        r.AttendanceRecordRemarks,
		AttendanceRecordRecordedBy:     recordedBy,
	}
}
