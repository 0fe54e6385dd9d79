package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
)

// TardinessResult is the evaluator output. ShouldConvert means the impending
// late record is the 5th within scope and must be stored as absent.
type TardinessResult struct {
	ShouldConvert bool   `json:"should_convert"`
	LateCount     int    `json:"late_count"`
	Message       string `json:"message"`
}

// ConversionRemark is appended to a record rewritten late→absent.
const ConversionRemark = "Auto-converted: 5th late marked as absent"

type TardinessEvaluator struct {
	DB *gorm.DB
}

func NewTardinessEvaluator(db *gorm.DB) *TardinessEvaluator {
	return &TardinessEvaluator{DB: db}
}

type TardinessInput struct {
	StudentID      uuid.UUID
	ScheduleID     uuid.UUID
	AcademicYearID uuid.UUID
	QuarterID      *uuid.UUID // optional scope narrowing
	ExcludeDate    *time.Time // the date being submitted, not counted
}

// Evaluate counts prior late records for the student across every schedule
// of the same subject in the academic year (optionally one quarter) and
// applies the threshold rule. Lookup failures fail open: the attendance
// entry must never be blocked by this check.
func (s *TardinessEvaluator) Evaluate(in TardinessInput) TardinessResult {
	// resolve the subject behind the schedule
	var sched classModel.ClassScheduleModel
	if err := s.DB.
		Where("class_schedule_id = ?", in.ScheduleID).
		Take(&sched).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] tardiness check: schedule %s not found (student=%s)", in.ScheduleID, in.StudentID)
			return TardinessResult{ShouldConvert: false, Message: "Schedule not found; tardiness check skipped"}
		}
		log.Printf("[ERROR] tardiness check: schedule lookup failed (student=%s schedule=%s): %v", in.StudentID, in.ScheduleID, err)
		return TardinessResult{ShouldConvert: false, Message: "Tardiness check unavailable"}
	}

	q := s.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Joins("JOIN class_schedules ON class_schedules.class_schedule_id = attendance_records.attendance_record_schedule_id").
		Where("attendance_records.attendance_record_student_id = ?", in.StudentID).
		Where("class_schedules.class_schedule_subject_id = ?", sched.ClassScheduleSubjectID).
		Where("attendance_records.attendance_record_academic_year_id = ?", in.AcademicYearID).
		Where("attendance_records.attendance_record_status = ?", constants.AttendanceLate)
	if in.QuarterID != nil {
		q = q.Where("attendance_records.attendance_record_quarter_id = ?", *in.QuarterID)
	}
	if in.ExcludeDate != nil {
		q = q.Where("attendance_records.attendance_record_date <> ?", in.ExcludeDate.Format("2006-01-02"))
	}

	var lateCount int64
	if err := q.Count(&lateCount).Error; err != nil {
		log.Printf("[ERROR] tardiness check: late count failed (student=%s schedule=%s): %v", in.StudentID, in.ScheduleID, err)
		return TardinessResult{ShouldConvert: false, Message: "Tardiness check unavailable"}
	}

	return Decide(int(lateCount))
}

// ApplyConversion rewrites a late record to absent, appending the
// conversion remark after any remark the recorder already wrote.
func ApplyConversion(m attendanceModel.AttendanceRecordModel) attendanceModel.AttendanceRecordModel {
	m.AttendanceRecordStatus = constants.AttendanceAbsent
	remark := ConversionRemark
	if m.AttendanceRecordRemarks != nil && *m.AttendanceRecordRemarks != "" {
		remark = *m.AttendanceRecordRemarks + "; " + ConversionRemark
	}
	m.AttendanceRecordRemarks = &remark
	return m
}

// Decide applies the threshold rule to a prior-late count. Strict ≥: with 4
// priors the impending record is the 5th late and converts to absent.
func Decide(lateCount int) TardinessResult {
	if lateCount >= constants.TardinessConvertAfter {
		return TardinessResult{
			ShouldConvert: true,
			LateCount:     lateCount,
			Message:       fmt.Sprintf("Student already has %d late records; this entry will be recorded as absent", lateCount),
		}
	}
	return TardinessResult{
		ShouldConvert: false,
		LateCount:     lateCount,
		Message:       fmt.Sprintf("Student has %d late records; below conversion threshold", lateCount),
	}
}
