package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	curriculumService "schoolku_backend/internals/features/school/curriculum/service"
)

// EligibilityResult is the gate output for one (student, quarter, type).
type EligibilityResult struct {
	CanGenerate bool                   `json:"can_generate"`
	Reason      string                 `json:"reason,omitempty"`
	Supporting  map[string]interface{} `json:"supporting,omitempty"`
}

type EligibilityGate struct {
	DB *gorm.DB
}

func NewEligibilityGate(db *gorm.DB) *EligibilityGate {
	return &EligibilityGate{DB: db}
}

/* =========================================================
 * Pure decisions
 * ========================================================= */

// DecidePerfectAttendance: at least one record in the quarter and zero
// outright absences. Late and excused rows do not disqualify; that leniency
// is deliberate.
func DecidePerfectAttendance(totalRows, absentRows int) EligibilityResult {
	if totalRows == 0 {
		return EligibilityResult{
			CanGenerate: false,
			Reason:      "No attendance records for this quarter",
		}
	}
	if absentRows > 0 {
		return EligibilityResult{
			CanGenerate: false,
			Reason:      fmt.Sprintf("Student has %d absence(s) this quarter", absentRows),
			Supporting:  map[string]interface{}{"total_records": totalRows, "absences": absentRows},
		}
	}
	return EligibilityResult{
		CanGenerate: true,
		Supporting:  map[string]interface{}{"total_records": totalRows, "absences": 0},
	}
}

// DecideHonorRoll: quarter-only average ≥ 90, with the grade set covering
// the expected subject count.
func DecideHonorRoll(average float64, gradedSubjects, expectedSubjects int) EligibilityResult {
	if gradedSubjects == 0 {
		return EligibilityResult{
			CanGenerate: false,
			Reason:      "No grades recorded for this quarter",
		}
	}
	if expectedSubjects > 0 && gradedSubjects < expectedSubjects {
		return EligibilityResult{
			CanGenerate: false,
			Reason:      fmt.Sprintf("Grades cover %d of %d expected subjects", gradedSubjects, expectedSubjects),
			Supporting:  map[string]interface{}{"graded_subjects": gradedSubjects, "expected_subjects": expectedSubjects},
		}
	}
	if average < constants.HonorRollMinimumAvg {
		return EligibilityResult{
			CanGenerate: false,
			Reason:      fmt.Sprintf("Quarter average %.2f is below %.0f", average, constants.HonorRollMinimumAvg),
			Supporting:  map[string]interface{}{"average": average},
		}
	}
	return EligibilityResult{
		CanGenerate: true,
		Supporting:  map[string]interface{}{"average": average, "graded_subjects": gradedSubjects},
	}
}

/* =========================================================
 * Store-backed checks
 * ========================================================= */

func (g *EligibilityGate) CheckPerfectAttendance(studentID, quarterID uuid.UUID) (EligibilityResult, error) {
	var total, absent int64
	if err := g.DB.Table("attendance_records").
		Where("attendance_record_student_id = ? AND attendance_record_quarter_id = ?", studentID, quarterID).
		Where("attendance_record_deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return EligibilityResult{}, err
	}
	if err := g.DB.Table("attendance_records").
		Where("attendance_record_student_id = ? AND attendance_record_quarter_id = ?", studentID, quarterID).
		Where("attendance_record_deleted_at IS NULL").
		Where("attendance_record_status = ?", constants.AttendanceAbsent).
		Count(&absent).Error; err != nil {
		return EligibilityResult{}, err
	}
	return DecidePerfectAttendance(int(total), int(absent)), nil
}

func (g *EligibilityGate) CheckHonorRoll(studentID, quarterID uuid.UUID, gradeLevel int, academicYearID uuid.UUID) (EligibilityResult, error) {
	type aggRow struct {
		Avg float64 `gorm:"column:avg"`
		N   int     `gorm:"column:n"`
	}
	var agg aggRow
	if err := g.DB.Table("grade_records").
		Select("COALESCE(AVG(grade_record_grade), 0) AS avg, COUNT(DISTINCT grade_record_subject_id) AS n").
		Where("grade_record_student_id = ? AND grade_record_quarter_id = ?", studentID, quarterID).
		Where("grade_record_deleted_at IS NULL").
		Scan(&agg).Error; err != nil {
		return EligibilityResult{}, err
	}

	src := curriculumService.NewSubjectCountSource(g.DB)
	expected, err := src.ExpectedSubjects(gradeLevel, studentID, academicYearID)
	if err != nil {
		return EligibilityResult{}, err
	}

	avg := math.Round(agg.Avg*100) / 100
	return DecideHonorRoll(avg, agg.N, expected.ExpectedSubjects), nil
}
