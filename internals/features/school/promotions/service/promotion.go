package service

import (
	"math"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

/* =========================================================
 * Honor schemes
 * ========================================================= */

// HonorScheme is a named threshold set for honor classification. Two sets
// exist in production data flows; the report endpoint picks one explicitly
// instead of unifying them.
type HonorScheme struct {
	Name    string  `json:"name"`
	Highest float64 `json:"highest"`
	High    float64 `json:"high"`
	With    float64 `json:"with"`
}

var (
	HonorSchemeStrict = HonorScheme{Name: "strict", Highest: 98, High: 95, With: 90}
	HonorSchemeLegacy = HonorScheme{Name: "legacy", Highest: 95, High: 90, With: 85}
)

// SchemeByName resolves a scheme query value; anything but "legacy" means strict.
func SchemeByName(name string) HonorScheme {
	if name == "legacy" {
		return HonorSchemeLegacy
	}
	return HonorSchemeStrict
}

// Classify buckets an average into an honor tier. Boundaries are half-open:
// exactly 90.0 under the strict scheme earns With Honors.
func (s HonorScheme) Classify(avg float64) string {
	switch {
	case avg >= s.Highest:
		return constants.HonorHighest
	case avg >= s.High:
		return constants.HonorHigh
	case avg >= s.With:
		return constants.HonorWith
	default:
		return constants.HonorNone
	}
}

/* =========================================================
 * Promotion evaluation
 * ========================================================= */

type SubjectGrades struct {
	SubjectID   uuid.UUID
	SubjectName string
	Grades      []float64 // per-quarter grades actually recorded
}

type SubjectAverage struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	Average     *float64  `json:"average"` // null when no grades recorded
	IsFailing   bool      `json:"is_failing"`
}

type PromotionInput struct {
	Subjects []SubjectGrades

	// simple-ratio attendance: present rows over all rows, no half-day weighting
	PresentRows int
	TotalRows   int
}

type PromotionResult struct {
	SubjectAverages      []SubjectAverage `json:"subject_averages"`
	FinalAverage         *float64         `json:"final_average"` // null when no subject has grades
	AttendancePercentage float64          `json:"attendance_percentage"`
	HasFailingGrade      bool             `json:"has_failing_grade"`
	IsComplete           bool             `json:"is_complete"`
	PromotionStatus      string           `json:"promotion_status"`
	HonorClassification  string           `json:"honor_classification"`
}

// EvaluatePromotion computes per-subject averages, the final average over
// non-null subjects (missing subjects are excluded, not zero-filled),
// the promotion status and the honor tier.
func EvaluatePromotion(in PromotionInput, scheme HonorScheme) PromotionResult {
	res := PromotionResult{
		IsComplete:          true,
		HonorClassification: constants.HonorNone,
	}

	sum := 0.0
	counted := 0
	for _, sub := range in.Subjects {
		sa := SubjectAverage{SubjectID: sub.SubjectID, SubjectName: sub.SubjectName}
		if len(sub.Grades) == 0 {
			res.IsComplete = false
		} else {
			avg := mean(sub.Grades)
			sa.Average = &avg
			sa.IsFailing = avg < constants.PassingGrade
			if sa.IsFailing {
				res.HasFailingGrade = true
			}
			sum += avg
			counted++
		}
		res.SubjectAverages = append(res.SubjectAverages, sa)
	}

	if counted > 0 {
		final := round2(sum / float64(counted))
		res.FinalAverage = &final
	}

	res.AttendancePercentage = AttendanceSimpleRatio(in.PresentRows, in.TotalRows)

	switch {
	case !res.IsComplete || res.FinalAverage == nil:
		res.PromotionStatus = constants.PromotionIncomplete
	case *res.FinalAverage >= constants.PassingGrade &&
		!res.HasFailingGrade &&
		res.AttendancePercentage >= constants.PassingAttendancePct:
		res.PromotionStatus = constants.PromotionPass
	default:
		res.PromotionStatus = constants.PromotionFail
	}

	// honors only when the grade set is complete
	if res.IsComplete && res.FinalAverage != nil {
		res.HonorClassification = scheme.Classify(*res.FinalAverage)
	}

	return res
}

// AttendanceSimpleRatio = present rows / total rows × 100. This is the
// promotion view; the section/monthly view weights half days separately.
func AttendanceSimpleRatio(presentRows, totalRows int) float64 {
	if totalRows == 0 {
		return 0
	}
	return round2(float64(presentRows) / float64(totalRows) * 100)
}

/* =========================================================
 * Section readiness
 * ========================================================= */

type SectionReadiness struct {
	TotalStudents         int     `json:"total_students"`
	StudentsWithComplete  int     `json:"students_with_complete_grades"`
	CompletionPercentage  float64 `json:"completion_percentage"`
	Ready                 bool    `json:"ready"`
	ExpectedGradesPerHead int     `json:"expected_grades_per_student"`
}

// EvaluateSectionReadiness gates report-form generation: every enrolled
// student must have a grade for every (subject × quarter) combination.
// The completion percentage is reported even when below 100%.
func EvaluateSectionReadiness(gradeCountPerStudent map[uuid.UUID]int, totalStudents, subjectCount, quarterCount int) SectionReadiness {
	expected := subjectCount * quarterCount
	complete := 0
	for _, n := range gradeCountPerStudent {
		if expected > 0 && n >= expected {
			complete++
		}
	}

	r := SectionReadiness{
		TotalStudents:         totalStudents,
		StudentsWithComplete:  complete,
		ExpectedGradesPerHead: expected,
	}
	if totalStudents > 0 {
		r.CompletionPercentage = round2(float64(complete) / float64(totalStudents) * 100)
	}
	r.Ready = totalStudents > 0 && complete == totalStudents && expected > 0
	return r
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return round2(sum / float64(len(xs)))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
