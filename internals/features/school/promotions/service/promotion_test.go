package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
)

func subj(name string, grades ...float64) SubjectGrades {
	return SubjectGrades{SubjectID: uuid.New(), SubjectName: name, Grades: grades}
}

func TestEvaluatePromotion_Pass(t *testing.T) {
	res := EvaluatePromotion(PromotionInput{
		Subjects: []SubjectGrades{
			subj("Math", 85, 88, 90, 87),
			subj("English", 80, 82, 84, 86),
		},
		PresentRows: 90,
		TotalRows:   100,
	}, HonorSchemeStrict)

	assert.True(t, res.IsComplete)
	assert.False(t, res.HasFailingGrade)
	require.NotNil(t, res.FinalAverage)
	assert.Equal(t, constants.PromotionPass, res.PromotionStatus)
	assert.Equal(t, 90.0, res.AttendancePercentage)
}

func TestEvaluatePromotion_IncompleteWhenSubjectHasNoGrades(t *testing.T) {
	res := EvaluatePromotion(PromotionInput{
		Subjects: []SubjectGrades{
			subj("Math", 95, 96),
			subj("Science"), // nothing recorded
		},
		PresentRows: 100,
		TotalRows:   100,
	}, HonorSchemeStrict)

	assert.False(t, res.IsComplete)
	assert.Equal(t, constants.PromotionIncomplete, res.PromotionStatus)
	// no honors while incomplete, whatever the average
	assert.Equal(t, constants.HonorNone, res.HonorClassification)
	// missing subject is excluded from the mean, not zero-filled
	require.NotNil(t, res.FinalAverage)
	assert.Equal(t, 95.5, *res.FinalAverage)
	assert.Nil(t, res.SubjectAverages[1].Average)
}

func TestEvaluatePromotion_FailOnFailingSubject(t *testing.T) {
	res := EvaluatePromotion(PromotionInput{
		Subjects: []SubjectGrades{
			subj("Math", 70, 72), // failing
			subj("English", 90, 92),
		},
		PresentRows: 100,
		TotalRows:   100,
	}, HonorSchemeStrict)

	assert.True(t, res.HasFailingGrade)
	assert.Equal(t, constants.PromotionFail, res.PromotionStatus)
}

func TestEvaluatePromotion_FailOnLowAttendance(t *testing.T) {
	res := EvaluatePromotion(PromotionInput{
		Subjects: []SubjectGrades{
			subj("Math", 85, 88),
			subj("English", 86, 89),
		},
		PresentRows: 70,
		TotalRows:   100,
	}, HonorSchemeStrict)

	assert.False(t, res.HasFailingGrade)
	assert.Equal(t, constants.PromotionFail, res.PromotionStatus)
	assert.Equal(t, 70.0, res.AttendancePercentage)
}

func TestHonorSchemeBoundaries(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{89.999, constants.HonorNone},
		{90.0, constants.HonorWith},
		{94.999, constants.HonorWith},
		{95.0, constants.HonorHigh},
		{97.999, constants.HonorHigh},
		{98.0, constants.HonorHighest},
		{100.0, constants.HonorHighest},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HonorSchemeStrict.Classify(tt.avg), "avg=%v", tt.avg)
	}
}

func TestHonorSchemeLegacy(t *testing.T) {
	assert.Equal(t, constants.HonorWith, HonorSchemeLegacy.Classify(85.0))
	assert.Equal(t, constants.HonorHigh, HonorSchemeLegacy.Classify(90.0))
	assert.Equal(t, constants.HonorHighest, HonorSchemeLegacy.Classify(95.0))
	assert.Equal(t, HonorSchemeLegacy, SchemeByName("legacy"))
	assert.Equal(t, HonorSchemeStrict, SchemeByName(""))
	assert.Equal(t, HonorSchemeStrict, SchemeByName("strict"))
}

func TestAttendanceSimpleRatio(t *testing.T) {
	assert.Equal(t, 0.0, AttendanceSimpleRatio(0, 0))
	assert.Equal(t, 75.0, AttendanceSimpleRatio(3, 4))
}

func TestEvaluateSectionReadiness(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	counts := map[uuid.UUID]int{
		a: 8, // 2 subjects × 4 quarters, complete
		b: 8,
		c: 5,
	}
	r := EvaluateSectionReadiness(counts, 3, 2, 4)
	assert.Equal(t, 2, r.StudentsWithComplete)
	assert.Equal(t, 66.67, r.CompletionPercentage)
	assert.False(t, r.Ready)

	counts[c] = 8
	r = EvaluateSectionReadiness(counts, 3, 2, 4)
	assert.True(t, r.Ready)
	assert.Equal(t, 100.0, r.CompletionPercentage)
}

func TestEvaluateSectionReadiness_Empty(t *testing.T) {
	r := EvaluateSectionReadiness(map[uuid.UUID]int{}, 0, 2, 4)
	assert.False(t, r.Ready)
	assert.Equal(t, 0.0, r.CompletionPercentage)
}
