package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
)

func TestDecide_BelowThreshold(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		res := Decide(n)
		assert.False(t, res.ShouldConvert, "with %d priors the entry must stay late", n)
		assert.Equal(t, n, res.LateCount)
	}
}

func TestDecide_AtThreshold(t *testing.T) {
	// 4 priors means the impending record is the 5th late
	res := Decide(4)
	assert.True(t, res.ShouldConvert)
	assert.Equal(t, 4, res.LateCount)
	assert.Contains(t, res.Message, "4 late records")
}

func TestDecide_AboveThreshold(t *testing.T) {
	res := Decide(7)
	assert.True(t, res.ShouldConvert)
	assert.Equal(t, 7, res.LateCount)
}

func TestApplyConversion_RewritesStatusAndRemark(t *testing.T) {
	rec := attendanceModel.AttendanceRecordModel{
		AttendanceRecordStatus: constants.AttendanceLate,
	}

	out := ApplyConversion(rec)

	assert.Equal(t, constants.AttendanceAbsent, out.AttendanceRecordStatus)
	require.NotNil(t, out.AttendanceRecordRemarks)
	assert.Contains(t, *out.AttendanceRecordRemarks, "5th late")
}

func TestApplyConversion_AppendsToExistingRemark(t *testing.T) {
	prior := "Arrived 20 minutes into first period"
	rec := attendanceModel.AttendanceRecordModel{
		AttendanceRecordStatus:  constants.AttendanceLate,
		AttendanceRecordRemarks: &prior,
	}

	out := ApplyConversion(rec)

	assert.Equal(t, constants.AttendanceAbsent, out.AttendanceRecordStatus)
	require.NotNil(t, out.AttendanceRecordRemarks)
	assert.Equal(t, prior+"; "+ConversionRemark, *out.AttendanceRecordRemarks)
	assert.Contains(t, *out.AttendanceRecordRemarks, "5th late")
}
