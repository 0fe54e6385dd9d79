package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyDay(t *testing.T) {
	monday := date(2025, time.October, 6)
	saturday := date(2025, time.October, 11)

	tests := []struct {
		name      string
		day       time.Time
		scheduled int
		attended  int
		want      string
	}{
		{"no schedule that weekday", monday, 0, 0, constants.DayNoClass},
		{"attended none of two", monday, 2, 0, constants.DayAbsent},
		{"attended one of two", monday, 2, 1, constants.DayHalfDay},
		{"attended both", monday, 2, 2, constants.DayPresent},
		{"saturday with records", saturday, 2, 2, constants.DayNoClass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDay(tt.day, tt.scheduled, tt.attended))
		})
	}
}

func TestAttendanceRate(t *testing.T) {
	assert.Equal(t, 0.0, AttendanceRate(0, 0, 0), "empty denominator yields 0")
	assert.Equal(t, 100.0, AttendanceRate(10, 0, 0))
	assert.Equal(t, 75.0, AttendanceRate(1, 1, 0))
	// (0 + 0.5×2) / 3 × 100 = 33.33 after rounding
	assert.Equal(t, 33.33, AttendanceRate(0, 2, 1))
	assert.Equal(t, 0.0, AttendanceRate(0, 0, 5))
}

func TestBuildDailyStatuses(t *testing.T) {
	schedA := uuid.New()
	schedB := uuid.New()
	student := uuid.New()

	schedules := []classModel.ClassScheduleModel{
		{ClassScheduleID: schedA, ClassScheduleDaysOfWeek: pq.Int64Array{1, 2, 3, 4, 5}},
		{ClassScheduleID: schedB, ClassScheduleDaysOfWeek: pq.Int64Array{1, 3, 5}},
	}

	monday := date(2025, time.October, 6) // two schedules meet
	records := []attendanceModel.AttendanceRecordModel{
		{
			AttendanceRecordStudentID:  student,
			AttendanceRecordScheduleID: schedA,
			AttendanceRecordDate:       monday,
			AttendanceRecordStatus:     constants.AttendancePresent,
		},
	}

	days := BuildDailyStatuses(schedules, records, monday, monday)
	require.Len(t, days, 1)
	assert.Equal(t, constants.DayHalfDay, days[0].Status)
	assert.Equal(t, 2, days[0].ScheduledCount)
	assert.Equal(t, 1, days[0].AttendedCount)
}

func TestBuildDailyStatuses_LateCountsAsAttended(t *testing.T) {
	sched := uuid.New()
	schedules := []classModel.ClassScheduleModel{
		{ClassScheduleID: sched, ClassScheduleDaysOfWeek: pq.Int64Array{1}},
	}
	monday := date(2025, time.October, 6)
	records := []attendanceModel.AttendanceRecordModel{
		{AttendanceRecordScheduleID: sched, AttendanceRecordDate: monday, AttendanceRecordStatus: constants.AttendanceLate},
	}

	days := BuildDailyStatuses(schedules, records, monday, monday)
	require.Len(t, days, 1)
	assert.Equal(t, constants.DayPresent, days[0].Status)
}

func TestSummarizeAndRateBounds(t *testing.T) {
	days := []DayStatus{
		{Status: constants.DayPresent},
		{Status: constants.DayPresent},
		{Status: constants.DayHalfDay},
		{Status: constants.DayAbsent},
		{Status: constants.DayNoClass},
	}
	s := Summarize(days)
	assert.Equal(t, 2, s.PresentDays)
	assert.Equal(t, 1, s.HalfDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 1, s.NoClassDays)
	// (2 + 0.5) / 4 × 100 = 62.5
	assert.Equal(t, 62.5, s.Rate)
	assert.GreaterOrEqual(t, s.Rate, 0.0)
	assert.LessOrEqual(t, s.Rate, 100.0)
}

func TestCountStatuses(t *testing.T) {
	mk := func(status string) attendanceModel.AttendanceRecordModel {
		return attendanceModel.AttendanceRecordModel{AttendanceRecordStatus: status}
	}
	c := CountStatuses([]attendanceModel.AttendanceRecordModel{
		mk(constants.AttendancePresent), mk(constants.AttendancePresent),
		mk(constants.AttendanceLate), mk(constants.AttendanceAbsent),
	})
	assert.Equal(t, 2, c.Present)
	assert.Equal(t, 1, c.Late)
	assert.Equal(t, 1, c.Absent)
	assert.Equal(t, 0, c.Excused)
	assert.Equal(t, 4, c.Total)
	assert.Equal(t, 50.0, c.PresentPct)
}

func TestBucketByMonth(t *testing.T) {
	days := []DayStatus{
		{Date: date(2025, time.September, 29), Status: constants.DayPresent},
		{Date: date(2025, time.September, 30), Status: constants.DayAbsent},
		{Date: date(2025, time.October, 1), Status: constants.DayPresent},
	}
	buckets := BucketByMonth(days)
	require.Len(t, buckets, 2)
	assert.Equal(t, time.September, buckets[0].Month)
	assert.Equal(t, 50.0, buckets[0].Summary.Rate)
	assert.Equal(t, time.October, buckets[1].Month)
	assert.Equal(t, 100.0, buckets[1].Summary.Rate)
}
