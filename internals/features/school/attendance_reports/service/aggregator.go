package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
)

/* =========================================================
 * Day classification
 * ========================================================= */

type DayStatus struct {
	Date           time.Time `json:"date"`
	Status         string    `json:"status"` // present | absent | half_day | no_class
	ScheduledCount int       `json:"scheduled_count"`
	AttendedCount  int       `json:"attended_count"`
}

// ClassifyDay buckets one (student, date) pair. Weekends are always
// no_class regardless of stray records.
func ClassifyDay(date time.Time, scheduledCount, attendedCount int) string {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return constants.DayNoClass
	}
	if scheduledCount == 0 {
		return constants.DayNoClass
	}
	if attendedCount == 0 {
		return constants.DayAbsent
	}
	if attendedCount >= scheduledCount {
		return constants.DayPresent
	}
	return constants.DayHalfDay
}

// BuildDailyStatuses walks every calendar day in [from, to] and classifies
// it against the section's schedules and the student's attendance rows.
// A schedule counts as attended on a date when it has a present or late row.
func BuildDailyStatuses(
	schedules []classModel.ClassScheduleModel,
	records []attendanceModel.AttendanceRecordModel,
	from, to time.Time,
) []DayStatus {
	// attended schedule ids per date
	attended := make(map[string]map[uuid.UUID]bool)
	for _, r := range records {
		if r.AttendanceRecordStatus != constants.AttendancePresent &&
			r.AttendanceRecordStatus != constants.AttendanceLate {
			continue
		}
		key := r.AttendanceRecordDate.Format("2006-01-02")
		if attended[key] == nil {
			attended[key] = make(map[uuid.UUID]bool)
		}
		attended[key][r.AttendanceRecordScheduleID] = true
	}

	var days []DayStatus
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		scheduled := 0
		for _, s := range schedules {
			if s.MeetsOn(d.Weekday()) {
				scheduled++
			}
		}
		attendedCount := len(attended[d.Format("2006-01-02")])
		days = append(days, DayStatus{
			Date:           d,
			Status:         ClassifyDay(d, scheduled, attendedCount),
			ScheduledCount: scheduled,
			AttendedCount:  attendedCount,
		})
	}
	return days
}

/* =========================================================
 * Summaries
 * ========================================================= */

type DaySummary struct {
	PresentDays int     `json:"present_days"`
	HalfDays    int     `json:"half_days"`
	AbsentDays  int     `json:"absent_days"`
	NoClassDays int     `json:"no_class_days"`
	Rate        float64 `json:"attendance_rate"`
}

// Summarize folds classified days into counts and the attendance rate.
func Summarize(days []DayStatus) DaySummary {
	s := DaySummary{}
	for _, d := range days {
		switch d.Status {
		case constants.DayPresent:
			s.PresentDays++
		case constants.DayHalfDay:
			s.HalfDays++
		case constants.DayAbsent:
			s.AbsentDays++
		default:
			s.NoClassDays++
		}
	}
	s.Rate = AttendanceRate(s.PresentDays, s.HalfDays, s.AbsentDays)
	return s
}

// AttendanceRate = (present + 0.5·half) / (present + half + absent) × 100,
// rounded to 2 decimals. Empty denominator yields 0, not an error.
func AttendanceRate(presentDays, halfDays, absentDays int) float64 {
	denom := presentDays + halfDays + absentDays
	if denom == 0 {
		return 0
	}
	rate := (float64(presentDays) + 0.5*float64(halfDays)) / float64(denom) * 100
	return math.Round(rate*100) / 100
}

/* =========================================================
 * Raw status counts
 * ========================================================= */

type StatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
	Total   int `json:"total"`

	PresentPct float64 `json:"present_pct"`
	AbsentPct  float64 `json:"absent_pct"`
	LatePct    float64 `json:"late_pct"`
	ExcusedPct float64 `json:"excused_pct"`
}

// CountStatuses tallies raw record statuses with percentages of total.
func CountStatuses(records []attendanceModel.AttendanceRecordModel) StatusCounts {
	c := StatusCounts{}
	for _, r := range records {
		switch r.AttendanceRecordStatus {
		case constants.AttendancePresent:
			c.Present++
		case constants.AttendanceAbsent:
			c.Absent++
		case constants.AttendanceLate:
			c.Late++
		case constants.AttendanceExcused:
			c.Excused++
		}
	}
	c.Total = c.Present + c.Absent + c.Late + c.Excused
	if c.Total > 0 {
		c.PresentPct = pct(c.Present, c.Total)
		c.AbsentPct = pct(c.Absent, c.Total)
		c.LatePct = pct(c.Late, c.Total)
		c.ExcusedPct = pct(c.Excused, c.Total)
	}
	return c
}

func pct(n, total int) float64 {
	return math.Round(float64(n)/float64(total)*100*100) / 100
}

/* =========================================================
 * Monthly buckets (trend views)
 * ========================================================= */

type MonthlyBucket struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Summary DaySummary `json:"summary"`
}

// BucketByMonth splits classified days into calendar-month summaries.
// Partial months simply use the days that fall inside the window.
func BucketByMonth(days []DayStatus) []MonthlyBucket {
	var buckets []MonthlyBucket
	byKey := make(map[string]int) // key → index in buckets

	for _, d := range days {
		key := d.Date.Format("2006-01")
		idx, ok := byKey[key]
		if !ok {
			buckets = append(buckets, MonthlyBucket{Year: d.Date.Year(), Month: d.Date.Month()})
			idx = len(buckets) - 1
			byKey[key] = idx
		}
		switch d.Status {
		case constants.DayPresent:
			buckets[idx].Summary.PresentDays++
		case constants.DayHalfDay:
			buckets[idx].Summary.HalfDays++
		case constants.DayAbsent:
			buckets[idx].Summary.AbsentDays++
		default:
			buckets[idx].Summary.NoClassDays++
		}
	}

	for i := range buckets {
		s := &buckets[i].Summary
		s.Rate = AttendanceRate(s.PresentDays, s.HalfDays, s.AbsentDays)
	}
	return buckets
}
