package constants

// Attendance statuses as stored on attendance_records.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// Enrollment statuses.
const (
	EnrollmentEnrolled    = "enrolled"
	EnrollmentPending     = "pending"
	EnrollmentWithdrawn   = "withdrawn"
	EnrollmentTransferred = "transferred"
)

// Day classification buckets for the section/monthly attendance view.
const (
	DayPresent = "present"
	DayAbsent  = "absent"
	DayHalfDay = "half_day"
	DayNoClass = "no_class"
)

// Promotion statuses.
const (
	PromotionPass       = "Pass"
	PromotionFail       = "Fail"
	PromotionIncomplete = "Incomplete"
)

// Honor classifications.
const (
	HonorNone    = "None"
	HonorWith    = "With Honors"
	HonorHigh    = "High Honors"
	HonorHighest = "Highest Honors"
)

// Certificate types.
const (
	CertPerfectAttendance = "perfect_attendance"
	CertHonorRoll         = "honor_roll"
)

// Academic thresholds. A 5th late within the scope is rewritten to absent,
// so conversion triggers once 4 priors exist.
const (
	TardinessConvertAfter = 4
	PassingGrade          = 75.0
	PassingAttendancePct  = 75.0
	HonorRollMinimumAvg   = 90.0
)
