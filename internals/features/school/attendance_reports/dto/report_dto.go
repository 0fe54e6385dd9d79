package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance_reports/service"
)

type StudentMonthlyReport struct {
	StudentID uuid.UUID           `json:"student_id"`
	Year      int                 `json:"year"`
	Month     int                 `json:"month"`
	Days      []service.DayStatus `json:"days"`
	Summary   service.DaySummary  `json:"summary"`
}

type StudentQuarterlyReport struct {
	StudentID uuid.UUID               `json:"student_id"`
	QuarterID uuid.UUID               `json:"quarter_id"`
	Months    []service.MonthlyBucket `json:"months"`
	Summary   service.DaySummary      `json:"summary"`
}

type SectionStudentRow struct {
	StudentID   uuid.UUID            `json:"student_id"`
	StudentName string               `json:"student_name"`
	Days        []service.DayStatus  `json:"days"`
	Summary     service.DaySummary   `json:"summary"`
	Counts      service.StatusCounts `json:"counts"`
}

type SectionMonthlyReport struct {
	SectionID uuid.UUID           `json:"section_id"`
	Year      int                 `json:"year"`
	Month     int                 `json:"month"`
	Students  []SectionStudentRow `json:"students"`
}
