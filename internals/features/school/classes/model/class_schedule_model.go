package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ClassScheduleModel struct {
	ClassScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_schedule_id" json:"class_schedule_id"`

	ClassScheduleSectionID      uuid.UUID `gorm:"type:uuid;not null;column:class_schedule_section_id" json:"class_schedule_section_id"`
	ClassScheduleSubjectID      uuid.UUID `gorm:"type:uuid;not null;column:class_schedule_subject_id" json:"class_schedule_subject_id"`
	ClassScheduleAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:class_schedule_academic_year_id" json:"class_schedule_academic_year_id"`

	// 0=Sunday .. 6=Saturday
	ClassScheduleDaysOfWeek pq.Int64Array `gorm:"type:int[];not null;column:class_schedule_days_of_week" json:"class_schedule_days_of_week"`
	ClassScheduleStartTime  string        `gorm:"type:time;not null;column:class_schedule_start_time" json:"class_schedule_start_time"`
	ClassScheduleEndTime    string        `gorm:"type:time;not null;column:class_schedule_end_time" json:"class_schedule_end_time"`
	ClassScheduleTeacher    *string       `gorm:"column:class_schedule_teacher" json:"class_schedule_teacher,omitempty"`

	ClassScheduleCreatedAt time.Time      `gorm:"column:class_schedule_created_at;autoCreateTime" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt *time.Time     `gorm:"column:class_schedule_updated_at;autoUpdateTime" json:"class_schedule_updated_at,omitempty"`
	ClassScheduleDeletedAt gorm.DeletedAt `gorm:"column:class_schedule_deleted_at;index" json:"class_schedule_deleted_at,omitempty"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

// MeetsOn reports whether the schedule has a session on the given weekday.
func (m ClassScheduleModel) MeetsOn(weekday time.Weekday) bool {
	for _, d := range m.ClassScheduleDaysOfWeek {
		if int(d) == int(weekday) {
			return true
		}
	}
	return false
}
