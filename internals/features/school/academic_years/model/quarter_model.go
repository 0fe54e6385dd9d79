package model

import (
	"time"

	"github.com/google/uuid"
)

type QuarterModel struct {
	QuarterID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quarter_id" json:"quarter_id"`

	QuarterAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:quarter_academic_year_id" json:"quarter_academic_year_id"`
	QuarterName           string    `gorm:"not null;column:quarter_name" json:"quarter_name"` // e.g. "Quarter 1"
	QuarterSequence       int       `gorm:"not null;column:quarter_sequence" json:"quarter_sequence"`
	QuarterStartDate      time.Time `gorm:"type:date;not null;column:quarter_start_date" json:"quarter_start_date"`
	QuarterEndDate        time.Time `gorm:"type:date;not null;column:quarter_end_date" json:"quarter_end_date"`

	QuarterCreatedAt time.Time  `gorm:"column:quarter_created_at;autoCreateTime" json:"quarter_created_at"`
	QuarterUpdatedAt *time.Time `gorm:"column:quarter_updated_at;autoUpdateTime" json:"quarter_updated_at,omitempty"`
}

func (QuarterModel) TableName() string { return "academic_quarters" }
