package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicYearModel struct {
	AcademicYearID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_year_id" json:"academic_year_id"`

	AcademicYearName      string    `gorm:"not null;column:academic_year_name" json:"academic_year_name"` // e.g. "2025-2026"
	AcademicYearStartDate time.Time `gorm:"type:date;not null;column:academic_year_start_date" json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `gorm:"type:date;not null;column:academic_year_end_date" json:"academic_year_end_date"`
	AcademicYearIsCurrent bool      `gorm:"not null;default:false;column:academic_year_is_current" json:"academic_year_is_current"`

	AcademicYearCreatedAt time.Time      `gorm:"column:academic_year_created_at;autoCreateTime" json:"academic_year_created_at"`
	AcademicYearUpdatedAt *time.Time     `gorm:"column:academic_year_updated_at;autoUpdateTime" json:"academic_year_updated_at,omitempty"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }
