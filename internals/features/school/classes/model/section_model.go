package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SectionModel struct {
	SectionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:section_id" json:"section_id"`

	SectionAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:section_academic_year_id" json:"section_academic_year_id"`
	SectionName           string    `gorm:"not null;column:section_name" json:"section_name"`
	SectionGradeLevel     int       `gorm:"not null;column:section_grade_level" json:"section_grade_level"`
	SectionAdviser        *string   `gorm:"column:section_adviser" json:"section_adviser,omitempty"`

	SectionCreatedAt time.Time      `gorm:"column:section_created_at;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt *time.Time     `gorm:"column:section_updated_at;autoUpdateTime" json:"section_updated_at,omitempty"`
	SectionDeletedAt gorm.DeletedAt `gorm:"column:section_deleted_at;index" json:"section_deleted_at,omitempty"`
}

func (SectionModel) TableName() string { return "sections" }
