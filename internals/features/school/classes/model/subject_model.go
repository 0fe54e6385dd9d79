package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	SubjectCode string `gorm:"uniqueIndex;not null;column:subject_code" json:"subject_code"`
	SubjectName string `gorm:"not null;column:subject_name" json:"subject_name"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt *time.Time     `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at,omitempty"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
