package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudentCertificateModel struct {
	StudentCertificateID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_certificate_id" json:"student_certificate_id"`

	StudentCertificateStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_certificate_student_id" json:"student_certificate_student_id"`
	StudentCertificateQuarterID uuid.UUID `gorm:"type:uuid;not null;column:student_certificate_quarter_id" json:"student_certificate_quarter_id"`

	// perfect_attendance | honor_roll
	StudentCertificateType string `gorm:"not null;column:student_certificate_type" json:"student_certificate_type"`

	// snapshot of the supporting data the gate approved on
	StudentCertificatePayload datatypes.JSONMap `gorm:"type:jsonb;column:student_certificate_payload" json:"student_certificate_payload"`

	StudentCertificateIssuedBy *uuid.UUID `gorm:"type:uuid;column:student_certificate_issued_by" json:"student_certificate_issued_by,omitempty"`
	StudentCertificateIssuedAt time.Time  `gorm:"column:student_certificate_issued_at;autoCreateTime" json:"student_certificate_issued_at"`

	StudentCertificateDeletedAt gorm.DeletedAt `gorm:"column:student_certificate_deleted_at;index" json:"student_certificate_deleted_at,omitempty"`
}

func (StudentCertificateModel) TableName() string { return "student_certificates" }
