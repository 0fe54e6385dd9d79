package dto

import (
	"github.com/google/uuid"
)

type IssueCertificateRequest struct {
	CertificateStudentID uuid.UUID `json:"certificate_student_id" validate:"required,uuid4"`
	CertificateQuarterID uuid.UUID `json:"certificate_quarter_id" validate:"required,uuid4"`
	CertificateType      string    `json:"certificate_type" validate:"required,oneof=perfect_attendance honor_roll"`
}

type EligibilityResponse struct {
	StudentID   uuid.UUID              `json:"student_id"`
	QuarterID   uuid.UUID              `json:"quarter_id"`
	Type        string                 `json:"certificate_type"`
	CanGenerate bool                   `json:"can_generate"`
	Reason      string                 `json:"reason,omitempty"`
	Supporting  map[string]interface{} `json:"supporting,omitempty"`
}
