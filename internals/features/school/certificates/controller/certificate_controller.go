package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	yearService "schoolku_backend/internals/features/school/academic_years/service"
	"schoolku_backend/internals/features/school/certificates/dto"
	"schoolku_backend/internals/features/school/certificates/model"
	"schoolku_backend/internals/features/school/certificates/service"
	enrollModel "schoolku_backend/internals/features/school/enrollments/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

/* ===================== ELIGIBILITY ===================== */
// GET /certificates/eligibility?student_id=&quarter_id=&type=
func (ctrl *CertificateController) Eligibility(c *fiber.Ctx) error {
	studentID, quarterID, certType, err := ctrl.parseScope(c.Query("student_id"), c.Query("quarter_id"), c.Query("type"))
	if err != nil {
		return err
	}

	res, err := ctrl.check(studentID, quarterID, certType)
	if err != nil {
		return err
	}

	return helper.Success(c, "OK", dto.EligibilityResponse{
		StudentID:   studentID,
		QuarterID:   quarterID,
		Type:        certType,
		CanGenerate: res.CanGenerate,
		Reason:      res.Reason,
		Supporting:  res.Supporting,
	})
}

/* ===================== ISSUE ===================== */
// POST /certificates — persists only when the gate passes; denial is a 403
// with the human-readable reason.
func (ctrl *CertificateController) Issue(c *fiber.Ctx) error {
	var req dto.IssueCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctrl.check(req.CertificateStudentID, req.CertificateQuarterID, req.CertificateType)
	if err != nil {
		return err
	}
	if !res.CanGenerate {
		return fiber.NewError(fiber.StatusForbidden, res.Reason)
	}

	var issuedBy *uuid.UUID
	if raw, ok := c.Locals("user_id").(string); ok {
		if id, e := uuid.Parse(raw); e == nil {
			issuedBy = &id
		}
	}

	payload := datatypes.JSONMap{}
	for k, v := range res.Supporting {
		payload[k] = v
	}

	m := model.StudentCertificateModel{
		StudentCertificateStudentID: req.CertificateStudentID,
		StudentCertificateQuarterID: req.CertificateQuarterID,
		StudentCertificateType:      req.CertificateType,
		StudentCertificatePayload:   payload,
		StudentCertificateIssuedBy:  issuedBy,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue certificate")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Certificate issued", m)
}

/* ===================== LIST ===================== */
// GET /certificates/students/:student_id
func (ctrl *CertificateController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	var rows []model.StudentCertificateModel
	if err := ctrl.DB.
		Where("student_certificate_student_id = ?", studentID).
		Order("student_certificate_issued_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list certificates")
	}
	return helper.Success(c, "OK", rows)
}

/* ===================== internals ===================== */

func (ctrl *CertificateController) parseScope(rawStudent, rawQuarter, certType string) (uuid.UUID, uuid.UUID, string, error) {
	studentID, err := uuid.Parse(rawStudent)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", fiber.NewError(fiber.StatusBadRequest, "student_id is required and must be a UUID")
	}
	quarterID, err := uuid.Parse(rawQuarter)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", fiber.NewError(fiber.StatusBadRequest, "quarter_id is required and must be a UUID")
	}
	if certType != constants.CertPerfectAttendance && certType != constants.CertHonorRoll {
		return uuid.Nil, uuid.Nil, "", fiber.NewError(fiber.StatusBadRequest, "type must be perfect_attendance or honor_roll")
	}
	return studentID, quarterID, certType, nil
}

func (ctrl *CertificateController) check(studentID, quarterID uuid.UUID, certType string) (service.EligibilityResult, error) {
	// both entities must exist before any gating
	var student studentModel.StudentModel
	if err := ctrl.DB.Where("student_id = ?", studentID).Take(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.EligibilityResult{}, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return service.EligibilityResult{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}
	quarter, err := yearService.QuarterByID(ctrl.DB, quarterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.EligibilityResult{}, fiber.NewError(fiber.StatusNotFound, "Quarter not found")
		}
		return service.EligibilityResult{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load quarter")
	}

	gate := service.NewEligibilityGate(ctrl.DB)

	switch certType {
	case constants.CertPerfectAttendance:
		res, err := gate.CheckPerfectAttendance(studentID, quarterID)
		if err != nil {
			return service.EligibilityResult{}, fiber.NewError(fiber.StatusInternalServerError, "Eligibility check failed")
		}
		return res, nil
	default: // honor_roll
		var enr enrollModel.EnrollmentModel
		if err := ctrl.DB.
			Where("enrollment_student_id = ? AND enrollment_academic_year_id = ?", studentID, quarter.QuarterAcademicYearID).
			Take(&enr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.EligibilityResult{}, fiber.NewError(fiber.StatusNotFound, "Student has no enrollment for this quarter's academic year")
			}
			return service.EligibilityResult{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollment")
		}
		res, err := gate.CheckHonorRoll(studentID, quarterID, enr.EnrollmentGradeLevel, quarter.QuarterAcademicYearID)
		if err != nil {
			return service.EligibilityResult{}, fiber.NewError(fiber.StatusInternalServerError, "Eligibility check failed")
		}
		return res, nil
	}
}
