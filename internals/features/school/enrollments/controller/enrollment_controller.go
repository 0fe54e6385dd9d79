package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/enrollments/dto"
	"schoolku_backend/internals/features/school/enrollments/model"
	helper "schoolku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /enrollments
func (ctrl *EnrollmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// one enrollment per (student, year) in correct operation
	var existing model.EnrollmentModel
	err := ctrl.DB.
		Where("enrollment_student_id = ? AND enrollment_academic_year_id = ?",
			req.EnrollmentStudentID, req.EnrollmentAcademicYearID).
		Take(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict, "Student is already enrolled for this academic year")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing enrollment")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create enrollment")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment created", m)
}

/* ===================== UPDATE STATUS ===================== */
// PATCH /enrollments/:id/status
func (ctrl *EnrollmentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid enrollment id")
	}

	var req dto.UpdateEnrollmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ?", id).
		Update("enrollment_status", req.EnrollmentStatus)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update enrollment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.Success(c, "Enrollment updated", fiber.Map{"enrollment_id": id, "enrollment_status": req.EnrollmentStatus})
}

/* ===================== SECTION ROSTER ===================== */
// GET /enrollments/sections/:section_id
func (ctrl *EnrollmentController) ListBySection(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("section_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section id")
	}

	q := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_section_id = ?", sectionID)
	if c.Query("status", constants.EnrollmentEnrolled) != "all" {
		q = q.Where("enrollment_status = ?", c.Query("status", constants.EnrollmentEnrolled))
	}

	var rows []model.EnrollmentModel
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list enrollments")
	}
	return helper.Success(c, "OK", rows)
}
