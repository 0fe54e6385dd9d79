package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	yearService "schoolku_backend/internals/features/school/academic_years/service"
	"schoolku_backend/internals/features/school/grades/dto"
	"schoolku_backend/internals/features/school/grades/model"
	helper "schoolku_backend/internals/helpers"
)

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /grade-records
func (ctrl *GradeController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	yearID := uuid.Nil
	if req.GradeRecordAcademicYearID != nil {
		yearID = *req.GradeRecordAcademicYearID
	} else {
		y, err := yearService.ActiveAcademicYear(c, ctrl.DB)
		if err != nil {
			return err
		}
		yearID = y.AcademicYearID
	}

	// one grade per (student, subject, quarter)
	var dup int64
	if err := ctrl.DB.Model(&model.GradeRecordModel{}).
		Where("grade_record_student_id = ?", req.GradeRecordStudentID).
		Where("grade_record_subject_id = ?", req.GradeRecordSubjectID).
		Where("grade_record_quarter_id = ?", req.GradeRecordQuarterID).
		Count(&dup).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing grade")
	}
	if dup > 0 {
		return fiber.NewError(fiber.StatusConflict, "Grade for this student, subject and quarter already exists")
	}

	var recordedBy *uuid.UUID
	if raw, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			recordedBy = &id
		}
	}

	m := req.ToModel(yearID, recordedBy)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record grade")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grade recorded", m)
}

/* ===================== UPDATE ===================== */
// PATCH /grade-records/:id
func (ctrl *GradeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid grade record id")
	}

	var req dto.UpdateGradeRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.GradeRecordModel
	if err := ctrl.DB.Where("grade_record_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Grade record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load grade record")
	}

	if err := ctrl.DB.Model(&m).Update("grade_record_grade", req.GradeRecordGrade).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update grade")
	}
	return helper.Success(c, "Grade updated", m)
}

/* ===================== LIST BY STUDENT ===================== */
// GET /grade-records/students/:student_id?quarter_id=
func (ctrl *GradeController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	q := ctrl.DB.Model(&model.GradeRecordModel{}).
		Where("grade_record_student_id = ?", studentID)
	if raw := c.Query("quarter_id"); raw != "" {
		qid, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "quarter_id is not a valid UUID")
		}
		q = q.Where("grade_record_quarter_id = ?", qid)
	}

	var rows []model.GradeRecordModel
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list grades")
	}
	return helper.Success(c, "OK", rows)
}
