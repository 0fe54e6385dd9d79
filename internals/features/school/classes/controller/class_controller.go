package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/classes/dto"
	"schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* ===================== SECTIONS ===================== */
// GET /sections
func (ctrl *ClassController) ListSections(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SectionModel{})
	if raw := c.Query("academic_year_id"); raw != "" {
		yearID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "academic_year_id is not a valid UUID")
		}
		q = q.Where("section_academic_year_id = ?", yearID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count sections")
	}

	var sections []model.SectionModel
	if err := q.Order("section_grade_level ASC, section_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&sections).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list sections")
	}

	return helper.Success(c, "OK", fiber.Map{
		"sections":   sections,
		"pagination": helper.BuildPagination(p, total, len(sections)),
	})
}

/* ===================== SUBJECTS ===================== */
// GET /subjects
func (ctrl *ClassController) ListSubjects(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	if err := ctrl.DB.Order("subject_code ASC").Find(&subjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list subjects")
	}
	return helper.Success(c, "OK", subjects)
}

/* ===================== SCHEDULES ===================== */
// GET /class-schedules
func (ctrl *ClassController) ListSchedules(c *fiber.Ctx) error {
	var req dto.FilterClassScheduleRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	q := ctrl.DB.Model(&model.ClassScheduleModel{})
	if req.SectionID != nil {
		q = q.Where("class_schedule_section_id = ?", *req.SectionID)
	}
	if req.SubjectID != nil {
		q = q.Where("class_schedule_subject_id = ?", *req.SubjectID)
	}

	var schedules []model.ClassScheduleModel
	if err := q.Order("class_schedule_start_time ASC").Find(&schedules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list schedules")
	}
	return helper.Success(c, "OK", schedules)
}

// POST /class-schedules
func (ctrl *ClassController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.CreateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Schedule created", m)
}
