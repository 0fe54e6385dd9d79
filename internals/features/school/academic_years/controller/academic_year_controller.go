package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academic_years/model"
	"schoolku_backend/internals/features/school/academic_years/service"
	helper "schoolku_backend/internals/helpers"
)

type AcademicYearController struct {
	DB *gorm.DB
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{DB: db}
}

/* ===================== LIST ===================== */
// GET /academic-years
func (ctrl *AcademicYearController) List(c *fiber.Ctx) error {
	var years []model.AcademicYearModel
	if err := ctrl.DB.Order("academic_year_start_date DESC").Find(&years).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list academic years")
	}
	return helper.Success(c, "OK", years)
}

/* ===================== CURRENT ===================== */
// GET /academic-years/current
func (ctrl *AcademicYearController) Current(c *fiber.Ctx) error {
	y, err := service.ActiveAcademicYear(c, ctrl.DB)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", y)
}

/* ===================== QUARTERS ===================== */
// GET /academic-years/:id/quarters
func (ctrl *AcademicYearController) Quarters(c *fiber.Ctx) error {
	yearID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid academic year id")
	}
	qs, err := service.QuartersOfYear(ctrl.DB, yearID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list quarters")
	}
	return helper.Success(c, "OK", qs)
}
