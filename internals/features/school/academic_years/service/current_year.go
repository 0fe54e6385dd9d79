package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academic_years/model"
)

const LocalsActiveAcademicYear = "active_academic_year"

var ErrNoAcademicYear = errors.New("no academic year configured")

// Resolve returns the active academic year: the row flagged is_current,
// falling back to the most recent year by start date. Resolved once per
// request (see UseActiveAcademicYear), never re-queried by evaluators.
func Resolve(db *gorm.DB) (*model.AcademicYearModel, error) {
	var y model.AcademicYearModel
	err := db.
		Where("academic_year_is_current = ?", true).
		Take(&y).Error
	if err == nil {
		return &y, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.
		Order("academic_year_start_date DESC").
		First(&y).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoAcademicYear
	}
	if err != nil {
		return nil, err
	}
	return &y, nil
}

// UseActiveAcademicYear resolves the active year up front and stores it in
// locals so downstream handlers share one answer.
func UseActiveAcademicYear(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		y, err := Resolve(db)
		if err != nil {
			if errors.Is(err, ErrNoAcademicYear) {
				return fiber.NewError(fiber.StatusNotFound, "No academic year configured")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve academic year")
		}
		c.Locals(LocalsActiveAcademicYear, y)
		return c.Next()
	}
}

// ActiveAcademicYear reads the resolved year back out of locals. An explicit
// ?academic_year_id= query param wins over the resolved default.
func ActiveAcademicYear(c *fiber.Ctx, db *gorm.DB) (*model.AcademicYearModel, error) {
	if raw := c.Query("academic_year_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "academic_year_id is not a valid UUID")
		}
		var y model.AcademicYearModel
		if err := db.Where("academic_year_id = ?", id).Take(&y).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Academic year not found")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load academic year")
		}
		return &y, nil
	}

	if y, ok := c.Locals(LocalsActiveAcademicYear).(*model.AcademicYearModel); ok && y != nil {
		return y, nil
	}

	y, err := Resolve(db)
	if err != nil {
		if errors.Is(err, ErrNoAcademicYear) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No academic year configured")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve academic year")
	}
	return y, nil
}

// QuarterByID loads one quarter row.
func QuarterByID(db *gorm.DB, id uuid.UUID) (*model.QuarterModel, error) {
	var q model.QuarterModel
	if err := db.Where("quarter_id = ?", id).Take(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// QuartersOfYear lists the quarters of one academic year in sequence order.
func QuartersOfYear(db *gorm.DB, yearID uuid.UUID) ([]model.QuarterModel, error) {
	var qs []model.QuarterModel
	if err := db.
		Where("quarter_academic_year_id = ?", yearID).
		Order("quarter_sequence ASC").
		Find(&qs).Error; err != nil {
		return nil, err
	}
	return qs, nil
}
