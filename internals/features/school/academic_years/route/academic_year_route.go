package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearCtrl "schoolku_backend/internals/features/school/academic_years/controller"
)

func AcademicYearRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := yearCtrl.NewAcademicYearController(db)

	g := r.Group("/academic-years")
	g.Get("/", ctrl.List)
	g.Get("/current", ctrl.Current)
	g.Get("/:id/quarters", ctrl.Quarters)
}
