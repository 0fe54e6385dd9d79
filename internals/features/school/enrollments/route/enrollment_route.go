package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollCtrl "schoolku_backend/internals/features/school/enrollments/controller"
)

func EnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollCtrl.NewEnrollmentController(db)

	g := r.Group("/enrollments")
	g.Post("/", ctrl.Create)
	g.Patch("/:id/status", ctrl.UpdateStatus)
	g.Get("/sections/:section_id", ctrl.ListBySection)
}
