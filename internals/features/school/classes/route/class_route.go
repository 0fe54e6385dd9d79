package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "schoolku_backend/internals/features/school/classes/controller"
)

// ClassPublicRoutes: reference-data reads.
func ClassPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassController(db)

	r.Get("/sections", ctrl.ListSections)
	r.Get("/subjects", ctrl.ListSubjects)
	r.Get("/class-schedules", ctrl.ListSchedules)
}

// ClassAdminRoutes: schedule maintenance.
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassController(db)

	r.Post("/class-schedules", ctrl.CreateSchedule)
}
