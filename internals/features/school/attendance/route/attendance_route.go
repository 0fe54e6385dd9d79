package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "schoolku_backend/internals/features/school/attendance/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	g := r.Group("/attendance-records")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/tardiness-check", ctrl.TardinessCheck)
	g.Patch("/:id", ctrl.Update)
}
