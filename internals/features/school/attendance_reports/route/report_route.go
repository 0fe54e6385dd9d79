package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtrl "schoolku_backend/internals/features/school/attendance_reports/controller"
)

func AttendanceReportRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportCtrl.NewReportController(db)

	g := r.Group("/attendance-reports")
	g.Get("/students/:student_id/monthly", ctrl.StudentMonthly)
	g.Get("/students/:student_id/quarterly", ctrl.StudentQuarterly)
	g.Get("/sections/:section_id/monthly", ctrl.SectionMonthly)
}
