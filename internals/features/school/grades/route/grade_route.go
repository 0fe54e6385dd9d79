package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeCtrl "schoolku_backend/internals/features/school/grades/controller"
)

func GradeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeCtrl.NewGradeController(db)

	g := r.Group("/grade-records")
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Get("/students/:student_id", ctrl.ListByStudent)
}
