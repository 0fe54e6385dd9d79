package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	promoCtrl "schoolku_backend/internals/features/school/promotions/controller"
)

func PromotionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := promoCtrl.NewPromotionController(db)

	g := r.Group("/promotions")
	g.Get("/students/:student_id", ctrl.StudentPromotion)
	g.Get("/sections/:section_id/readiness", ctrl.SectionReadiness)
}
