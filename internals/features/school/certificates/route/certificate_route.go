package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certCtrl "schoolku_backend/internals/features/school/certificates/controller"
)

// CertificateUserRoutes: read-only eligibility surface.
func CertificateUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := certCtrl.NewCertificateController(db)

	g := r.Group("/certificates")
	g.Get("/eligibility", ctrl.Eligibility)
	g.Get("/students/:student_id", ctrl.ListByStudent)
}

// CertificateAdminRoutes: issuance requires the admin group.
func CertificateAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := certCtrl.NewCertificateController(db)

	g := r.Group("/certificates")
	g.Post("/", ctrl.Issue)
}
