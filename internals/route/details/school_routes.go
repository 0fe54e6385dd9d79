package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearRoute "schoolku_backend/internals/features/school/academic_years/route"
	attendanceRoute "schoolku_backend/internals/features/school/attendance/route"
	reportRoute "schoolku_backend/internals/features/school/attendance_reports/route"
	certRoute "schoolku_backend/internals/features/school/certificates/route"
	classRoute "schoolku_backend/internals/features/school/classes/route"
	enrollRoute "schoolku_backend/internals/features/school/enrollments/route"
	gradeRoute "schoolku_backend/internals/features/school/grades/route"
	promoRoute "schoolku_backend/internals/features/school/promotions/route"
)

// PublicRoutes: read-only reference data, no token required.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	yearRoute.AcademicYearRoutes(r, db)
	classRoute.ClassPublicRoutes(r, db)
}

// UserRoutes: teachers and staff (any valid token).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	attendanceRoute.AttendanceRoutes(r, db)
	reportRoute.AttendanceReportRoutes(r, db)
	gradeRoute.GradeRoutes(r, db)
	promoRoute.PromotionRoutes(r, db)
	certRoute.CertificateUserRoutes(r, db)
}

// AdminRoutes: registrar-level writes.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	classRoute.ClassAdminRoutes(r, db)
	enrollRoute.EnrollmentRoutes(r, db)
	certRoute.CertificateAdminRoutes(r, db)
}
