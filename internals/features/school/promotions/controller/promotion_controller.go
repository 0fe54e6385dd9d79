package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	yearService "schoolku_backend/internals/features/school/academic_years/service"
	classModel "schoolku_backend/internals/features/school/classes/model"
	enrollModel "schoolku_backend/internals/features/school/enrollments/model"
	gradeModel "schoolku_backend/internals/features/school/grades/model"
	"schoolku_backend/internals/features/school/promotions/service"
	helper "schoolku_backend/internals/helpers"
)

type PromotionController struct {
	DB *gorm.DB
}

func NewPromotionController(db *gorm.DB) *PromotionController {
	return &PromotionController{DB: db}
}

/* ===================== STUDENT PROMOTION ===================== */
// GET /promotions/students/:student_id?academic_year_id=&honor_scheme=
func (ctrl *PromotionController) StudentPromotion(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	y, err := yearService.ActiveAcademicYear(c, ctrl.DB)
	if err != nil {
		return err
	}

	var enr enrollModel.EnrollmentModel
	if err := ctrl.DB.
		Where("enrollment_student_id = ? AND enrollment_academic_year_id = ?", studentID, y.AcademicYearID).
		Take(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student has no enrollment for this academic year")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollment")
	}

	subjects, err := ctrl.subjectSet(enr.EnrollmentGradeLevel, studentID, y.AcademicYearID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve subject set")
	}

	var grades []gradeModel.GradeRecordModel
	if err := ctrl.DB.
		Where("grade_record_student_id = ? AND grade_record_academic_year_id = ?", studentID, y.AcademicYearID).
		Find(&grades).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load grades")
	}

	bySubject := make(map[uuid.UUID][]float64)
	for _, g := range grades {
		bySubject[g.GradeRecordSubjectID] = append(bySubject[g.GradeRecordSubjectID], g.GradeRecordGrade)
	}

	in := service.PromotionInput{}
	for _, s := range subjects {
		in.Subjects = append(in.Subjects, service.SubjectGrades{
			SubjectID:   s.SubjectID,
			SubjectName: s.SubjectName,
			Grades:      bySubject[s.SubjectID],
		})
	}

	// simple-ratio attendance for the promotion view
	var present, total int64
	if err := ctrl.DB.Table("attendance_records").
		Where("attendance_record_student_id = ? AND attendance_record_academic_year_id = ?", studentID, y.AcademicYearID).
		Where("attendance_record_deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count attendance")
	}
	if err := ctrl.DB.Table("attendance_records").
		Where("attendance_record_student_id = ? AND attendance_record_academic_year_id = ?", studentID, y.AcademicYearID).
		Where("attendance_record_deleted_at IS NULL").
		Where("attendance_record_status = ?", constants.AttendancePresent).
		Count(&present).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count attendance")
	}
	in.PresentRows = int(present)
	in.TotalRows = int(total)

	scheme := service.SchemeByName(c.Query("honor_scheme"))
	res := service.EvaluatePromotion(in, scheme)

	return helper.Success(c, "OK", fiber.Map{
		"student_id":       studentID,
		"academic_year_id": y.AcademicYearID,
		"honor_scheme":     scheme.Name,
		"result":           res,
	})
}

/* ===================== SECTION READINESS ===================== */
// GET /promotions/sections/:section_id/readiness
func (ctrl *PromotionController) SectionReadiness(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("section_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section id")
	}

	var section classModel.SectionModel
	if err := ctrl.DB.Where("section_id = ?", sectionID).Take(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load section")
	}

	quarters, err := yearService.QuartersOfYear(ctrl.DB, section.SectionAcademicYearID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load quarters")
	}

	var students []uuid.UUID
	if err := ctrl.DB.Model(&enrollModel.EnrollmentModel{}).
		Where("enrollment_section_id = ? AND enrollment_status = ?", sectionID, constants.EnrollmentEnrolled).
		Pluck("enrollment_student_id", &students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load roster")
	}

	subjects, err := ctrl.subjectSet(section.SectionGradeLevel, uuid.Nil, section.SectionAcademicYearID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve subject set")
	}

	counts := make(map[uuid.UUID]int, len(students))
	if len(students) > 0 {
		type cntRow struct {
			StudentID uuid.UUID `gorm:"column:grade_record_student_id"`
			N         int       `gorm:"column:n"`
		}
		var rows []cntRow
		if err := ctrl.DB.Table("grade_records").
			Select("grade_record_student_id, COUNT(*) AS n").
			Where("grade_record_student_id IN ?", students).
			Where("grade_record_academic_year_id = ?", section.SectionAcademicYearID).
			Where("grade_record_deleted_at IS NULL").
			Group("grade_record_student_id").
			Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to count grades")
		}
		for _, r := range rows {
			counts[r.StudentID] = r.N
		}
	}

	res := service.EvaluateSectionReadiness(counts, len(students), len(subjects), len(quarters))
	return helper.Success(c, "OK", fiber.Map{
		"section_id": sectionID,
		"readiness":  res,
	})
}

/* ===================== internals ===================== */

type subjectRow struct {
	SubjectID   uuid.UUID `gorm:"column:subject_id"`
	SubjectName string    `gorm:"column:subject_name"`
}

// subjectSet resolves the expected subject list for a grade level from the
// curriculum pivot, falling back to subjects actually graded in the year.
func (ctrl *PromotionController) subjectSet(gradeLevel int, studentID, yearID uuid.UUID) ([]subjectRow, error) {
	var rows []subjectRow
	err := ctrl.DB.Table("curriculum_subjects").
		Select("subjects.subject_id, subjects.subject_name").
		Joins("JOIN subjects ON subjects.subject_id = curriculum_subjects.curriculum_subject_subject_id").
		Where("curriculum_subject_grade_level = ?", gradeLevel).
		Order("subjects.subject_code ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return rows, nil
	}

	q := ctrl.DB.Table("grade_records").
		Select("DISTINCT subjects.subject_id, subjects.subject_name").
		Joins("JOIN subjects ON subjects.subject_id = grade_records.grade_record_subject_id").
		Where("grade_record_academic_year_id = ?", yearID).
		Where("grade_records.grade_record_deleted_at IS NULL")
	if studentID != uuid.Nil {
		q = q.Where("grade_record_student_id = ?", studentID)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	log.Printf("[AUDIT] curriculum pivot empty for grade_level=%d; subject set inferred from %d graded subjects", gradeLevel, len(rows))
	return rows, nil
}
