package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	yearService "schoolku_backend/internals/features/school/academic_years/service"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	"schoolku_backend/internals/features/school/attendance_reports/dto"
	"schoolku_backend/internals/features/school/attendance_reports/service"
	classModel "schoolku_backend/internals/features/school/classes/model"
	enrollModel "schoolku_backend/internals/features/school/enrollments/model"
	helper "schoolku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* ===================== STUDENT MONTHLY ===================== */
// GET /attendance-reports/students/:student_id/monthly?year=&month=
func (ctrl *ReportController) StudentMonthly(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	year, month, err := parseYearMonth(c)
	if err != nil {
		return err
	}

	y, err := yearService.ActiveAcademicYear(c, ctrl.DB)
	if err != nil {
		return err
	}

	schedules, err := ctrl.schedulesForStudent(studentID, y.AcademicYearID)
	if err != nil {
		return err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := ctrl.studentRecords(studentID, y.AcademicYearID, from, to)
	if err != nil {
		return err
	}

	days := service.BuildDailyStatuses(schedules, records, from, to)
	return helper.Success(c, "OK", dto.StudentMonthlyReport{
		StudentID: studentID,
		Year:      year,
		Month:     month,
		Days:      days,
		Summary:   service.Summarize(days),
	})
}

/* ===================== STUDENT QUARTERLY ===================== */
// GET /attendance-reports/students/:student_id/quarterly?quarter_id=
func (ctrl *ReportController) StudentQuarterly(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	quarterID, err := uuid.Parse(c.Query("quarter_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "quarter_id is required and must be a UUID")
	}

	quarter, err := yearService.QuarterByID(ctrl.DB, quarterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quarter not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load quarter")
	}

	schedules, err := ctrl.schedulesForStudent(studentID, quarter.QuarterAcademicYearID)
	if err != nil {
		return err
	}

	records, err := ctrl.studentRecords(studentID, quarter.QuarterAcademicYearID, quarter.QuarterStartDate, quarter.QuarterEndDate)
	if err != nil {
		return err
	}

	days := service.BuildDailyStatuses(schedules, records, quarter.QuarterStartDate, quarter.QuarterEndDate)
	return helper.Success(c, "OK", dto.StudentQuarterlyReport{
		StudentID: studentID,
		QuarterID: quarterID,
		Months:    service.BucketByMonth(days),
		Summary:   service.Summarize(days),
	})
}

/* ===================== SECTION MONTHLY ===================== */
// GET /attendance-reports/sections/:section_id/monthly?year=&month=
func (ctrl *ReportController) SectionMonthly(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("section_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section id")
	}
	year, month, err := parseYearMonth(c)
	if err != nil {
		return err
	}

	y, err := yearService.ActiveAcademicYear(c, ctrl.DB)
	if err != nil {
		return err
	}

	// roster: enrolled students with names
	type rosterRow struct {
		StudentID uuid.UUID `gorm:"column:enrollment_student_id"`
		FirstName string    `gorm:"column:student_first_name"`
		LastName  string    `gorm:"column:student_last_name"`
	}
	var roster []rosterRow
	if err := ctrl.DB.Table("enrollments").
		Select("enrollment_student_id, student_first_name, student_last_name").
		Joins("JOIN students ON students.student_id = enrollments.enrollment_student_id").
		Where("enrollment_section_id = ? AND enrollment_status = ?", sectionID, constants.EnrollmentEnrolled).
		Where("enrollment_academic_year_id = ?", y.AcademicYearID).
		Order("student_last_name ASC, student_first_name ASC").
		Scan(&roster).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load section roster")
	}

	var schedules []classModel.ClassScheduleModel
	if err := ctrl.DB.
		Where("class_schedule_section_id = ? AND class_schedule_academic_year_id = ?", sectionID, y.AcademicYearID).
		Find(&schedules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load section schedules")
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	studentIDs := make([]uuid.UUID, 0, len(roster))
	for _, r := range roster {
		studentIDs = append(studentIDs, r.StudentID)
	}

	var records []attendanceModel.AttendanceRecordModel
	if len(studentIDs) > 0 {
		if err := ctrl.DB.
			Where("attendance_record_student_id IN ?", studentIDs).
			Where("attendance_record_academic_year_id = ?", y.AcademicYearID).
			Where("attendance_record_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
			Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance records")
		}
	}

	byStudent := make(map[uuid.UUID][]attendanceModel.AttendanceRecordModel)
	for _, r := range records {
		byStudent[r.AttendanceRecordStudentID] = append(byStudent[r.AttendanceRecordStudentID], r)
	}

	rows := make([]dto.SectionStudentRow, 0, len(roster))
	for _, r := range roster {
		recs := byStudent[r.StudentID]
		days := service.BuildDailyStatuses(schedules, recs, from, to)
		rows = append(rows, dto.SectionStudentRow{
			StudentID:   r.StudentID,
			StudentName: r.FirstName + " " + r.LastName,
			Days:        days,
			Summary:     service.Summarize(days),
			Counts:      service.CountStatuses(recs),
		})
	}

	return helper.Success(c, "OK", dto.SectionMonthlyReport{
		SectionID: sectionID,
		Year:      year,
		Month:     month,
		Students:  rows,
	})
}

/* ===================== internals ===================== */

func (ctrl *ReportController) schedulesForStudent(studentID, yearID uuid.UUID) ([]classModel.ClassScheduleModel, error) {
	var enr enrollModel.EnrollmentModel
	if err := ctrl.DB.
		Where("enrollment_student_id = ? AND enrollment_academic_year_id = ?", studentID, yearID).
		Take(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student has no enrollment for this academic year")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load enrollment")
	}

	var schedules []classModel.ClassScheduleModel
	if err := ctrl.DB.
		Where("class_schedule_section_id = ? AND class_schedule_academic_year_id = ?", enr.EnrollmentSectionID, yearID).
		Find(&schedules).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load schedules")
	}
	return schedules, nil
}

func (ctrl *ReportController) studentRecords(studentID, yearID uuid.UUID, from, to time.Time) ([]attendanceModel.AttendanceRecordModel, error) {
	var records []attendanceModel.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_record_student_id = ?", studentID).
		Where("attendance_record_academic_year_id = ?", yearID).
		Where("attendance_record_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Find(&records).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance records")
	}
	return records, nil
}

func parseYearMonth(c *fiber.Ctx) (int, int, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "year is required (e.g. 2025)")
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "month is required (1-12)")
	}
	return year, month, nil
}
