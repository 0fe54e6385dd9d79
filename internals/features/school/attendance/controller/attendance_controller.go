package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	yearService "schoolku_backend/internals/features/school/academic_years/service"
	"schoolku_backend/internals/features/school/attendance/dto"
	"schoolku_backend/internals/features/school/attendance/model"
	"schoolku_backend/internals/features/school/attendance/service"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /attendance-records
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	yearID := uuid.Nil
	if req.AttendanceRecordAcademicYearID != nil {
		yearID = *req.AttendanceRecordAcademicYearID
	} else {
		y, err := yearService.ActiveAcademicYear(c, ctrl.DB)
		if err != nil {
			return err
		}
		yearID = y.AcademicYearID
	}

	var recordedBy *uuid.UUID
	if raw, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			recordedBy = &id
		}
	}

	// one logical record per (student, schedule, date)
	var dup int64
	if err := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_student_id = ?", req.AttendanceRecordStudentID).
		Where("attendance_record_schedule_id = ?", req.AttendanceRecordScheduleID).
		Where("attendance_record_date = ?", req.AttendanceRecordDate.Format("2006-01-02")).
		Count(&dup).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing attendance")
	}
	if dup > 0 {
		return fiber.NewError(fiber.StatusConflict, "Attendance for this student, schedule and date is already recorded")
	}

	m := req.ToModel(yearID, recordedBy)

	// Tardiness rule: the 5th late in scope is stored as absent. The check
	// fails open; a lookup error never blocks the entry.
	res := service.TardinessResult{}
	converted := false
	if req.AttendanceRecordStatus == constants.AttendanceLate {
		eval := service.NewTardinessEvaluator(ctrl.DB)
		res = eval.Evaluate(service.TardinessInput{
			StudentID:      req.AttendanceRecordStudentID,
			ScheduleID:     req.AttendanceRecordScheduleID,
			AcademicYearID: yearID,
			QuarterID:      req.AttendanceRecordQuarterID,
			ExcludeDate:    &req.AttendanceRecordDate,
		})
		if res.ShouldConvert {
			m = service.ApplyConversion(m)
			converted = true
		}
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record attendance")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance recorded", dto.CreateAttendanceRecordResponse{
		Record:        m,
		Converted:     converted,
		ShouldConvert: res.ShouldConvert,
		LateCount:     res.LateCount,
		Message:       res.Message,
	})
}

/* ===================== TARDINESS CHECK (dry run) ===================== */
// GET /attendance-records/tardiness-check?student_id=&schedule_id=&quarter_id=&date=
func (ctrl *AttendanceController) TardinessCheck(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id is required and must be a UUID")
	}
	scheduleID, err := uuid.Parse(c.Query("schedule_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "schedule_id is required and must be a UUID")
	}

	y, err := yearService.ActiveAcademicYear(c, ctrl.DB)
	if err != nil {
		return err
	}

	in := service.TardinessInput{
		StudentID:      studentID,
		ScheduleID:     scheduleID,
		AcademicYearID: y.AcademicYearID,
	}
	if raw := c.Query("quarter_id"); raw != "" {
		qid, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "quarter_id is not a valid UUID")
		}
		in.QuarterID = &qid
	}
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		in.ExcludeDate = &d
	}

	eval := service.NewTardinessEvaluator(ctrl.DB)
	return helper.Success(c, "OK", eval.Evaluate(in))
}

/* ===================== UPDATE ===================== */
// PATCH /attendance-records/:id
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance record id")
	}

	var req dto.UpdateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.AttendanceRecordModel
	if err := ctrl.DB.Where("attendance_record_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance record")
	}

	updates := map[string]interface{}{}
	if req.AttendanceRecordStatus != nil {
		updates["attendance_record_status"] = *req.AttendanceRecordStatus
	}
	if req.AttendanceRecordRemarks != nil {
		updates["attendance_record_remarks"] = *req.AttendanceRecordRemarks
	}
	if len(updates) == 0 {
		return helper.Success(c, "Nothing to update", m)
	}

	if err := ctrl.DB.Model(&m).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update attendance record")
	}
	return helper.Success(c, "Attendance updated", m)
}

/* ===================== LIST ===================== */
// GET /attendance-records
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	var req dto.FilterAttendanceRecordRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	p := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.AttendanceRecordModel{})
	if req.StudentID != nil {
		q = q.Where("attendance_record_student_id = ?", *req.StudentID)
	}
	if req.ScheduleID != nil {
		q = q.Where("attendance_record_schedule_id = ?", *req.ScheduleID)
	}
	if req.QuarterID != nil {
		q = q.Where("attendance_record_quarter_id = ?", *req.QuarterID)
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "status must be present, absent, late or excused")
		}
		q = q.Where("attendance_record_status = ?", *req.Status)
	}
	if req.DateFrom != nil {
		q = q.Where("attendance_record_date >= ?", req.DateFrom.Format("2006-01-02"))
	}
	if req.DateTo != nil {
		q = q.Where("attendance_record_date <= ?", req.DateTo.Format("2006-01-02"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count attendance records")
	}

	var rows []model.AttendanceRecordModel
	if err := q.Order("attendance_record_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list attendance records")
	}

	return helper.Success(c, "OK", fiber.Map{
		"records":    rows,
		"pagination": helper.BuildPagination(p, total, len(rows)),
	})
}
