package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/app/models/dto"
	"github.com/cy-rus404/sms-backend/internal/app/services"
	"github.com/cy-rus404/sms-backend/internal/middleware"
)

// attendanceDateLayout is the accepted attendance date format
const attendanceDateLayout = "2006-01-02"

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// MarkAttendance records a student's presence in a course
// @Summary Mark attendance
// @Description Records a student as present, absent or late in a course owned by the acting teacher. The date defaults to today.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance information"
// @Success 201 {object} dto.APIResponse{data=dto.AttendanceResponse} "Attendance recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	attendance := &models.Attendance{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    req.Status,
	}
	if req.Date != "" {
		date, err := time.Parse(attendanceDateLayout, req.Date)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance date")
			errorDetail = errorDetail.WithField("date").WithDetails("Date must be YYYY-MM-DD")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		attendance.Date = date
	}

	teacherID := ctx.GetInt64("userID")
	if err := c.attendanceService.MarkAttendance(ctx, teacherID, attendance); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.AttendanceResponse{
			ID:        attendance.ID,
			StudentID: attendance.StudentID,
			CourseID:  attendance.CourseID,
			Date:      attendance.Date.Format(attendanceDateLayout),
			Status:    string(attendance.Status),
		},
	})
}

// GetAttendanceForCourse lists attendance records for a course
// @Summary List course attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceResponse} "Attendance retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/attendance [get]
func (c *AttendanceController) GetAttendanceForCourse(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	records, err := c.attendanceService.AttendanceForCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, dto.AttendanceResponse{
			ID:        record.ID,
			StudentID: record.StudentID,
			CourseID:  record.CourseID,
			Date:      record.Date.Format(attendanceDateLayout),
			Status:    string(record.Status),
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
