package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/app/models/dto"
	"github.com/cy-rus404/sms-backend/internal/app/services"
	"github.com/cy-rus404/sms-backend/internal/middleware"
)

// TimetableController handles weekly schedule endpoints
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
	}
}

// AddSlot adds a weekly schedule entry for a course
// @Summary Add a timetable slot
// @Description Adds a weekday time slot to a course's weekly schedule
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddTimetableSlotRequest true "Slot information"
// @Success 201 {object} dto.APIResponse{data=models.TimetableSlot} "Slot added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable [post]
func (c *TimetableController) AddSlot(ctx *gin.Context) {
	var req dto.AddTimetableSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid timetable data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	slot := &models.TimetableSlot{
		CourseID:  req.CourseID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := c.timetableService.AddSlot(ctx, slot); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: slot})
}

// GetSlotsForCourse lists a course's weekly schedule
// @Summary List course timetable
// @Tags timetable
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.TimetableSlot} "Slots retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/timetable [get]
func (c *TimetableController) GetSlotsForCourse(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	slots, err := c.timetableService.SlotsForCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: slots})
}
