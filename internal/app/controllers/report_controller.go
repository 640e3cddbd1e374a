package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cy-rus404/sms-backend/internal/app/models/dto"
	"github.com/cy-rus404/sms-backend/internal/app/services"
	"github.com/cy-rus404/sms-backend/internal/middleware"
)

// ReportController handles student report endpoints
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetStudentReport returns a student's full report as JSON
// @Summary Get student report
// @Description Aggregates a student's courses, grades, attendance and timetable into one report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student user ID, or \"me\" for the authenticated student"
// @Success 200 {object} dto.APIResponse{data=dto.StudentReportResponse} "Report retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/report [get]
func (c *ReportController) GetStudentReport(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	report, err := c.reportService.StudentReport(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: report})
}

// ExportStudentReport returns the report as a downloadable plain-text file
// @Summary Export student report
// @Description Renders the student report as plain text, served as a file download
// @Tags reports
// @Produce plain
// @Security BearerAuth
// @Param id path string true "Student user ID, or \"me\" for the authenticated student"
// @Success 200 {string} string "Report file"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/report/export [get]
func (c *ReportController) ExportStudentReport(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	report, err := c.reportService.StudentReport(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("report_%d.txt", report.StudentID)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(c.reportService.RenderText(report)))
}
