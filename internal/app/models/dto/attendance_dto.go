package dto

import "github.com/cy-rus404/sms-backend/internal/app/models"

// MarkAttendanceRequest records attendance for a student in a course.
// Date defaults to today when omitted.
type MarkAttendanceRequest struct {
	StudentID int64                   `json:"studentId" binding:"required,min=1"`
	CourseID  int64                   `json:"courseId" binding:"required,min=1"`
	Status    models.AttendanceStatus `json:"status" binding:"required,oneof=PRESENT ABSENT LATE"`
	Date      string                  `json:"date,omitempty" example:"2025-09-01"` // YYYY-MM-DD
}

// AttendanceResponse is a single attendance record
type AttendanceResponse struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"studentId"`
	CourseID  int64  `json:"courseId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}
