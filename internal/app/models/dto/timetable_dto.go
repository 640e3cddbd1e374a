package dto

import "github.com/cy-rus404/sms-backend/internal/app/models"

// AddTimetableSlotRequest adds a weekly schedule entry for a course
type AddTimetableSlotRequest struct {
	CourseID  int64          `json:"courseId" binding:"required,min=1"`
	Day       models.Weekday `json:"day" binding:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY"`
	StartTime string         `json:"startTime" binding:"required" example:"09:00"`
	EndTime   string         `json:"endTime" binding:"required" example:"10:30"`
}
