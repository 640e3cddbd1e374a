package models

// TimetableSlot is a weekly schedule entry for a course.
type TimetableSlot struct {
	ID        int64   `json:"id" db:"id"`
	CourseID  int64   `json:"courseId" db:"course_id"`
	Day       Weekday `json:"day" db:"day"`
	StartTime string  `json:"startTime" db:"start_time"` // HH:MM, 24h clock
	EndTime   string  `json:"endTime" db:"end_time"`
}
