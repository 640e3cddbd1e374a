package models

import "time"

// Attendance records a student's presence in a course on a given day.
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	CourseID  int64            `json:"courseId" db:"course_id"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status"`
}
