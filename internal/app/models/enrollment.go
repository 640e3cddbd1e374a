package models

import "time"

// Enrollment is a (student, course) membership record.
// The pair is unique; the grade is set later by the owning teacher.
type Enrollment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"` // users.id of the student
	CourseID  int64     `json:"courseId" db:"course_id"`
	Grade     *float64  `json:"grade,omitempty" db:"grade"` // 0..100, nullable until assigned
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
