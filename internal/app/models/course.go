package models

// Course represents a course owned by exactly one teacher.
type Course struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	TeacherID int64  `json:"teacherId" db:"teacher_id"`
	Credits   int    `json:"credits" db:"credits"`

	// Relations (populated when needed)
	Teacher *User `json:"teacher,omitempty"`
}

// CourseWithTeacher pairs a course with its owning teacher's name,
// used by the student view and the report. Grade is set once the
// owning teacher has graded the enrollment.
type CourseWithTeacher struct {
	Course      `json:"course"`
	TeacherName string   `json:"teacherName"`
	Grade       *float64 `json:"grade,omitempty"`
}
