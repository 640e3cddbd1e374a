package dto

// CourseResponse represents a course with its owning teacher's name
type CourseResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Credits     int    `json:"credits"`
	TeacherID   int64  `json:"teacherId"`
	TeacherName string `json:"teacherName,omitempty"`
}
