package dto

import "github.com/cy-rus404/sms-backend/internal/app/models"

// EnrollRequest enrolls an existing student into a course
type EnrollRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
	CourseID  int64 `json:"courseId" binding:"required,min=1"`
}

// AssignGradeRequest sets the grade on an existing enrollment
type AssignGradeRequest struct {
	StudentID int64   `json:"studentId" binding:"required,min=1"`
	CourseID  int64   `json:"courseId" binding:"required,min=1"`
	Grade     float64 `json:"grade" binding:"min=0,max=100"`
}

// EnrolledStudentResponse is one row of a teacher's "Students" tab
type EnrolledStudentResponse struct {
	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	GradeLevel int    `json:"gradeLevel"`
}

// StudentCourseResponse is one row of the student-facing course list
type StudentCourseResponse struct {
	CourseID    int64    `json:"courseId"`
	CourseName  string   `json:"courseName"`
	Credits     int      `json:"credits"`
	TeacherName string   `json:"teacherName"`
	Grade       *float64 `json:"grade,omitempty"`
}

// NewEnrolledStudentResponse maps a student with its user to a response row
func NewEnrolledStudentResponse(student *models.Student) EnrolledStudentResponse {
	resp := EnrolledStudentResponse{
		UserID:     student.UserID,
		GradeLevel: student.GradeLevel,
	}
	if student.User != nil {
		resp.Username = student.User.Username
		resp.Name = student.User.Name
		resp.Email = student.User.Email
	}
	return resp
}
