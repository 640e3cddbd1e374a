package dto

import "github.com/cy-rus404/sms-backend/internal/app/models"

// CreateUserRequest represents the admin "add user" form.
// The field set is role-conditional: teachers carry a comma-separated
// course-name list, students carry a grade level and course IDs to enroll in.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3,max=50"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.RoleType `json:"role" binding:"required,oneof=ADMIN TEACHER STUDENT"`
	Name     string          `json:"name" binding:"required,min=2,max=100"`
	Email    string          `json:"email" binding:"required,email"`
	Phone    string          `json:"phone,omitempty"`

	// Teacher only: comma-separated course names, one course created per name
	Courses string `json:"courses,omitempty" example:"Math, Physics"`

	// Student only
	GradeLevel int     `json:"gradeLevel,omitempty" binding:"omitempty,min=1,max=12"`
	CourseIDs  []int64 `json:"courseIds,omitempty"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	GradeLevel *int    `json:"gradeLevel,omitempty"` // students only
}

// CreateUserResponse is returned after a successful user creation.
// CourseIDs lists the courses created for a new teacher, for reporting.
type CreateUserResponse struct {
	User      UserResponse `json:"user"`
	CourseIDs []int64      `json:"courseIds,omitempty"`
}

// NewUserResponse maps a user model to its response form
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
	}
}
