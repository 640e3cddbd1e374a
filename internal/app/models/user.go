package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"jdoe"`                   // Login name, unique
	Password  string    `json:"-" db:"password"`                                         // Hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"STUDENT"`                        // User's role (ADMIN, TEACHER or STUDENT)
	Name      string    `json:"name" db:"name" example:"John Doe"`                       // Full name
	Email     string    `json:"email" db:"email" example:"jdoe@school.edu"`              // Email address, unique
	Phone     *string   `json:"phone,omitempty" db:"phone" example:"+12025550147"`       // Phone number (nullable)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}

// Student defines the student profile based on the 'students' table.
// Every student has exactly one user account.
type Student struct {
	ID         int64 `json:"id" db:"id" example:"1"`                 // Unique identifier for the student record
	UserID     int64 `json:"userId" db:"user_id" example:"5"`        // ID of the associated user account
	GradeLevel int   `json:"gradeLevel" db:"grade_level" example:"9"` // School grade level (1..12)

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Associated user information
}
