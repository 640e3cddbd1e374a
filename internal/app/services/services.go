package services

import (
	"context"
	"time"

	"github.com/cy-rus404/sms-backend/internal/app/models"
)

// Services defined in this package:
// - AuthService: login gate and refresh token handling
// - UserService: admin user management, teacher/student registration
// - CourseService: course listing and lookup
// - EnrollmentService: the student/course enrollment relation
// - AttendanceService: per-course attendance records
// - TimetableService: weekly course schedule
// - ReportService: per-student report assembly and text rendering

// The store interfaces below are what the services need from the
// repositories package. Declaring them on the consumer side keeps the
// services testable against fakes.

// UserStore is the persistence surface for users and student profiles
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	CreateTeacherWithCourses(ctx context.Context, user *models.User, courseNames []string) ([]int64, error)
	CreateStudentWithEnrollments(ctx context.Context, user *models.User, gradeLevel int, courseIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the persistence surface for courses
type CourseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.CourseWithTeacher, error)
	GetByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error)
}

// EnrollmentStore is the persistence surface for the enrollment relation
type EnrollmentStore interface {
	Enroll(ctx context.Context, studentID, courseID int64) error
	AssignGrade(ctx context.Context, studentID, courseID int64, grade float64) error
	GetStudentsForTeacher(ctx context.Context, teacherID int64) ([]*models.Student, error)
	GetCoursesForStudent(ctx context.Context, studentID int64) ([]*models.CourseWithTeacher, error)
}

// AttendanceStore is the persistence surface for attendance records
type AttendanceStore interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	GetByCourse(ctx context.Context, courseID int64) ([]*models.Attendance, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error)
}

// TimetableStore is the persistence surface for timetable slots
type TimetableStore interface {
	Create(ctx context.Context, slot *models.TimetableSlot) error
	GetByCourse(ctx context.Context, courseID int64) ([]*models.TimetableSlot, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.TimetableSlot, error)
}

// TokenStore is the persistence surface for refresh tokens
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}
