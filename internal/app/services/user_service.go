package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
	"github.com/cy-rus404/sms-backend/internal/pkg/auth"
	"github.com/cy-rus404/sms-backend/internal/pkg/validation"
)

// Common user errors
var (
	ErrUserValidation = errors.New("user validation failed")
)

// AddTeacherParams carries the fields of a teacher registration
type AddTeacherParams struct {
	Username    string
	Password    string
	Name        string
	Email       string
	Phone       string
	CourseNames []string
}

// AddStudentParams carries the fields of a student registration
type AddStudentParams struct {
	Username   string
	Password   string
	Name       string
	Email      string
	Phone      string
	GradeLevel int
	CourseIDs  []int64
}

// AddAdminParams carries the fields of an admin registration
type AddAdminParams struct {
	Username string
	Password string
	Name     string
	Email    string
	Phone    string
}

// UserService handles admin-driven user management
type UserService interface {
	// AddTeacher creates the teacher account plus one course per name,
	// owned by the new teacher. Returns the user and the created course IDs.
	AddTeacher(ctx context.Context, params AddTeacherParams) (*models.User, []int64, error)
	// AddStudent creates the student account, profile and enrollments in one
	// shot. An unknown course ID fails the whole request and leaves no rows.
	AddStudent(ctx context.Context, params AddStudentParams) (*models.User, error)
	// AddAdmin creates a plain admin account
	AddAdmin(ctx context.Context, params AddAdminParams) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetStudent(ctx context.Context, userID int64) (*models.Student, error)
	DeleteUser(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore) UserService {
	return &userServiceImpl{
		userStore: userStore,
	}
}

// validateAccountFields checks the fields every role shares
func (s *userServiceImpl) validateAccountFields(username, password, name, email, phone string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", ErrUserValidation)
	}
	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrUserValidation, validation.PasswordMinLength)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrUserValidation)
	}
	if !validation.IsValidEmail(email) {
		return fmt.Errorf("%w: invalid email format", ErrUserValidation)
	}
	if !validation.IsValidPhone(phone) {
		return fmt.Errorf("%w: invalid phone format", ErrUserValidation)
	}
	return nil
}

// checkAccountAvailable reports username or email collisions before any row
// is written, so the caller gets a clean conflict instead of a constraint
// violation. The unique constraints remain the backstop for races.
func (s *userServiceImpl) checkAccountAvailable(ctx context.Context, username, email string) error {
	taken, err := s.userStore.UsernameExists(ctx, strings.TrimSpace(username))
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return apperrors.ErrUsernameTaken
	}

	taken, err = s.userStore.EmailExists(ctx, strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return apperrors.ErrEmailAlreadyExists
	}

	return nil
}

// buildUser hashes the password and assembles the user model
func buildUser(username, password, name, email, phone string, role models.RoleType) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: strings.TrimSpace(username),
		Password: hashed,
		Role:     role,
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
	}
	if phone != "" {
		user.Phone = &phone
	}
	return user, nil
}

// AddTeacher creates a teacher account with its courses
func (s *userServiceImpl) AddTeacher(ctx context.Context, params AddTeacherParams) (*models.User, []int64, error) {
	if err := s.validateAccountFields(params.Username, params.Password, params.Name, params.Email, params.Phone); err != nil {
		return nil, nil, err
	}
	if err := s.checkAccountAvailable(ctx, params.Username, params.Email); err != nil {
		return nil, nil, err
	}

	// Blank entries in the course-name list are dropped, not errors: the
	// original form field is a comma-separated string.
	names := make([]string, 0, len(params.CourseNames))
	for _, name := range params.CourseNames {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	user, err := buildUser(params.Username, params.Password, params.Name, params.Email, params.Phone, models.RoleTeacher)
	if err != nil {
		return nil, nil, err
	}

	courseIDs, err := s.userStore.CreateTeacherWithCourses(ctx, user, names)
	if err != nil {
		return nil, nil, err
	}

	return user, courseIDs, nil
}

// AddStudent creates a student account with its profile and enrollments
func (s *userServiceImpl) AddStudent(ctx context.Context, params AddStudentParams) (*models.User, error) {
	if err := s.validateAccountFields(params.Username, params.Password, params.Name, params.Email, params.Phone); err != nil {
		return nil, err
	}
	if !validation.IsValidGradeLevel(params.GradeLevel) {
		return nil, apperrors.ErrInvalidGradeLevel
	}
	if err := s.checkAccountAvailable(ctx, params.Username, params.Email); err != nil {
		return nil, err
	}

	user, err := buildUser(params.Username, params.Password, params.Name, params.Email, params.Phone, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.CreateStudentWithEnrollments(ctx, user, params.GradeLevel, params.CourseIDs); err != nil {
		return nil, err
	}

	return user, nil
}

// AddAdmin creates an admin account
func (s *userServiceImpl) AddAdmin(ctx context.Context, params AddAdminParams) (*models.User, error) {
	if err := s.validateAccountFields(params.Username, params.Password, params.Name, params.Email, params.Phone); err != nil {
		return nil, err
	}
	if err := s.checkAccountAvailable(ctx, params.Username, params.Email); err != nil {
		return nil, err
	}

	user, err := buildUser(params.Username, params.Password, params.Name, params.Email, params.Phone, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if _, err := s.userStore.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUserValidation)
	}
	return s.userStore.GetByID(ctx, id)
}

// GetAllUsers retrieves all users
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userStore.GetAll(ctx)
}

// GetStudent retrieves a student profile by the user's ID
func (s *userServiceImpl) GetStudent(ctx context.Context, userID int64) (*models.Student, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUserValidation)
	}
	return s.userStore.GetStudentByUserID(ctx, userID)
}

// DeleteUser removes a user by ID
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user ID", ErrUserValidation)
	}
	return s.userStore.Delete(ctx, id)
}
