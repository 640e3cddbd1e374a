package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cy-rus404/sms-backend/internal/app/models"
)

// Common course errors
var (
	ErrCourseValidation = errors.New("course validation failed")
)

// CourseService handles course listing and lookup. Courses are created
// through teacher registration only, so there is no create operation here.
type CourseService interface {
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.CourseWithTeacher, error)
	GetCoursesByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseStore CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore) CourseService {
	return &courseServiceImpl{
		courseStore: courseStore,
	}
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", ErrCourseValidation)
	}
	return s.courseStore.GetByID(ctx, id)
}

// GetAllCourses retrieves all courses with owning teacher names
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.CourseWithTeacher, error) {
	return s.courseStore.GetAll(ctx)
}

// GetCoursesByTeacher retrieves the courses owned by a teacher
func (s *courseServiceImpl) GetCoursesByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	if teacherID <= 0 {
		return nil, fmt.Errorf("%w: invalid teacher ID", ErrCourseValidation)
	}
	return s.courseStore.GetByTeacherID(ctx, teacherID)
}
