package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
	"github.com/cy-rus404/sms-backend/internal/pkg/validation"
)

// Common enrollment errors
var (
	ErrEnrollmentValidation = errors.New("enrollment validation failed")
)

// EnrollmentService handles the student/course enrollment relation
type EnrollmentService interface {
	// EnrollStudent adds a single (student, course) enrollment. Re-enrolling
	// an existing pair is rejected with ErrDuplicateEnrollment.
	EnrollStudent(ctx context.Context, studentID, courseID int64) error
	// AssignGrade sets the grade on an enrollment in a course the acting
	// teacher owns
	AssignGrade(ctx context.Context, teacherID, studentID, courseID int64, grade float64) error
	// StudentsForTeacher returns the union of students enrolled in any course
	// owned by the teacher
	StudentsForTeacher(ctx context.Context, teacherID int64) ([]*models.Student, error)
	// CoursesForStudent returns the student's courses with owning teacher
	// names and grades
	CoursesForStudent(ctx context.Context, studentID int64) ([]*models.CourseWithTeacher, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollmentStore EnrollmentStore
	courseStore     CourseStore
	userStore       UserStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentStore EnrollmentStore, courseStore CourseStore, userStore UserStore) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentStore: enrollmentStore,
		courseStore:     courseStore,
		userStore:       userStore,
	}
}

// EnrollStudent adds a single enrollment for an existing student
func (s *enrollmentServiceImpl) EnrollStudent(ctx context.Context, studentID, courseID int64) error {
	if studentID <= 0 || courseID <= 0 {
		return fmt.Errorf("%w: invalid student or course ID", ErrEnrollmentValidation)
	}

	// A non-student user ID must not grow enrollments
	student, err := s.userStore.GetStudentByUserID(ctx, studentID)
	if err != nil {
		return err
	}

	if _, err := s.courseStore.GetByID(ctx, courseID); err != nil {
		return err
	}

	return s.enrollmentStore.Enroll(ctx, student.UserID, courseID)
}

// AssignGrade sets the grade on an existing enrollment. Only the owning
// teacher of the course may grade it.
func (s *enrollmentServiceImpl) AssignGrade(ctx context.Context, teacherID, studentID, courseID int64, grade float64) error {
	if !validation.IsValidGrade(grade) {
		return apperrors.ErrInvalidGrade
	}

	course, err := s.courseStore.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if course.TeacherID != teacherID {
		return apperrors.ErrNotCourseOwner
	}

	return s.enrollmentStore.AssignGrade(ctx, studentID, courseID, grade)
}

// StudentsForTeacher returns the students enrolled in any of the teacher's courses
func (s *enrollmentServiceImpl) StudentsForTeacher(ctx context.Context, teacherID int64) ([]*models.Student, error) {
	if teacherID <= 0 {
		return nil, fmt.Errorf("%w: invalid teacher ID", ErrEnrollmentValidation)
	}

	teacher, err := s.userStore.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher.Role != models.RoleTeacher {
		return nil, apperrors.ErrTeacherNotFound
	}

	return s.enrollmentStore.GetStudentsForTeacher(ctx, teacherID)
}

// CoursesForStudent returns the student's courses with teacher names
func (s *enrollmentServiceImpl) CoursesForStudent(ctx context.Context, studentID int64) ([]*models.CourseWithTeacher, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", ErrEnrollmentValidation)
	}

	// Resolving the profile first distinguishes "no such student" from
	// "student with no enrollments"
	if _, err := s.userStore.GetStudentByUserID(ctx, studentID); err != nil {
		return nil, err
	}

	return s.enrollmentStore.GetCoursesForStudent(ctx, studentID)
}
