package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

// Common attendance errors
var (
	ErrAttendanceValidation = errors.New("attendance validation failed")
)

// AttendanceService handles per-course attendance records
type AttendanceService interface {
	// MarkAttendance records a student's presence in a course the acting
	// teacher owns. A zero date means today.
	MarkAttendance(ctx context.Context, teacherID int64, attendance *models.Attendance) error
	AttendanceForCourse(ctx context.Context, courseID int64) ([]*models.Attendance, error)
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	attendanceStore AttendanceStore
	courseStore     CourseStore
	userStore       UserStore
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceStore AttendanceStore, courseStore CourseStore, userStore UserStore) AttendanceService {
	return &attendanceServiceImpl{
		attendanceStore: attendanceStore,
		courseStore:     courseStore,
		userStore:       userStore,
	}
}

// MarkAttendance records attendance for a student in the teacher's course
func (s *attendanceServiceImpl) MarkAttendance(ctx context.Context, teacherID int64, attendance *models.Attendance) error {
	if !attendance.Status.Valid() {
		return apperrors.ErrInvalidAttendanceStatus
	}

	course, err := s.courseStore.GetByID(ctx, attendance.CourseID)
	if err != nil {
		return err
	}
	if course.TeacherID != teacherID {
		return apperrors.ErrNotCourseOwner
	}

	if _, err := s.userStore.GetStudentByUserID(ctx, attendance.StudentID); err != nil {
		return err
	}

	if attendance.Date.IsZero() {
		attendance.Date = time.Now().Truncate(24 * time.Hour)
	}

	return s.attendanceStore.Create(ctx, attendance)
}

// AttendanceForCourse lists attendance records for a course
func (s *attendanceServiceImpl) AttendanceForCourse(ctx context.Context, courseID int64) ([]*models.Attendance, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", ErrAttendanceValidation)
	}

	if _, err := s.courseStore.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	return s.attendanceStore.GetByCourse(ctx, courseID)
}
