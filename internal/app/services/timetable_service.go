package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

// Common timetable errors
var (
	ErrTimetableValidation = errors.New("timetable validation failed")
)

// timeOfDayLayout is the accepted slot time format, 24h clock
const timeOfDayLayout = "15:04"

// TimetableService handles the weekly course schedule
type TimetableService interface {
	AddSlot(ctx context.Context, slot *models.TimetableSlot) error
	SlotsForCourse(ctx context.Context, courseID int64) ([]*models.TimetableSlot, error)
}

// timetableServiceImpl implements the TimetableService interface
type timetableServiceImpl struct {
	timetableStore TimetableStore
	courseStore    CourseStore
}

// NewTimetableService creates a new timetable service instance
func NewTimetableService(timetableStore TimetableStore, courseStore CourseStore) TimetableService {
	return &timetableServiceImpl{
		timetableStore: timetableStore,
		courseStore:    courseStore,
	}
}

// AddSlot validates and inserts a weekly schedule entry
func (s *timetableServiceImpl) AddSlot(ctx context.Context, slot *models.TimetableSlot) error {
	if !slot.Day.Valid() {
		return apperrors.ErrInvalidWeekday
	}

	start, err := time.Parse(timeOfDayLayout, slot.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start time must be HH:MM", ErrTimetableValidation)
	}
	end, err := time.Parse(timeOfDayLayout, slot.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end time must be HH:MM", ErrTimetableValidation)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrTimetableValidation)
	}

	if _, err := s.courseStore.GetByID(ctx, slot.CourseID); err != nil {
		return err
	}

	return s.timetableStore.Create(ctx, slot)
}

// SlotsForCourse lists the timetable slots of a course
func (s *timetableServiceImpl) SlotsForCourse(ctx context.Context, courseID int64) ([]*models.TimetableSlot, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", ErrTimetableValidation)
	}

	if _, err := s.courseStore.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	return s.timetableStore.GetByCourse(ctx, courseID)
}
