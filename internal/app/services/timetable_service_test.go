package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

func TestAddSlot(t *testing.T) {
	f := newRegistryFixture(t)
	store := newFakeTimetableStore()
	svc := NewTimetableService(store, f.courses)
	ctx := context.Background()

	t.Run("valid slot", func(t *testing.T) {
		slot := &models.TimetableSlot{CourseID: f.math.ID, Day: models.Monday, StartTime: "09:00", EndTime: "10:30"}
		require.NoError(t, svc.AddSlot(ctx, slot))
		assert.NotZero(t, slot.ID)
	})

	t.Run("weekend rejected", func(t *testing.T) {
		err := svc.AddSlot(ctx, &models.TimetableSlot{CourseID: f.math.ID, Day: "SATURDAY", StartTime: "09:00", EndTime: "10:00"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidWeekday)
	})

	t.Run("malformed time", func(t *testing.T) {
		err := svc.AddSlot(ctx, &models.TimetableSlot{CourseID: f.math.ID, Day: models.Friday, StartTime: "9am", EndTime: "10:00"})
		assert.ErrorIs(t, err, ErrTimetableValidation)
	})

	t.Run("end before start", func(t *testing.T) {
		err := svc.AddSlot(ctx, &models.TimetableSlot{CourseID: f.math.ID, Day: models.Friday, StartTime: "11:00", EndTime: "10:00"})
		assert.ErrorIs(t, err, ErrTimetableValidation)
	})

	t.Run("unknown course", func(t *testing.T) {
		err := svc.AddSlot(ctx, &models.TimetableSlot{CourseID: 99, Day: models.Friday, StartTime: "09:00", EndTime: "10:00"})
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestSlotsForCourse(t *testing.T) {
	f := newRegistryFixture(t)
	store := newFakeTimetableStore()
	svc := NewTimetableService(store, f.courses)
	ctx := context.Background()

	require.NoError(t, svc.AddSlot(ctx, &models.TimetableSlot{CourseID: f.math.ID, Day: models.Monday, StartTime: "09:00", EndTime: "10:30"}))
	require.NoError(t, svc.AddSlot(ctx, &models.TimetableSlot{CourseID: f.physics.ID, Day: models.Tuesday, StartTime: "09:00", EndTime: "10:30"}))

	slots, err := svc.SlotsForCourse(ctx, f.math.ID)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}
