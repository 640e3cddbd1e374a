package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

func TestMarkAttendance(t *testing.T) {
	f := newRegistryFixture(t)
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, f.courses, f.users)
	ctx := context.Background()

	t.Run("defaults date to today", func(t *testing.T) {
		record := &models.Attendance{
			StudentID: f.studentA.ID,
			CourseID:  f.math.ID,
			Status:    models.AttendanceLate,
		}
		require.NoError(t, svc.MarkAttendance(ctx, f.teacher.ID, record))
		assert.False(t, record.Date.IsZero())
	})

	t.Run("invalid status", func(t *testing.T) {
		err := svc.MarkAttendance(ctx, f.teacher.ID, &models.Attendance{
			StudentID: f.studentA.ID,
			CourseID:  f.math.ID,
			Status:    "SLEEPING",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidAttendanceStatus)
	})

	t.Run("non-owning teacher", func(t *testing.T) {
		other := f.users.addUser(&models.User{Username: "other", Role: models.RoleTeacher})
		err := svc.MarkAttendance(ctx, other.ID, &models.Attendance{
			StudentID: f.studentA.ID,
			CourseID:  f.math.ID,
			Status:    models.AttendancePresent,
		})
		assert.ErrorIs(t, err, apperrors.ErrNotCourseOwner)
	})

	t.Run("unknown student", func(t *testing.T) {
		err := svc.MarkAttendance(ctx, f.teacher.ID, &models.Attendance{
			StudentID: 99,
			CourseID:  f.math.ID,
			Status:    models.AttendancePresent,
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestAttendanceForCourse(t *testing.T) {
	f := newRegistryFixture(t)
	store := newFakeAttendanceStore()
	svc := NewAttendanceService(store, f.courses, f.users)
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Create(ctx, &models.Attendance{StudentID: f.studentA.ID, CourseID: f.math.ID, Date: day, Status: models.AttendancePresent}))
	require.NoError(t, store.Create(ctx, &models.Attendance{StudentID: f.studentB.ID, CourseID: f.physics.ID, Date: day, Status: models.AttendanceAbsent}))

	records, err := svc.AttendanceForCourse(ctx, f.math.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.AttendanceForCourse(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
