package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
	"github.com/cy-rus404/sms-backend/internal/pkg/dberrors"
)

// TimetableRepository handles database operations for timetable slots
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new timetable repository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db: db,
	}
}

// Create inserts a timetable slot
func (r *TimetableRepository) Create(ctx context.Context, slot *models.TimetableSlot) error {
	query := `
		INSERT INTO timetable (course_id, day, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		slot.CourseID, slot.Day, slot.StartTime, slot.EndTime,
	).Scan(&slot.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "timetable_course_id_fkey") {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating timetable slot: %w", err)
	}

	return nil
}

// GetByCourse retrieves all timetable slots for a course
func (r *TimetableRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.TimetableSlot, error) {
	query := `
		SELECT id, course_id, day, start_time, end_time
		FROM timetable
		WHERE course_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*models.TimetableSlot
	for rows.Next() {
		var slot models.TimetableSlot
		if err := rows.Scan(&slot.ID, &slot.CourseID, &slot.Day, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, err
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

// GetByStudent retrieves timetable slots for every course a student is enrolled in
func (r *TimetableRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.TimetableSlot, error) {
	query := `
		SELECT t.id, t.course_id, t.day, t.start_time, t.end_time
		FROM timetable t
		JOIN enrollments e ON e.course_id = t.course_id
		WHERE e.student_id = $1
		ORDER BY t.course_id, t.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*models.TimetableSlot
	for rows.Next() {
		var slot models.TimetableSlot
		if err := rows.Scan(&slot.ID, &slot.CourseID, &slot.Day, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, err
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
