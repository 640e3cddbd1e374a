package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
	"github.com/cy-rus404/sms-backend/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Create inserts an attendance record
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, course_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		attendance.StudentID, attendance.CourseID, attendance.Date, attendance.Status,
	).Scan(&attendance.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "attendance_course_id_fkey") {
			return apperrors.ErrCourseNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "attendance_student_id_fkey") {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// GetByCourse retrieves all attendance records for a course
func (r *AttendanceRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Attendance, error) {
	query := `
		SELECT id, student_id, course_id, date, status
		FROM attendance
		WHERE course_id = $1
		ORDER BY date, id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Date, &a.Status); err != nil {
			return nil, err
		}
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByStudent retrieves all attendance records for a student
func (r *AttendanceRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	query := `
		SELECT id, student_id, course_id, date, status
		FROM attendance
		WHERE student_id = $1
		ORDER BY date, id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Date, &a.Status); err != nil {
			return nil, err
		}
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
