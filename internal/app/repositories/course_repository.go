package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

// DefaultCourseCredits is assigned to courses created through teacher registration
const DefaultCourseCredits = 3

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// GetByID retrieves a course by ID with its owning teacher
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.teacher_id, c.credits,
		       u.id, u.username, u.password, u.role, u.name, u.email, u.phone, u.created_at, u.updated_at
		FROM courses c
		JOIN users u ON u.id = c.teacher_id
		WHERE c.id = $1
	`

	var course models.Course
	var teacher models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID, &course.Name, &course.TeacherID, &course.Credits,
		&teacher.ID, &teacher.Username, &teacher.Password, &teacher.Role,
		&teacher.Name, &teacher.Email, &teacher.Phone, &teacher.CreatedAt, &teacher.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	course.Teacher = &teacher
	return &course, nil
}

// GetAll retrieves all courses with their owning teacher names
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.CourseWithTeacher, error) {
	query := `
		SELECT c.id, c.name, c.teacher_id, c.credits, u.name
		FROM courses c
		JOIN users u ON u.id = c.teacher_id
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.CourseWithTeacher
	for rows.Next() {
		var cwt models.CourseWithTeacher
		if err := rows.Scan(
			&cwt.Course.ID, &cwt.Course.Name, &cwt.Course.TeacherID, &cwt.Course.Credits,
			&cwt.TeacherName,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &cwt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByTeacherID retrieves all courses owned by a teacher
func (r *CourseRepository) GetByTeacherID(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	query := `
		SELECT id, name, teacher_id, credits
		FROM courses
		WHERE teacher_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.TeacherID, &course.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
