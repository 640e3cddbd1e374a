package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
	"github.com/cy-rus404/sms-backend/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for the
// student/course enrollment relation.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Enroll inserts a single (student, course) enrollment row.
// A duplicate pair maps to ErrDuplicateEnrollment, an unknown course
// to ErrCourseNotFound.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, courseID int64) error {
	query := `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, studentID, courseID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_student_id_course_id_key") {
			return apperrors.ErrDuplicateEnrollment
		}
		if dberrors.IsForeignKeyViolation(err, "enrollments_course_id_fkey") {
			return apperrors.ErrCourseNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "enrollments_student_id_fkey") {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// AssignGrade sets the grade on an existing enrollment
func (r *EnrollmentRepository) AssignGrade(ctx context.Context, studentID, courseID int64, grade float64) error {
	query := `
		UPDATE enrollments
		SET grade = $1
		WHERE student_id = $2 AND course_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, grade, studentID, courseID)
	if err != nil {
		return fmt.Errorf("error assigning grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// GetStudentsForTeacher returns the union of students enrolled in any
// course owned by the teacher, without duplicates.
func (r *EnrollmentRepository) GetStudentsForTeacher(ctx context.Context, teacherID int64) ([]*models.Student, error) {
	query := `
		SELECT DISTINCT s.id, s.user_id, s.grade_level,
		       u.id, u.username, u.password, u.role, u.name, u.email, u.phone, u.created_at, u.updated_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		JOIN students s ON s.user_id = e.student_id
		JOIN users u ON u.id = s.user_id
		WHERE c.teacher_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var user models.User
		if err := rows.Scan(
			&student.ID, &student.UserID, &student.GradeLevel,
			&user.ID, &user.Username, &user.Password, &user.Role,
			&user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		student.User = &user
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetCoursesForStudent returns the courses a student is enrolled in,
// each with the owning teacher's name and the grade if assigned.
func (r *EnrollmentRepository) GetCoursesForStudent(ctx context.Context, studentID int64) ([]*models.CourseWithTeacher, error) {
	query := `
		SELECT c.id, c.name, c.teacher_id, c.credits, u.name, e.grade
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		JOIN users u ON u.id = c.teacher_id
		WHERE e.student_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.CourseWithTeacher
	for rows.Next() {
		var cwt models.CourseWithTeacher
		if err := rows.Scan(
			&cwt.Course.ID, &cwt.Course.Name, &cwt.Course.TeacherID, &cwt.Course.Credits,
			&cwt.TeacherName, &cwt.Grade,
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
