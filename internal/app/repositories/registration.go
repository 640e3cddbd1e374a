package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
	"github.com/cy-rus404/sms-backend/internal/pkg/dberrors"
)

// Teacher and student registration create several rows at once: the user,
// the courses a teacher brings, the profile and enrollments a student brings.
// Each flow runs in a single transaction so a failing part leaves nothing behind.

// CreateTeacherWithCourses inserts the teacher user and one course per name,
// owned by the new teacher. Returns the assigned course IDs in input order.
func (r *UserRepository) CreateTeacherWithCourses(ctx context.Context, user *models.User, courseNames []string) ([]int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, password, role, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`,
		user.Username, user.Password, user.Role, user.Name, user.Email, user.Phone, now,
	).Scan(&user.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return nil, apperrors.ErrUsernameTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating teacher user: %w", err)
	}

	courseIDs := make([]int64, 0, len(courseNames))
	for _, name := range courseNames {
		var courseID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO courses (name, teacher_id, credits)
			VALUES ($1, $2, $3)
			RETURNING id`,
			name, user.ID, DefaultCourseCredits,
		).Scan(&courseID)
		if err != nil {
			return nil, fmt.Errorf("error creating course %q: %w", name, err)
		}
		courseIDs = append(courseIDs, courseID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return courseIDs, nil
}

// CreateStudentWithEnrollments inserts the student user, its profile row and
// one enrollment per course ID. Any unknown course ID fails the whole request
// with ErrCourseNotFound; a repeated (student, course) pair in the list fails
// with ErrDuplicateEnrollment. Nothing is kept on failure.
func (r *UserRepository) CreateStudentWithEnrollments(ctx context.Context, user *models.User, gradeLevel int, courseIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Validate the referenced courses up front so the caller gets a precise
	// error instead of a bare constraint violation.
	if len(courseIDs) > 0 {
		var count int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM courses WHERE id = ANY($1)`, courseIDs).Scan(&count); err != nil {
			return fmt.Errorf("error checking courses: %w", err)
		}
		if count != len(uniqueIDs(courseIDs)) {
			return apperrors.ErrCourseNotFound
		}
	}

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, password, role, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`,
		user.Username, user.Password, user.Role, user.Name, user.Email, user.Phone, now,
	).Scan(&user.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUsernameTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO students (user_id, grade_level)
		VALUES ($1, $2)`,
		user.ID, gradeLevel,
	)
	if err != nil {
		return fmt.Errorf("error creating student profile: %w", err)
	}

	for _, courseID := range courseIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO enrollments (student_id, course_id)
			VALUES ($1, $2)`,
			user.ID, courseID,
		)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "enrollments_student_id_course_id_key") {
				return apperrors.ErrDuplicateEnrollment
			}
			return fmt.Errorf("error enrolling in course %d: %w", courseID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// uniqueIDs drops repeated IDs while keeping order
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
