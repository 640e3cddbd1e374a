package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
	"github.com/cy-rus404/sms-backend/internal/pkg/dberrors"
)

// UserRepository handles database operations for users and student profiles
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// CreateUser inserts a user row and returns the assigned ID
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (username, password, role, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		user.Username, user.Password, user.Role, user.Name, user.Email, user.Phone, now,
	).Scan(&user.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.ErrUsernameTaken
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return user.ID, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, username, password, role, name, email, phone, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, role, name, email, phone, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetAll retrieves all users
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, username, password, role, name, email, phone, created_at, updated_at
		FROM users
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Password, &user.Role,
			&user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// UsernameExists checks whether a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username existence: %w", err)
	}
	return exists, nil
}

// EmailExists checks whether an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// AdminExists checks whether any admin account exists
func (r *UserRepository) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, models.RoleAdmin).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}
	return exists, nil
}

// GetStudentByUserID retrieves a student profile with its user by the user's ID
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `
		SELECT s.id, s.user_id, s.grade_level,
		       u.id, u.username, u.password, u.role, u.name, u.email, u.phone, u.created_at, u.updated_at
		FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1
	`

	var student models.Student
	var user models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&student.ID, &student.UserID, &student.GradeLevel,
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.User = &user
	return &student, nil
}

// Delete removes a user by ID. The students, enrollments, attendance and
// course rows hanging off the user go with it via ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
