package user

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"user-api/pkg/cerror"
)

//go:embed migrations/0001_users.up.sql
var usersSchema string

// Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

type Repository interface {
	Migrate(ctx context.Context) error
	InsertUser(ctx context.Context, user *UserRow) (*UserRow, error)
	FindUserWithEmail(ctx context.Context, email string) (*UserRow, error)
	FindUserWithId(ctx context.Context, userId string) (*UserRow, error)
	FindAllUsers(ctx context.Context, page, limit int) ([]*UserRow, int64, error)
	UpdateLastLogin(ctx context.Context, userId string, lastLoginAt time.Time) error
	CountUsersByRole(ctx context.Context) (*RoleCounts, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, usersSchema)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while migrate users table",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) InsertUser(ctx context.Context, user *UserRow) (*UserRow, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, role, is_active, last_login_at, created_at, updated_at`

	insertedUser := &UserRow{}
	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Id,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
	).Scan(
		&insertedUser.Id,
		&insertedUser.Name,
		&insertedUser.Email,
		&insertedUser.Role,
		&insertedUser.IsActive,
		&insertedUser.LastLoginAt,
		&insertedUser.CreatedAt,
		&insertedUser.UpdatedAt,
	)
	if err != nil {
		var pqError *pq.Error
		if errors.As(err, &pqError) && pqError.Code == uniqueViolationCode {
			return nil, cerror.ErrorUserAlreadyExists
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert user",
			zap.Error(err),
		)
	}

	return insertedUser, nil
}

// FindUserWithEmail is the only query that projects the password hash; it
// returns nil without an error when no user exists for the email so the
// caller decides how much to reveal.
func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*UserRow, error) {
	query := `
		SELECT id, name, email, password_hash, role, is_active, last_login_at, created_at, updated_at
		FROM users
		WHERE email = $1`

	foundUser := &UserRow{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&foundUser.Id,
		&foundUser.Name,
		&foundUser.Email,
		&foundUser.PasswordHash,
		&foundUser.Role,
		&foundUser.IsActive,
		&foundUser.LastLoginAt,
		&foundUser.CreatedAt,
		&foundUser.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with email",
			zap.Error(err),
		)
	}

	return foundUser, nil
}

func (r *repository) FindUserWithId(ctx context.Context, userId string) (*UserRow, error) {
	query := `
		SELECT id, name, email, role, is_active, last_login_at, created_at, updated_at
		FROM users
		WHERE id = $1`

	foundUser := &UserRow{}
	err := r.db.QueryRowContext(ctx, query, userId).Scan(
		&foundUser.Id,
		&foundUser.Name,
		&foundUser.Email,
		&foundUser.Role,
		&foundUser.IsActive,
		&foundUser.LastLoginAt,
		&foundUser.CreatedAt,
		&foundUser.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerror.ErrorUserNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with id",
			zap.Error(err),
		)
	}

	return foundUser, nil
}

func (r *repository) FindAllUsers(ctx context.Context, page, limit int) ([]*UserRow, int64, error) {
	query := `
		SELECT id, name, email, role, is_active, last_login_at, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	offset := (page - 1) * limit
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find all users",
			zap.Error(err),
		)
	}
	defer rows.Close() //nolint:errcheck

	users := make([]*UserRow, 0, limit)
	for rows.Next() {
		foundUser := &UserRow{}
		err = rows.Scan(
			&foundUser.Id,
			&foundUser.Name,
			&foundUser.Email,
			&foundUser.Role,
			&foundUser.IsActive,
			&foundUser.LastLoginAt,
			&foundUser.CreatedAt,
			&foundUser.UpdatedAt,
		)
		if err != nil {
			return nil, 0, cerror.NewError(
				fiber.StatusInternalServerError,
				"error occurred while scan user row",
				zap.Error(err),
			)
		}

		users = append(users, foundUser)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while iterate user rows",
			zap.Error(err),
		)
	}

	var total int64
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while count users",
			zap.Error(err),
		)
	}

	return users, total, nil
}

func (r *repository) UpdateLastLogin(ctx context.Context, userId string, lastLoginAt time.Time) error {
	query := `UPDATE users SET last_login_at = $2, updated_at = now() WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, userId, lastLoginAt)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update last login",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) CountUsersByRole(ctx context.Context) (*RoleCounts, error) {
	query := `SELECT role, COUNT(*) FROM users GROUP BY role`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while count users by role",
			zap.Error(err),
		)
	}
	defer rows.Close() //nolint:errcheck

	counts := &RoleCounts{}
	for rows.Next() {
		var (
			role  Role
			count int64
		)
		err = rows.Scan(&role, &count)
		if err != nil {
			return nil, cerror.NewError(
				fiber.StatusInternalServerError,
				"error occurred while scan role count row",
				zap.Error(err),
			)
		}

		switch role {
		case RoleAdmin:
			counts.Admin = count
		case RoleUser:
			counts.User = count
		}
		counts.Total += count
	}

	err = rows.Err()
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while iterate role count rows",
			zap.Error(err),
		)
	}

	return counts, nil
}
