package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/overtime/internal/models"
)

const userColumns = `id, email, display_name, password_hash, monthly_salary, is_admin,
		ungrouped_collapsed, created_at, updated_at`

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.MonthlySalary,
		boolToInt(user.IsAdmin),
		boolToInt(user.UngroupedCollapsed),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return storageErr("create user", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, storageErr("get user by email", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, storageErr("get user by ID", err)
	}

	return user, nil
}

// UpdateUserSettings stores the user's salary default and display flag.
func (s *SQLiteStore) UpdateUserSettings(ctx context.Context, userID string, settings models.Settings) error {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET monthly_salary = ?, ungrouped_collapsed = ?, updated_at = ? WHERE id = ?`,
		settings.MonthlySalary, boolToInt(settings.UngroupedCollapsed), time.Now().Unix(), userID,
	)
	if err != nil {
		return storageErr("update user settings", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
	}

	return nil
}

// UpdateUserProfile stores the user's display name.
func (s *SQLiteStore) UpdateUserProfile(ctx context.Context, userID, displayName string) error {
	return s.updateUser(ctx, "update user profile", userID, `display_name = ?`, displayName)
}

// UpdateUserPassword replaces the stored password hash.
func (s *SQLiteStore) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	return s.updateUser(ctx, "update user password", userID, `password_hash = ?`, passwordHash)
}

func (s *SQLiteStore) updateUser(ctx context.Context, op, userID, set string, value any) error {
	ctx, cancel := s.applyTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET `+set+`, updated_at = ? WHERE id = ?`,
		value, time.Now().Unix(), userID,
	)
	if err != nil {
		return storageErr(op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
	}

	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.MonthlySalary,
		&user.IsAdmin,
		&user.UngroupedCollapsed,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
