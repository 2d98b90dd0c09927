package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
	"github.com/gcbaptista/campus-buzz/model"
)

const userColumns = `id, email, password, name, COALESCE(role, 'student'), COALESCE(avatar, ''),
	COALESCE(created_at, ''), COALESCE(updated_at, '')`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Avatar, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts an account. PasswordHash must already be hashed.
func (s *SQLiteStore) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if user.Role == "" {
		user.Role = model.RoleStudent
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, password, name, role, avatar) VALUES (?, ?, ?, ?, ?)`,
		user.Email, user.PasswordHash, user.Name, string(user.Role), nullString(user.Avatar))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, internalErrors.NewAlreadyExistsError("user", user.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetUserByID(ctx, id)
}

// GetUserByID returns the account with the given id.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, internalErrors.NewNotFoundError("user", idString(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns the account registered with email.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, internalErrors.NewNotFoundError("user", email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// UpdateProfile changes the name and/or avatar of an account.
func (s *SQLiteStore) UpdateProfile(ctx context.Context, id int64, update model.ProfileUpdate) (*model.User, error) {
	if update.IsEmpty() {
		return nil, internalErrors.NewValidationError("", "no fields to update")
	}

	var sets []string
	var args []any
	if update.Name != nil && *update.Name != "" {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Avatar != nil {
		sets = append(sets, "avatar = ?")
		args = append(args, nullString(*update.Avatar))
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, `UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, internalErrors.NewNotFoundError("user", idString(id))
	}
	return s.GetUserByID(ctx, id)
}

// ListUsers returns every account, newest first.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
