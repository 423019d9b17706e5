package store

import (
	"context"
	"fmt"
	"partyinbangalore-backend/model"
)

func (s *Store) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, COALESCE(name, ''), username, COALESCE(password, ''), role, COALESCE(phone, '')
		FROM users WHERE username = $1`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("userByUsername: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("userByUsername: error executing query: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Password, &u.Role, &u.Phone); err != nil {
			return nil, fmt.Errorf("userByUsername: error while scanning row: %w", err)
		}
		return &u, nil
	}
	return nil, ErrNotFound
}

// EnsureUserByPhone fetches the account behind a verified phone number,
// creating it on first login.
func (s *Store) EnsureUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	query := `SELECT id, COALESCE(name, ''), username, role, COALESCE(phone, '')
		FROM users WHERE phone = $1`

	rows, err := s.db.QueryContext(ctx, query, phone)
	if err != nil {
		return nil, fmt.Errorf("ensureUserByPhone: error executing query: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Role, &u.Phone); err != nil {
			return nil, fmt.Errorf("ensureUserByPhone: error while scanning row: %w", err)
		}
		return &u, nil
	}
	rows.Close()

	u := model.User{Username: phone, Role: model.RoleUser, Phone: phone}
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO users(username, role, phone) VALUES ($1, $2, $3) RETURNING id`,
		u.Username, u.Role, u.Phone).Scan(&u.ID)
	if err != nil {
		return nil, fmt.Errorf("ensureUserByPhone: error inserting user: %w", err)
	}
	return &u, nil
}
