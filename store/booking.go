package store

import (
	"context"
	"fmt"
	"partyinbangalore-backend/model"
	"strings"
)

var bookingCols = []string{"user_id", "event_id", "event_name", "venue_name", "date", "status", "image_url"}

func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("createBooking: error begining db transaction: %w", err)
	}

	var params []string
	for i := range bookingCols {
		params = append(params, fmt.Sprintf("$%d", i+1))
	}

	tsql := fmt.Sprintf(`INSERT INTO bookings(%s) VALUES (%s) RETURNING id`,
		strings.Join(bookingCols, ", "), strings.Join(params, ", "))

	var id int64
	err = tx.QueryRowContext(ctx, tsql,
		b.UserID, b.EventID, b.EventName, b.VenueName, b.Date, b.Status, b.ImageURL,
	).Scan(&id)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("createBooking: error inserting booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("createBooking: error commiting booking: %w", err)
	}
	b.ID = id
	return id, nil
}

func (s *Store) BookingsByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	query := `SELECT id, user_id, event_id, event_name, venue_name, date, status, image_url
		FROM bookings WHERE user_id = $1 ORDER BY date DESC`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("bookingsByUser: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("bookingsByUser: error executing query: %w", err)
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.EventID, &b.EventName,
			&b.VenueName, &b.Date, &b.Status, &b.ImageURL); err != nil {
			return nil, fmt.Errorf("bookingsByUser: error while scanning row: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
