package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, title, description, category, audience, location,
	start_date, end_date, link, created_at, updated_at`

func scanEvent(row pgx.Row) (*Event, error) {
	var e Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Category, &e.Audience, &e.Location,
		&e.StartDate, &e.EndDate, &e.Link, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEvents retrieves all events ordered by start date
func (db *DB) ListEvents(ctx context.Context) ([]Event, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// GetEvent retrieves an event by id, or nil if not found
func (db *DB) GetEvent(ctx context.Context, id int) (*Event, error) {
	e, err := scanEvent(db.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return e, nil
}

// CreateEvent inserts a new event and returns the stored record
func (db *DB) CreateEvent(ctx context.Context, e *Event) (*Event, error) {
	created, err := scanEvent(db.pool.QueryRow(ctx,
		`INSERT INTO events (title, description, category, audience, location,
		 start_date, end_date, link)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+eventColumns,
		e.Title, e.Description, e.Category, e.Audience, e.Location,
		e.StartDate, e.EndDate, e.Link))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// UpdateEvent updates an existing event and returns the stored record, or nil
// if the id does not exist
func (db *DB) UpdateEvent(ctx context.Context, e *Event) (*Event, error) {
	updated, err := scanEvent(db.pool.QueryRow(ctx,
		`UPDATE events SET title = $2, description = $3, category = $4, audience = $5,
		 location = $6, start_date = $7, end_date = $8, link = $9, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+eventColumns,
		e.ID, e.Title, e.Description, e.Category, e.Audience,
		e.Location, e.StartDate, e.EndDate, e.Link))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return updated, nil
}

// DeleteEvent removes an event by id
func (db *DB) DeleteEvent(ctx context.Context, id int) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	return nil
}
