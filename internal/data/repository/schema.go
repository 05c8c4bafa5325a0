package repository

import (
	"context"
	"fmt"

	"github.com/Surendar2005/BookMyShow/pkg/database"
)

// InitializeSchema creates the bookings table if it does not exist yet.
// Called once on startup, after the connection pool is up.
func InitializeSchema(ctx context.Context, db database.PgxIface) error {
	_, err := db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY,
	movie_id INTEGER NOT NULL,
	movie_title TEXT NOT NULL,
	showtime TEXT NOT NULL,
	seats TEXT[] NOT NULL,
	total NUMERIC(10, 2) NOT NULL,
	user_name TEXT NOT NULL,
	user_email TEXT NOT NULL,
	user_phone TEXT NOT NULL,
	payment_method TEXT NOT NULL,
	payment_details JSONB NOT NULL DEFAULT '{}',
	status TEXT NOT NULL DEFAULT 'confirmed',
	created_at TIMESTAMP WITH TIME ZONE NOT NULL,
	updated_at TIMESTAMP WITH TIME ZONE NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}

	return nil
}
