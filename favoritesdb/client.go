// Package favoritesdb persists the set of formulas a caller has marked
// as favorites, keyed by formula ID. It is injected, explicitly-scoped
// application state, not process-wide state: the evaluator never reads
// it and no numeric result depends on it.
package favoritesdb

import (
	"context"
	"database/sql"
	"fmt"
)

// Client is the entry point for the favorites store.
type Client struct {
	config Config
	DB     *sql.DB
}

// NewClient opens the favorites database described by config.
func NewClient(config Config) (*Client, error) {
	db, err := InitDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create favorites DB: %w", err)
	}

	return &Client{config: config, DB: db}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// Add marks a formula as a favorite. Adding an existing favorite is a
// no-op.
func (c *Client) Add(ctx context.Context, formulaID string) error {
	_, err := c.DB.ExecContext(ctx,
		`INSERT INTO favorites (formula_id) VALUES (?) ON CONFLICT (formula_id) DO NOTHING`,
		formulaID)
	return err
}

// Remove unmarks a formula and reports whether it was a favorite.
func (c *Client) Remove(ctx context.Context, formulaID string) (bool, error) {
	result, err := c.DB.ExecContext(ctx,
		`DELETE FROM favorites WHERE formula_id = ?`, formulaID)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// IsFavorite reports whether the formula is currently a favorite.
func (c *Client) IsFavorite(ctx context.Context, formulaID string) (bool, error) {
	var count int
	err := c.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE formula_id = ?`, formulaID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns the favorite formula IDs in insertion order.
func (c *Client) List(ctx context.Context) ([]string, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT formula_id FROM favorites ORDER BY created_at, formula_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
