// Package telemetry records allocation solves and exposes aggregate stats
// via SQLite. The solver never reads from it; recording is strictly
// post-solve bookkeeping.
package telemetry

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

// Collector records solve events into a SQLite database.
type Collector struct {
	db *sql.DB
}

// SolveEvent captures a single allocation solve.
type SolveEvent struct {
	ID           string
	Category     string
	Destination  string
	Volume       int64
	Status       string
	Entries      int
	TotalCost    float64
	DurationMs   int64
	CostWeight   float64
	TimeWeight   float64
	RegionWeight float64
}

// Stats holds aggregate solve telemetry.
type Stats struct {
	TotalSolves      int
	TotalVolume      int64
	TotalCost        float64
	ByStatus         map[string]int
	VolumeByCategory map[string]int64
}

// NewCollector opens (or creates) the SQLite database at dbPath and ensures
// the solve_events table exists.
func NewCollector(dbPath string) (*Collector, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS solve_events (
		id TEXT PRIMARY KEY,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		category TEXT,
		destination TEXT,
		volume INTEGER,
		status TEXT,
		entries INTEGER,
		total_cost REAL,
		duration_ms INTEGER,
		cost_weight REAL,
		time_weight REAL,
		region_weight REAL
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Collector{db: db}, nil
}

// Close releases the database connection.
func (c *Collector) Close() error {
	return c.db.Close()
}

// RecordSolve inserts a new solve event. An empty ID is assigned a fresh ULID.
func (c *Collector) RecordSolve(e SolveEvent) error {
	if e.ID == "" {
		e.ID = ulid.Make().String()
	}
	_, err := c.db.Exec(
		`INSERT INTO solve_events
			(id, category, destination, volume, status, entries, total_cost, duration_ms, cost_weight, time_weight, region_weight)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Category, e.Destination, e.Volume, e.Status, e.Entries,
		e.TotalCost, e.DurationMs, e.CostWeight, e.TimeWeight, e.RegionWeight,
	)
	return err
}

// GetStats returns aggregate stats. When categoryFilter is non-empty, the
// solve, volume, and cost totals are scoped to that category only; ByStatus
// and VolumeByCategory always cover all events.
func (c *Collector) GetStats(categoryFilter string) (*Stats, error) {
	stats := &Stats{
		ByStatus:         make(map[string]int),
		VolumeByCategory: make(map[string]int64),
	}

	query := `SELECT COUNT(*), COALESCE(SUM(volume), 0), COALESCE(SUM(total_cost), 0) FROM solve_events`
	args := []interface{}{}
	if categoryFilter != "" {
		query += ` WHERE category = ?`
		args = append(args, categoryFilter)
	}

	if err := c.db.QueryRow(query, args...).Scan(&stats.TotalSolves, &stats.TotalVolume, &stats.TotalCost); err != nil {
		return nil, err
	}

	rows, err := c.db.Query(
		`SELECT status, COUNT(*) FROM solve_events GROUP BY status`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows2, err := c.db.Query(
		`SELECT category, COALESCE(SUM(volume), 0) FROM solve_events GROUP BY category`,
	)
	if err != nil {
		return nil, err
	}
	defer rows2.Close()
	for rows2.Next() {
		var category string
		var volume int64
		if err := rows2.Scan(&category, &volume); err != nil {
			return nil, err
		}
		stats.VolumeByCategory[category] = volume
	}
	if err := rows2.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
