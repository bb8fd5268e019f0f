package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"tvp/internal/modules/eventlog/domain"
	eventlogout "tvp/internal/modules/eventlog/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteEventStore struct {
	db *sql.DB
}

func NewSQLiteEventStore(dbPath string) (*SQLiteEventStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteEventStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ eventlogout.EventStore = (*SQLiteEventStore)(nil)

func (s *SQLiteEventStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS events (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  timestamp TEXT NOT NULL,
  event_type TEXT NOT NULL,
  category TEXT,
  activity TEXT,
  context TEXT,
  raw_input TEXT,
  created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}
	return nil
}

func (s *SQLiteEventStore) Append(ctx context.Context, event domain.Event) (int64, error) {
	const stmt = `
INSERT INTO events (timestamp, event_type, category, activity, context, raw_input)
VALUES (?, ?, ?, ?, ?, ?);
`
	res, err := s.db.ExecContext(ctx, stmt,
		event.Timestamp,
		string(event.Type),
		string(event.Category),
		event.Activity,
		event.Context,
		event.RawInput,
	)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("event sequence: %w", err)
	}
	return seq, nil
}

const selectColumns = `id, timestamp, event_type, category, activity, context, raw_input`

func (s *SQLiteEventStore) ListStarts(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT ` + selectColumns + `
FROM events
WHERE lower(event_type) = 'start'
ORDER BY datetime(timestamp), id;
`
	return s.list(ctx, query)
}

func (s *SQLiteEventStore) ListWindow(ctx context.Context, lookbackDays int) ([]domain.Event, error) {
	query := `
SELECT ` + selectColumns + `
FROM events
WHERE datetime(timestamp) >= datetime('now', ?)
ORDER BY datetime(timestamp), id;
`
	return s.list(ctx, query, fmt.Sprintf("-%d days", lookbackDays))
}

func (s *SQLiteEventStore) ListGoals(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT ` + selectColumns + `
FROM events
WHERE upper(category) = 'GOAL'
ORDER BY datetime(timestamp), id;
`
	return s.list(ctx, query)
}

func (s *SQLiteEventStore) ListDoneOn(ctx context.Context, date string) ([]domain.Event, error) {
	const query = `
SELECT ` + selectColumns + `
FROM events
WHERE lower(event_type) = 'done' AND date(timestamp) = date(?)
ORDER BY datetime(timestamp), id;
`
	return s.list(ctx, query, date)
}

func (s *SQLiteEventStore) ListByDate(ctx context.Context, date string) ([]domain.Event, error) {
	const query = `
SELECT ` + selectColumns + `
FROM events
WHERE date(timestamp) = date(?)
ORDER BY datetime(timestamp), id;
`
	return s.list(ctx, query, date)
}

func (s *SQLiteEventStore) ListDates(ctx context.Context) ([]string, error) {
	const query = `
SELECT DISTINCT date(timestamp) AS day
FROM events
WHERE date(timestamp) IS NOT NULL
ORDER BY day;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list event dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan event date: %w", err)
		}
		dates = append(dates, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event dates: %w", err)
	}
	return dates, nil
}

func (s *SQLiteEventStore) list(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			event    domain.Event
			typ      string
			category sql.NullString
			activity sql.NullString
			evtCtx   sql.NullString
			raw      sql.NullString
		)
		if err := rows.Scan(&event.Seq, &event.Timestamp, &typ, &category, &activity, &evtCtx, &raw); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.Type = domain.ParseEventType(typ)
		event.Category = domain.ParseCategory(category.String)
		event.Activity = activity.String
		event.Context = evtCtx.String
		event.RawInput = raw.String
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func (s *SQLiteEventStore) Close() error {
	return s.db.Close()
}
