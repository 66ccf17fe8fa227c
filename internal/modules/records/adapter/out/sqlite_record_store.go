package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"lectrack/internal/modules/records/domain"
	recordsout "lectrack/internal/modules/records/port/out"
	apperrors "lectrack/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteRecordStore struct {
	db *sql.DB
}

// NewSQLiteRecordStore opens the database at dbPath and ensures the lectures
// table exists. The connection is held until Close.
func NewSQLiteRecordStore(dbPath string) (recordsout.RecordStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w: %w", apperrors.ErrStorage, err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w: %w", apperrors.ErrStorage, err)
	}
	db.SetMaxOpenConns(1)
	store := &SQLiteRecordStore{db: db}
	if err := store.Initialize(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteRecordStore) Initialize(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS lectures (
  group_code TEXT,
  arrived TEXT,
  start TEXT,
  break_start TEXT,
  break_end TEXT,
  lecture_end TEXT,
  break_duration TEXT,
  lecture_duration TEXT,
  notes TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create lectures table: %w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func (s *SQLiteRecordStore) Insert(ctx context.Context, record domain.Record) error {
	const stmt = `
INSERT INTO lectures (group_code, arrived, start, break_start, break_end, lecture_end, break_duration, lecture_duration, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		record.GroupCode,
		record.Arrived,
		record.Start,
		nullable(record.BreakStart),
		nullable(record.BreakEnd),
		record.LectureEnd,
		record.BreakDuration,
		record.LectureDuration,
		record.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert lecture: %w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func (s *SQLiteRecordStore) ListAll(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT group_code, arrived, start, break_start, break_end, lecture_end, break_duration, lecture_duration, notes
FROM lectures
ORDER BY rowid ASC;
`)
	if err != nil {
		return nil, fmt.Errorf("list lectures: %w: %w", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	out := make([]domain.Record, 0)
	for rows.Next() {
		var cols [9]sql.NullString
		if err := rows.Scan(&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &cols[6], &cols[7], &cols[8]); err != nil {
			return nil, fmt.Errorf("scan lecture: %w: %w", apperrors.ErrStorage, err)
		}
		out = append(out, domain.Record{
			GroupCode:       cols[0].String,
			Arrived:         cols[1].String,
			Start:           cols[2].String,
			BreakStart:      cols[3].String,
			BreakEnd:        cols[4].String,
			LectureEnd:      cols[5].String,
			BreakDuration:   cols[6].String,
			LectureDuration: cols[7].String,
			Notes:           cols[8].String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lectures: %w: %w", apperrors.ErrStorage, err)
	}
	return out, nil
}

func (s *SQLiteRecordStore) Close() error {
	return s.db.Close()
}

func nullable(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
