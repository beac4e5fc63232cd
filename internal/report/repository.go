package report

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"codeberg.org/mutker/errchain"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteSink struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSink opens the report database at cfg.DBPath, creating the file
// and its directory if necessary.
func NewSink(cfg Config) (Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
			return nil, errchain.Wrap(err, "creating report database directory")
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, errchain.Wrap(err, "opening report database")
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteSink{db: db}, nil
}

// Record stores one failure: its terminal root cause, the rendered
// context chain and the chain depth.
func (s *sqliteSink) Record(ctx context.Context, failure error) error {
	if failure == nil {
		return errchain.New("nothing to record: failure is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO report (recorded_at, root_cause, chain, depth)
        VALUES (?, ?, ?, ?)
    `,
		time.Now().Unix(),
		errchain.Root(failure).Error(),
		errchain.Render(failure),
		len(errchain.Messages(failure)),
	)
	if err != nil {
		return errchain.Wrap(err, "storing failure report")
	}

	return nil
}

func (s *sqliteSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return errchain.Wrap(err, "closing report database")
	}

	return nil
}
