package report

import (
	"database/sql"

	"codeberg.org/mutker/errchain"
)

// initSchema initializes the database schema for failure reports
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS report (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            recorded_at INTEGER NOT NULL,
            root_cause TEXT NOT NULL,
            chain TEXT NOT NULL,
            depth INTEGER NOT NULL
        )
    `)
	if err != nil {
		return errchain.Wrap(err, "initializing report schema")
	}

	return nil
}
