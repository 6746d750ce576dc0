package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// Foreign keys and a busy timeout are enabled on every pooled connection.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS novels (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			text TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS chapters (
			id TEXT PRIMARY KEY,
			novel_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			html_content TEXT,
			start_index INTEGER NOT NULL,
			end_index INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 5,
			FOREIGN KEY (novel_id) REFERENCES novels(id) ON DELETE CASCADE,
			UNIQUE (novel_id, position)
		);`,
		`CREATE TABLE IF NOT EXISTS annotations (
			id TEXT PRIMARY KEY,
			novel_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			text TEXT NOT NULL,
			start_index INTEGER NOT NULL,
			end_index INTEGER NOT NULL,
			tag_ids TEXT NOT NULL DEFAULT '[]',
			is_potentially_misaligned BOOLEAN,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (novel_id) REFERENCES novels(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_annotations_novel ON annotations (novel_id, start_index);`,
		`CREATE TABLE IF NOT EXISTS plot_anchors (
			id TEXT PRIMARY KEY,
			novel_id TEXT NOT NULL,
			storyline_id TEXT NOT NULL,
			title TEXT NOT NULL,
			position INTEGER NOT NULL,
			FOREIGN KEY (novel_id) REFERENCES novels(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_plot_anchors_novel ON plot_anchors (novel_id, position);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
