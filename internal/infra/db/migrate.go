package db

import (
	"database/sql"
	"fmt"
)

// MigrateUp creates the catalog schema for the given driver. Statements
// are idempotent so the service can run them on every start.
func MigrateUp(database *sql.DB, driver string) error {
	var stmts []string
	switch driver {
	case DriverPostgres:
		stmts = postgresSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("MigrateUp: unsupported driver %q", driver)
	}

	for _, stmt := range stmts {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("MigrateUp: %w", err)
		}
	}
	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS articles (
    id            SERIAL PRIMARY KEY,
    title         TEXT NOT NULL,
    content       TEXT NOT NULL,
    summary       TEXT NOT NULL,
    image_url     TEXT NOT NULL DEFAULT '',
    category      TEXT NOT NULL,
    published_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    comment_count INTEGER NOT NULL DEFAULT 0,
    featured      BOOLEAN NOT NULL DEFAULT FALSE
)`,
	`CREATE TABLE IF NOT EXISTS reviews (
    id           SERIAL PRIMARY KEY,
    title        TEXT NOT NULL,
    content      TEXT NOT NULL,
    summary      TEXT NOT NULL,
    image_url    TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL,
    rating       INTEGER NOT NULL,
    published_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    author       TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
    id              SERIAL PRIMARY KEY,
    email           TEXT NOT NULL UNIQUE,
    subscribed_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    accepted_policy BOOLEAN NOT NULL DEFAULT TRUE
)`,
	`CREATE TABLE IF NOT EXISTS users (
    id       SERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(LOWER(category))`,
	`CREATE INDEX IF NOT EXISTS idx_articles_featured ON articles(featured) WHERE featured`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_published_at ON reviews(published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_category ON reviews(LOWER(category))`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS articles (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    title         TEXT NOT NULL,
    content       TEXT NOT NULL,
    summary       TEXT NOT NULL,
    image_url     TEXT NOT NULL DEFAULT '',
    category      TEXT NOT NULL,
    published_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    comment_count INTEGER NOT NULL DEFAULT 0,
    featured      BOOLEAN NOT NULL DEFAULT FALSE
)`,
	`CREATE TABLE IF NOT EXISTS reviews (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    title        TEXT NOT NULL,
    content      TEXT NOT NULL,
    summary      TEXT NOT NULL,
    image_url    TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL,
    rating       INTEGER NOT NULL,
    published_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    author       TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    email           TEXT NOT NULL UNIQUE,
    subscribed_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    accepted_policy BOOLEAN NOT NULL DEFAULT TRUE
)`,
	`CREATE TABLE IF NOT EXISTS users (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_featured ON articles(featured)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_published_at ON reviews(published_at DESC)`,
}
