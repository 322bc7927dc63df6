// Package pagecache persists fetched pages in sqlite so repeat runs
// against the stat sites stay inside their rate limits.
package pagecache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"time"

	"sportsref/lib/timezone"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("scrape/pagecache")

//go:embed schema.sql
var Schema string

type Cache struct {
	db *sql.DB
}

// Open creates or opens a cache database at path, ":memory:" included.
func Open(path string) (*Cache, error) {
	if path != ":memory:" {
		os.MkdirAll(filepath.Dir(path), 0777)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	return New(db)
}

// New initializes the cache schema on an existing database handle.
func New(db *sql.DB) (*Cache, error) {
	_, err := db.Exec(Schema)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached content for url. an entry past its expiry is
// deleted and reported as a miss.
func (c *Cache) Get(ctx context.Context, url string) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	var content string
	var expiresAt int64
	err := c.db.QueryRowContext(
		ctx,
		"SELECT content, expires_at FROM pages WHERE url = ?",
		url,
	).Scan(&content, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", false, err
	}

	if timezone.Now().Unix() >= expiresAt {
		span.AddEvent("deleting expired entry")
		_, err = c.db.ExecContext(ctx, "DELETE FROM pages WHERE url = ?", url)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return "", false, err
		}
		return "", false, nil
	}

	span.SetAttributes(attribute.Int("content_length", len(content)))
	return content, true, nil
}

// Put stores content for url, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, url, content string, expires time.Time) error {
	ctx, span := tracer.Start(ctx, "Put")
	defer span.End()
	span.SetAttributes(
		attribute.String("url", url),
		attribute.Int("content_length", len(content)),
	)

	_, err := c.db.ExecContext(
		ctx,
		`INSERT INTO pages (url, content, expires_at) VALUES (?, ?, ?)
		ON CONFLICT (url) DO UPDATE SET content = excluded.content, expires_at = excluded.expires_at`,
		url, content, expires.Unix(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Prune drops every expired entry and reports how many were removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Prune")
	defer span.End()

	res, err := c.db.ExecContext(
		ctx,
		"DELETE FROM pages WHERE expires_at <= ?",
		timezone.Now().Unix(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	removed, err := res.RowsAffected()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Int64("removed", removed))
	return removed, nil
}
