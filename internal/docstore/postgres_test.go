package docstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func setupPostgres(t *testing.T) *postgresStore {
	t.Helper()
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	schema := fmt.Sprintf("test_%d", time.Now().UnixNano())
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s", schema))
		return err
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := pool.Exec(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema)); err != nil {
		pool.Close()
		t.Fatalf("create schema: %v", err)
	}
	store := &postgresStore{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		t.Fatalf("create tables: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, fmt.Sprintf("DROP SCHEMA %s CASCADE", schema))
		pool.Close()
	})
	return store
}

func TestPostgresRoundTrip(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()

	id, err := store.Insert(ctx, "habit", Document{
		"user_id":  "u1",
		"name":     "Read",
		"streak":   int64(4),
		"schedule": []string{"mon", "wed"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == "" {
		t.Fatalf("expected backend-assigned id")
	}

	docs, err := store.List(ctx, "habit", "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	want := Document{
		"id":       id,
		"user_id":  "u1",
		"name":     "Read",
		"streak":   float64(4),
		"schedule": []any{"mon", "wed"},
	}
	if diff := cmp.Diff(want, docs[0]); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestPostgresOrderAndUserFilter(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := store.Insert(ctx, "task", Document{"user_id": "u1", "title": title}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if _, err := store.Insert(ctx, "task", Document{"user_id": "u2", "title": "other"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	docs, err := store.List(ctx, "task", "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for i, title := range []string{"first", "second", "third"} {
		if docs[i]["title"] != title {
			t.Fatalf("insertion order not preserved: %v", docs)
		}
	}
}

func TestPostgresCollections(t *testing.T) {
	store := setupPostgres(t)
	ctx := context.Background()

	for _, name := range []string{"task", "habit", "task"} {
		if _, err := store.Insert(ctx, name, Document{"user_id": "u1"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	names, err := store.Collections(ctx)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	if diff := cmp.Diff([]string{"habit", "task"}, names); diff != "" {
		t.Fatalf("collections mismatch (-want +got):\n%s", diff)
	}
}

func TestPostgresPing(t *testing.T) {
	store := setupPostgres(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
