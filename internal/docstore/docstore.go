// Package docstore provides the document storage capability behind the API.
// A Store keeps one collection per record kind and owns no other state; the
// concrete backend is picked from the connection URL scheme.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned by every operation of the unconfigured store,
// used when no connection URL was provided at startup.
var ErrNotConfigured = errors.New("storage not configured")

// Document is one stored record. Listings carry the backend-assigned
// identifier under the "id" key.
type Document map[string]any

type Store interface {
	// Insert stores doc in the named collection and returns its new id.
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	// List returns the collection's documents for one user in insertion order.
	List(ctx context.Context, collection, userID string) ([]Document, error)
	// Ping verifies connectivity.
	Ping(ctx context.Context) error
	// Collections returns the names of collections that exist in the backend.
	Collections(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}

// Open selects a backend from the URL scheme. An empty URL yields the
// unconfigured store so the server can boot and report the state instead of
// failing. dbName is the logical database name and is only meaningful for
// backends that do not carry it in the URL (MongoDB).
func Open(ctx context.Context, url, dbName string) (Store, error) {
	switch {
	case url == "":
		return Unconfigured(), nil
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return newMongoStore(ctx, url, dbName)
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return newPostgresStore(ctx, url)
	case strings.HasPrefix(url, "sqlite://"):
		return newSQLiteStore(ctx, strings.TrimPrefix(url, "sqlite://"))
	case strings.HasPrefix(url, "file:"):
		return newSQLiteStore(ctx, url)
	case url == "memory://":
		return NewMemory(), nil
	default:
		scheme, _, _ := strings.Cut(url, "://")
		return nil, fmt.Errorf("unsupported storage scheme %q", scheme)
	}
}

// Unconfigured returns a store whose every operation reports
// ErrNotConfigured.
func Unconfigured() Store {
	return unconfigured{}
}

type unconfigured struct{}

func (unconfigured) Insert(context.Context, string, Document) (string, error) {
	return "", ErrNotConfigured
}

func (unconfigured) List(context.Context, string, string) ([]Document, error) {
	return nil, ErrNotConfigured
}

func (unconfigured) Ping(context.Context) error { return ErrNotConfigured }

func (unconfigured) Collections(context.Context) ([]string, error) {
	return nil, ErrNotConfigured
}

func (unconfigured) Close(context.Context) error { return nil }
