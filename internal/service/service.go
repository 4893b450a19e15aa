package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nalin-pixel/selfmastery-api/internal/docstore"
	"github.com/nalin-pixel/selfmastery-api/internal/schema"

	"go.uber.org/zap"
)

// Service implements validated persistence and plan synthesis over a
// document store. Now is the service clock; tests pin it for deterministic
// dates and timestamps.
type Service struct {
	Store   docstore.Store
	Schemas *schema.Registry
	Log     *zap.Logger
	Now     func() time.Time
}

func New(store docstore.Store, schemas *schema.Registry, log *zap.Logger) *Service {
	return &Service{Store: store, Schemas: schemas, Log: log, Now: time.Now}
}

// CreateRecord validates payload against the kind's schema and inserts the
// resulting document. Kinds that declare creation timestamps (profile,
// preferences) get them assigned by the server at insert time.
func (s *Service) CreateRecord(ctx context.Context, kind string, payload map[string]any) (string, error) {
	doc, err := s.Schemas.Validate(kind, payload)
	if err != nil {
		return "", err
	}
	if s.Schemas.HasField(kind, "created_at") {
		now := s.Now().UTC().Format(time.RFC3339)
		doc["created_at"] = now
		doc["updated_at"] = now
	}
	id, err := s.Store.Insert(ctx, kind, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", kind, err)
	}
	return id, nil
}

// ListRecords returns the user's documents of one kind in insertion order.
func (s *Service) ListRecords(ctx context.Context, kind, userID string) ([]docstore.Document, error) {
	docs, err := s.Store.List(ctx, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	if docs == nil {
		docs = []docstore.Document{}
	}
	return docs, nil
}

// Diagnostics is the best-effort storage status served by /test. Env
// presence flags stay null while storage is unconfigured.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnose reports storage health without ever failing. urlSet and nameSet
// say whether the connection env vars were present, never their values.
func (s *Service) Diagnose(ctx context.Context, urlSet, nameSet bool) Diagnostics {
	d := Diagnostics{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	err := s.Store.Ping(ctx)
	if errors.Is(err, docstore.ErrNotConfigured) {
		return d
	}
	d.DatabaseURL = presenceFlag(urlSet)
	d.DatabaseName = presenceFlag(nameSet)
	if err != nil {
		d.Database = "error: " + truncate(err.Error(), 80)
		return d
	}
	d.Database = "connected"
	d.ConnectionStatus = "connected"
	names, err := s.Store.Collections(ctx)
	if err != nil {
		d.Database = "error: " + truncate(err.Error(), 80)
		return d
	}
	if names != nil {
		d.Collections = names
	}
	return d
}

func presenceFlag(set bool) *string {
	v := "not set"
	if set {
		v = "set"
	}
	return &v
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
