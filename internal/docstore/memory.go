package docstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store used in tests and for local runs without a
// database.
type Memory struct {
	mu   sync.RWMutex
	cols map[string][]Document
}

func NewMemory() *Memory {
	return &Memory{cols: make(map[string][]Document)}
}

func (m *Memory) Insert(_ context.Context, collection string, doc Document) (string, error) {
	id := uuid.NewString()
	stored := cloneDocument(doc)
	stored["id"] = id
	m.mu.Lock()
	m.cols[collection] = append(m.cols[collection], stored)
	m.mu.Unlock()
	return id, nil
}

func (m *Memory) List(_ context.Context, collection, userID string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Document, 0)
	for _, doc := range m.cols[collection] {
		if owner, _ := doc["user_id"].(string); owner == userID {
			out = append(out, cloneDocument(doc))
		}
	}
	return out, nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Collections(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.cols))
	for name := range m.cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Close(context.Context) error { return nil }

// cloneDocument copies the top level so callers cannot mutate stored state.
func cloneDocument(doc Document) Document {
	out := make(Document, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	return out
}
