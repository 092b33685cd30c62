package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/RaikyD/order-notify-service/internal/domain"
)

type OrderRepo interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpsertOrder(ctx context.Context, o *domain.Order) error
	// SetStatus overwrites only the status field and returns the updated
	// record. Unknown id is a no-op: nil record, nil error.
	SetStatus(ctx context.Context, id string, st domain.Status) (*domain.Order, error)
}

// snapshotRecord is the on-disk shape, keyed by order id at the top level.
type snapshotRecord struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// MemoryRepository keeps orders in a mutex-guarded map and, when a path
// is given, rewrites a JSON snapshot on every mutation. Writes happen
// under the lock so concurrent updates cannot lose each other.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Order
	path string
}

// NewMemoryRepository loads the snapshot at path when it exists. An
// absent or empty file starts an empty store; a corrupt one is an error.
func NewMemoryRepository(path string) (*MemoryRepository, error) {
	r := &MemoryRepository{
		byID: make(map[string]domain.Order),
		path: path,
	}
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return r, nil
	}

	var snap map[string]snapshotRecord
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("orders snapshot %s: %w", path, err)
	}
	for id, rec := range snap {
		r.byID[id] = domain.Order{
			ID:     id,
			Name:   rec.Name,
			Phone:  rec.Phone,
			Status: domain.Status(rec.Status),
		}
	}
	return r, nil
}

func (r *MemoryRepository) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *MemoryRepository) UpsertOrder(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[o.ID] = *o
	return r.persistLocked()
}

func (r *MemoryRepository) SetStatus(_ context.Context, id string, st domain.Status) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	o.Status = st
	r.byID[id] = o

	if err := r.persistLocked(); err != nil {
		return nil, err
	}
	return &o, nil
}

// persistLocked rewrites the whole snapshot. Caller holds the write lock.
func (r *MemoryRepository) persistLocked() error {
	if r.path == "" {
		return nil
	}

	snap := make(map[string]snapshotRecord, len(r.byID))
	for id, o := range r.byID {
		snap[id] = snapshotRecord{
			Name:   o.Name,
			Phone:  o.Phone,
			Status: string(o.Status),
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}
