package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/RaikyD/order-notify-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_UpsertAndGet(t *testing.T) {
	repo, err := NewMemoryRepository("")
	require.NoError(t, err)
	ctx := context.Background()

	ord := &domain.Order{ID: "1001", Name: "Ana", Phone: "+15551234567", Status: domain.StatusConfirmed}
	require.NoError(t, repo.UpsertOrder(ctx, ord))

	got, err := repo.GetOrder(ctx, "1001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *ord, *got)

	got, err = repo.GetOrder(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryRepository_SetStatus(t *testing.T) {
	repo, err := NewMemoryRepository("")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.UpsertOrder(ctx, &domain.Order{ID: "1", Name: "Ana", Phone: "+1", Status: domain.StatusConfirmed}))

	got, err := repo.SetStatus(ctx, "1", domain.StatusPacked)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusPacked, got.Status)
	assert.Equal(t, "Ana", got.Name)

	stored, err := repo.GetOrder(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPacked, stored.Status)
}

func TestMemoryRepository_SetStatusUnknownIsNoop(t *testing.T) {
	repo, err := NewMemoryRepository("")
	require.NoError(t, err)

	got, err := repo.SetStatus(context.Background(), "ghost", domain.StatusDelivered)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryRepository_SnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	ctx := context.Background()

	repo, err := NewMemoryRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.UpsertOrder(ctx, &domain.Order{ID: "1001", Name: "Ana", Phone: "+15551234567", Status: domain.StatusConfirmed}))
	_, err = repo.SetStatus(ctx, "1001", domain.StatusShipped)
	require.NoError(t, err)

	// on-disk shape: id -> {name, phone, status}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, "Ana", snap["1001"]["name"])
	assert.Equal(t, "Shipped", snap["1001"]["status"])

	reopened, err := NewMemoryRepository(path)
	require.NoError(t, err)
	got, err := reopened.GetOrder(ctx, "1001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusShipped, got.Status)
	assert.Equal(t, "+15551234567", got.Phone)
}

func TestMemoryRepository_MissingOrEmptyFile(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewMemoryRepository(filepath.Join(dir, "absent.json"))
	require.NoError(t, err)
	got, err := repo.GetOrder(context.Background(), "1")
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = NewMemoryRepository(empty)
	require.NoError(t, err)
}

func TestMemoryRepository_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := NewMemoryRepository(path)
	assert.Error(t, err)
}
