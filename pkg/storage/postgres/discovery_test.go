package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/storage"
)

func pending(tenantID string, maxIndex int) domain.Discovery {
	return domain.Discovery{
		TenantID: tenantID,
		MaxIndex: maxIndex,
		Status:   domain.DiscoveryStatusPending,
		Result:   domain.TenantDiscoveryResult{TenantID: tenantID},
	}
}

func TestPgSQL_StoreDiscoveries(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("store single discovery", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreDiscoveries(ctx, pending("acme", 10))
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "acme", res[0].TenantID)
		require.Equal(t, 10, res[0].MaxIndex)
		require.Equal(t, domain.DiscoveryStatusPending, res[0].Status)
		require.NotEqual(t, uuid.Nil, uuid.UUID(res[0].ID))
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store multiple discoveries", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreDiscoveries(ctx, pending("acme", 5), pending("globex", 5))
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store nothing", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreDiscoveries(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_UpdatePendingDiscoveries(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreDiscoveries(ctx, pending("acme", 10), pending("acme", 10), pending("acme", 20))
	require.NoError(t, err)

	count, err := pgSQL.PendingDiscoveryCount(ctx, "acme", 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	result := &domain.TenantDiscoveryResult{
		TenantID:      "acme",
		DataCenter:    "DC1",
		ProductionURL: "https://wd1.example.com/acme/login",
		ImplementationTenants: []domain.ImplementationTenant{
			{Index: 2, Label: "IMPL2", URL: "https://x/acme2/login"},
		},
	}
	empty := ""
	require.NoError(t, pgSQL.UpdatePendingDiscoveries(ctx, "acme", 10, storage.DiscoveryUpdates{
		Status:    domain.DiscoveryStatusCompleted,
		Result:    result,
		LastError: &empty,
	}))

	for _, d := range stored[:2] {
		got, err := pgSQL.DiscoveryByID(ctx, d.ID)
		require.NoError(t, err)
		require.Equal(t, domain.DiscoveryStatusCompleted, got.Status)
		require.Equal(t, uint(1), got.Attempts)
		require.Equal(t, *result, got.Result)
	}

	other, err := pgSQL.DiscoveryByID(ctx, stored[2].ID)
	require.NoError(t, err)
	require.Equal(t, domain.DiscoveryStatusPending, other.Status)

	count, err = pgSQL.PendingDiscoveryCount(ctx, "acme", 10)
	require.NoError(t, err)
	require.Zero(t, count)

	last, err := pgSQL.LastCompletedDiscovery(ctx, "acme", 10)
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, "DC1", last.Result.DataCenter)

	none, err := pgSQL.LastCompletedDiscovery(ctx, "acme", 20)
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestPgSQL_UpdatePendingDiscoveries_failedAfterMaxAttempts(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreDiscoveries(ctx, pending("acme", 10))
	require.NoError(t, err)
	id := stored[0].ID

	msg := "boom"
	fail := storage.DiscoveryUpdates{Status: domain.DiscoveryStatusFailed, LastError: &msg, MaxAttempts: 2}

	require.NoError(t, pgSQL.UpdatePendingDiscoveries(ctx, "acme", 10, fail))
	got, err := pgSQL.DiscoveryByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.DiscoveryStatusPending, got.Status)
	require.Equal(t, "boom", got.LastError)
	require.Equal(t, uint(1), got.Attempts)

	require.NoError(t, pgSQL.UpdatePendingDiscoveries(ctx, "acme", 10, fail))
	got, err = pgSQL.DiscoveryByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.DiscoveryStatusFailed, got.Status)
	require.Equal(t, uint(2), got.Attempts)
}

func TestPgSQL_UpdateDiscoveryByID(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreDiscoveries(ctx, pending("acme", 10))
	require.NoError(t, err)

	updated, err := pgSQL.UpdateDiscoveryByID(ctx, stored[0].ID, storage.DiscoveryUpdates{
		Status: domain.DiscoveryStatusCompleted,
		Result: &domain.TenantDiscoveryResult{TenantID: "acme"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.DiscoveryStatusCompleted, updated.Status)
	require.False(t, updated.UpdatedAt.IsZero())

	missing, err := pgSQL.UpdateDiscoveryByID(ctx, domain.DiscoveryID(uuid.New()), storage.DiscoveryUpdates{
		Status: domain.DiscoveryStatusCompleted,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteDiscovery(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreDiscoveries(ctx, pending("acme", 10))
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteDiscovery(ctx, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.False(t, deleted.DeletedAt.IsZero())

	again, err := pgSQL.DeleteDiscovery(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, again)

	got, err := pgSQL.DiscoveryByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)

	count, err := pgSQL.PendingDiscoveryCount(ctx, "acme", 10)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestPgSQL_Discoveries_Pagination(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := pgSQL.StoreDiscoveries(ctx, pending("acme", 10))
		require.NoError(t, err)
		// distinct created_at values keep the cursor strict
		time.Sleep(5 * time.Millisecond)
	}
	_, err := pgSQL.StoreDiscoveries(ctx, pending("globex", 10))
	require.NoError(t, err)

	page, err := pgSQL.Discoveries(ctx, storage.DiscoveryFilter{TenantID: "acme", Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Discoveries, 2)
	require.NotNil(t, page.NextCursor)
	require.True(t, page.Discoveries[0].CreatedAt.After(page.Discoveries[1].CreatedAt))

	seen := len(page.Discoveries)
	for page.NextCursor != nil {
		page, err = pgSQL.Discoveries(ctx, storage.DiscoveryFilter{TenantID: "acme", Cursor: *page.NextCursor, Limit: 2})
		require.NoError(t, err)
		seen += len(page.Discoveries)
	}
	require.Equal(t, 5, seen)

	all, err := pgSQL.Discoveries(ctx, storage.DiscoveryFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all.Discoveries, 6)
	require.Nil(t, all.NextCursor)

	completed, err := pgSQL.Discoveries(ctx, storage.DiscoveryFilter{Status: domain.DiscoveryStatusCompleted, Limit: 10})
	require.NoError(t, err)
	require.Empty(t, completed.Discoveries)
}

func TestPgSQL_DiscoveryByID_notFound(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	got, err := pgSQL.DiscoveryByID(context.Background(), domain.DiscoveryID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got)
}
