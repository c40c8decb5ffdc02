package finder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tenantfinder/internal/finder"
	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/serrors"
	"tenantfinder/pkg/storage"
	mockstorage "tenantfinder/pkg/storage/mock"
)

const tenant = "acme"

func newTestFinder(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, finder.Finder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	f := finder.New(st, finder.Options{
		MaxAttempts:     3,
		ResultCacheTTL:  time.Hour,
		DefaultMaxIndex: 10,
		MaxIndexLimit:   50,
	})

	return ctrl, st, f
}

// expectWithTx wires Storage.WithTx to run the callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func storeEcho(tx *mockstorage.MockAllStorage) {
	tx.EXPECT().StoreDiscoveries(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error) {
			discoveries[0].ID = domain.DiscoveryID(uuid.New())

			return discoveries, nil
		},
	)
}

func TestFinder_Enqueue_JobAdded(t *testing.T) {
	ctrl, st, f := newTestFinder(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		storeEcho(tx)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				job, ok := args.(finder.JobArgs)
				require.True(t, ok)
				require.Equal(t, tenant, job.TenantID)
				require.Equal(t, 20, job.MaxIndex)
				require.Equal(t, 3, job.InsertOpts().MaxAttempts)
				require.Equal(t, time.Hour, job.InsertOpts().UniqueOpts.ByPeriod)

				return true, nil
			},
		)
	})

	d, err := f.Enqueue(context.Background(), tenant, 20)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, tenant, d.TenantID)
	require.Equal(t, 20, d.MaxIndex)
	require.Equal(t, domain.DiscoveryStatusPending, d.Status)
}

func TestFinder_Enqueue_DefaultMaxIndex(t *testing.T) {
	ctrl, st, f := newTestFinder(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		storeEcho(tx)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	d, err := f.Enqueue(context.Background(), tenant, 0)
	require.NoError(t, err)
	require.Equal(t, 10, d.MaxIndex)
}

func TestFinder_Enqueue_UsesLastCompletedResult(t *testing.T) {
	ctrl, st, f := newTestFinder(t)
	completed := domain.Discovery{Result: domain.TenantDiscoveryResult{TenantID: tenant, DataCenter: "DC1"}}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		storeEcho(tx)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedDiscovery(gomock.Any(), tenant, 10).Return(&completed, nil)
		tx.EXPECT().UpdateDiscoveryByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.DiscoveryID, updates storage.DiscoveryUpdates) (*domain.Discovery, error) {
				require.Equal(t, domain.DiscoveryStatusCompleted, updates.Status)
				require.NotNil(t, updates.Result)

				return &domain.Discovery{Status: domain.DiscoveryStatusCompleted, Result: *updates.Result}, nil
			},
		)
	})

	d, err := f.Enqueue(context.Background(), tenant, 10)
	require.NoError(t, err)
	require.Equal(t, domain.DiscoveryStatusCompleted, d.Status)
	require.Equal(t, "DC1", d.Result.DataCenter)
}

func TestFinder_Enqueue_PendingWhenJobExistsWithoutResult(t *testing.T) {
	ctrl, st, f := newTestFinder(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		storeEcho(tx)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedDiscovery(gomock.Any(), tenant, 10).Return(nil, nil)
	})

	d, err := f.Enqueue(context.Background(), tenant, 10)
	require.NoError(t, err)
	require.Equal(t, domain.DiscoveryStatusPending, d.Status)
}

func TestFinder_Enqueue_RejectsMisuse(t *testing.T) {
	_, _, f := newTestFinder(t)

	// no storage expectations: any call would fail the test
	for _, tc := range []struct {
		tenant   string
		maxIndex int
	}{
		{"", 10},
		{"ac me", 10},
		{"a/b", 10},
		{tenant, -1},
		{tenant, 51},
	} {
		_, err := f.Enqueue(context.Background(), tc.tenant, tc.maxIndex)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "%+v", tc)
	}
}

func TestFinder_Enqueue_PropagatesErrors(t *testing.T) {
	ctrl, st, f := newTestFinder(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDiscoveries(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})
	_, err := f.Enqueue(context.Background(), tenant, 10)
	require.ErrorContains(t, err, "store err")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		storeEcho(tx)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})
	_, err = f.Enqueue(context.Background(), tenant, 10)
	require.ErrorContains(t, err, "add err")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		storeEcho(tx)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedDiscovery(gomock.Any(), tenant, 10).Return(nil, errors.New("last err"))
	})
	_, err = f.Enqueue(context.Background(), tenant, 10)
	require.ErrorContains(t, err, "last err")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		storeEcho(tx)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedDiscovery(gomock.Any(), tenant, 10).Return(&domain.Discovery{}, nil)
		tx.EXPECT().UpdateDiscoveryByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("update err"))
	})
	_, err = f.Enqueue(context.Background(), tenant, 10)
	require.ErrorContains(t, err, "update err")
}

func TestFinder_Discoveries_Pagination(t *testing.T) {
	_, st, f := newTestFinder(t)
	cursorTime := time.Date(2026, 3, 4, 5, 6, 7, 123456789, time.UTC)
	next := cursorTime.Add(-time.Minute)

	st.EXPECT().Discoveries(gomock.Any(), storage.DiscoveryFilter{
		TenantID: tenant,
		Status:   domain.DiscoveryStatusCompleted,
		Cursor:   cursorTime,
		Limit:    10,
	}).Return(storage.DiscoveryPage{
		Discoveries: []domain.Discovery{{TenantID: tenant}},
		NextCursor:  &next,
	}, nil)

	got, cursor, err := f.Discoveries(context.Background(), tenant, domain.DiscoveryStatusCompleted,
		cursorTime.Format(time.RFC3339Nano), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, next.Format(time.RFC3339Nano), cursor)
}

func TestFinder_Discoveries_LastPage(t *testing.T) {
	_, st, f := newTestFinder(t)
	st.EXPECT().Discoveries(gomock.Any(), gomock.Any()).Return(storage.DiscoveryPage{}, nil)

	got, cursor, err := f.Discoveries(context.Background(), "", "", "", 5)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Empty(t, cursor)
}

func TestFinder_Discoveries_BadInput(t *testing.T) {
	_, _, f := newTestFinder(t)

	_, _, err := f.Discoveries(context.Background(), tenant, "", "not-a-time", 5)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, _, err = f.Discoveries(context.Background(), tenant, "DONE", "", 5)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestFinder_Result(t *testing.T) {
	_, st, f := newTestFinder(t)
	id := domain.DiscoveryID(uuid.New())

	st.EXPECT().DiscoveryByID(gomock.Any(), id).Return(&domain.Discovery{TenantID: tenant}, nil)
	d, err := f.Result(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, tenant, d.TenantID)

	st.EXPECT().DiscoveryByID(gomock.Any(), id).Return(nil, nil)
	_, err = f.Result(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().DiscoveryByID(gomock.Any(), id).Return(nil, errors.New("db down"))
	_, err = f.Result(context.Background(), id)
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
}

func TestFinder_Delete(t *testing.T) {
	_, st, f := newTestFinder(t)
	id := domain.DiscoveryID(uuid.New())

	st.EXPECT().DeleteDiscovery(gomock.Any(), id).Return(&domain.Discovery{}, nil)
	require.NoError(t, f.Delete(context.Background(), id))

	st.EXPECT().DeleteDiscovery(gomock.Any(), id).Return(nil, nil)
	require.ErrorIs(t, f.Delete(context.Background(), id), serrors.ErrNotFound)
}
