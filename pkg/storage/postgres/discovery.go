package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/storage"
)

const (
	discoveriesTable = "discoveries"
)

func (p *PgSQL) StoreDiscoveries(ctx context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error) {
	if len(discoveries) == 0 {
		return nil, nil
	}

	rows, err := domainDiscoveriesToPg(discoveries)
	if err != nil {
		return nil, err
	}

	var result []PgDiscovery
	if err := p.Builder.Insert(discoveriesTable).
		Rows(rows).
		Returning(&PgDiscovery{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store discoveries into pg: %w", err)
	}

	return pgDiscoveriesToDomain(result)
}

// updateRecord builds the SET clause shared by the update methods.
func updateRecord(updates storage.DiscoveryUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     string(updates.Status),
	}
	if updates.Status == domain.DiscoveryStatusFailed && updates.MaxAttempts > 0 {
		// keep the row pending until the retry budget is spent
		rec["status"] = goqu.Case().
			When(goqu.L("attempts + 1 >= ?", updates.MaxAttempts), string(domain.DiscoveryStatusFailed)).
			Else(goqu.I("status"))
	}
	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = string(b)
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

func keyWhere(tenantID string, maxIndex int) []exp.Expression {
	return []exp.Expression{
		goqu.I("tenant_id").Eq(tenantID),
		goqu.I("max_index").Eq(maxIndex),
		goqu.I("deleted_at").IsNull(),
	}
}

// UpdatePendingDiscoveries updates all pending discoveries of the given key.
func (p *PgSQL) UpdatePendingDiscoveries(
	ctx context.Context,
	tenantID string,
	maxIndex int,
	updates storage.DiscoveryUpdates,
) error {
	rec, err := updateRecord(updates)
	if err != nil {
		return err
	}

	where := append(keyWhere(tenantID, maxIndex), goqu.I("status").Eq(string(domain.DiscoveryStatusPending)))
	_, err = p.Builder.Update(discoveriesTable).
		Set(rec).
		Where(where...).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending discoveries in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) PendingDiscoveryCount(ctx context.Context, tenantID string, maxIndex int) (int64, error) {
	where := append(keyWhere(tenantID, maxIndex), goqu.I("status").Eq(string(domain.DiscoveryStatusPending)))
	count, err := p.Builder.From(discoveriesTable).
		Where(where...).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending discoveries in pg: %w", err)
	}

	return count, nil
}

// UpdateDiscoveryByID updates a single discovery and returns the updated row.
func (p *PgSQL) UpdateDiscoveryByID(
	ctx context.Context,
	id domain.DiscoveryID,
	updates storage.DiscoveryUpdates,
) (*domain.Discovery, error) {
	rec, err := updateRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgDiscovery
	found, err := p.Builder.Update(discoveriesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgDiscovery{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update discovery in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteDiscovery performs a soft delete by setting the deleted_at timestamp,
// returning the deleted record.
func (p *PgSQL) DeleteDiscovery(ctx context.Context, id domain.DiscoveryID) (*domain.Discovery, error) {
	var row PgDiscovery
	found, err := p.Builder.Update(discoveriesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgDiscovery{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete discovery in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Discoveries returns a page of discoveries ordered by created_at DESC, id DESC.
func (p *PgSQL) Discoveries(ctx context.Context, filter storage.DiscoveryFilter) (storage.DiscoveryPage, error) {
	w := []exp.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if filter.TenantID != "" {
		w = append(w, goqu.I("tenant_id").Eq(filter.TenantID))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if !filter.Cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(filter.Cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := filter.Limit + 1
	ds := p.Builder.From(discoveriesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgDiscovery
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.DiscoveryPage{}, fmt.Errorf("could not fetch discoveries from pg: %w", err)
	}

	page := storage.DiscoveryPage{}
	if uint(len(rows)) > filter.Limit {
		rows = rows[:filter.Limit]
		if len(rows) > 0 {
			next := rows[len(rows)-1].CreatedAt
			page.NextCursor = &next
		}
	}

	domainRows, err := pgDiscoveriesToDomain(rows)
	if err != nil {
		return storage.DiscoveryPage{}, err
	}
	page.Discoveries = domainRows

	return page, nil
}

// DiscoveryByID returns a discovery by its ID, excluding soft-deleted rows.
func (p *PgSQL) DiscoveryByID(ctx context.Context, id domain.DiscoveryID) (*domain.Discovery, error) {
	var row PgDiscovery
	found, err := p.Builder.From(discoveriesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch discovery by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastCompletedDiscovery returns the most recently updated completed discovery
// of the given key.
func (p *PgSQL) LastCompletedDiscovery(ctx context.Context, tenantID string, maxIndex int) (*domain.Discovery, error) {
	where := append(keyWhere(tenantID, maxIndex), goqu.I("status").Eq(string(domain.DiscoveryStatusCompleted)))

	var row PgDiscovery
	found, err := p.Builder.From(discoveriesTable).
		Where(where...).
		Order(goqu.I("updated_at").Desc().NullsLast(), goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed discovery: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
