package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tenantfinder/pkg/domain"
)

// PgDiscovery is the row layout of the discoveries table.
type PgDiscovery struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	TenantID string    `db:"tenant_id"`
	MaxIndex int       `db:"max_index"`

	Status string          `db:"status"`
	Result json.RawMessage `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgDiscovery) ToDomain() (*domain.Discovery, error) {
	var result domain.TenantDiscoveryResult
	if len(p.Result) > 0 {
		if err := json.Unmarshal(p.Result, &result); err != nil {
			return nil, fmt.Errorf("could not unmarshal discovery result: %w", err)
		}
	}
	if result.TenantID == "" {
		result.TenantID = p.TenantID
	}
	if result.ImplementationTenants == nil {
		result.ImplementationTenants = []domain.ImplementationTenant{}
	}

	return &domain.Discovery{
		ID:        domain.DiscoveryID(p.ID),
		TenantID:  p.TenantID,
		MaxIndex:  p.MaxIndex,
		Status:    domain.DiscoveryStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgDiscovery) FromDomain(d domain.Discovery) error {
	result, err := json.Marshal(d.Result)
	if err != nil {
		return fmt.Errorf("could not marshal discovery result: %w", err)
	}

	*p = PgDiscovery{
		ID:       uuid.UUID(d.ID),
		TenantID: d.TenantID,
		MaxIndex: d.MaxIndex,
		Status:   string(d.Status),
		Result:   result,
		Attempts: d.Attempts,
		LastError: sql.NullString{
			String: d.LastError,
			Valid:  d.LastError != "",
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  d.UpdatedAt,
			Valid: !d.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  d.DeletedAt,
			Valid: !d.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainDiscoveriesToPg(discoveries []domain.Discovery) ([]PgDiscovery, error) {
	out := make([]PgDiscovery, len(discoveries))
	for i := range out {
		if err := out[i].FromDomain(discoveries[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgDiscoveriesToDomain(rows []PgDiscovery) ([]domain.Discovery, error) {
	out := make([]domain.Discovery, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
