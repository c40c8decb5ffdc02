package v1handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tenantfinder/internal/api/handler/v1handler"
	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/probe"
	"tenantfinder/pkg/serrors"
)

func TestListDataCenters(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/datacenters", "")

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[v1handler.DataCenterList](t, rec)
	require.Len(t, out.Items, 11)
	require.Equal(t, "DC1", out.Items[0].ID)
	require.Equal(t, "DC503", out.Items[10].ID)
}

func TestLocateProduction_Found(t *testing.T) {
	f := newFixture(t)
	match := &domain.ProductionMatch{DataCenter: "DC5", URL: "https://wd5.myworkday.com/wday/authgwy/acme/login.htmld?redirect=n"}
	f.discoverer.EXPECT().LocateProduction(gomock.Any(), "acme").Return(match, nil)

	rec := f.do(http.MethodGet, "/v1/tenants/acme/production", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, *match, decode[domain.ProductionMatch](t, rec))
}

func TestLocateProduction_Absent(t *testing.T) {
	f := newFixture(t)
	f.discoverer.EXPECT().LocateProduction(gomock.Any(), "ghost").Return(nil, nil)

	rec := f.do(http.MethodGet, "/v1/tenants/ghost/production", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, decode[v1handler.ErrorBody](t, rec).Message, "ghost")
}

func TestLocateProduction_Errors(t *testing.T) {
	f := newFixture(t)
	f.discoverer.EXPECT().LocateProduction(gomock.Any(), "a b").
		Return(nil, serrors.With(serrors.ErrBadRequest, "tenant identifier must not contain whitespace"))
	f.discoverer.EXPECT().LocateProduction(gomock.Any(), "slow").Return(nil, context.DeadlineExceeded)

	require.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/v1/tenants/a%20b/production", "").Code)
	require.Equal(t, http.StatusGatewayTimeout, f.do(http.MethodGet, "/v1/tenants/slow/production", "").Code)
}

func TestLocateProduction_Timeout(t *testing.T) {
	f := newFixture(t)
	match := &domain.ProductionMatch{DataCenter: "DC5", URL: "https://wd5.myworkday.com/wday/authgwy/acme/login.htmld?redirect=n"}
	f.discoverer.EXPECT().LocateProduction(gomock.Any(), "acme").
		DoAndReturn(func(ctx context.Context, _ string) (*domain.ProductionMatch, error) {
			timeout, ok := probe.TimeoutFromContext(ctx)
			require.True(t, ok)
			require.Equal(t, 1500*time.Millisecond, timeout)

			return match, nil
		})

	rec := f.do(http.MethodGet, "/v1/tenants/acme/production?timeout=1500ms", "")
	require.Equal(t, http.StatusOK, rec.Code)

	f.discoverer.EXPECT().LocateProduction(gomock.Any(), "acme").
		DoAndReturn(func(ctx context.Context, _ string) (*domain.ProductionMatch, error) {
			_, ok := probe.TimeoutFromContext(ctx)
			require.False(t, ok)

			return match, nil
		})
	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v1/tenants/acme/production", "").Code)
}

func TestLocateProduction_InvalidTimeout(t *testing.T) {
	f := newFixture(t)

	for _, q := range []string{"soon", "0s", "-1s", "11s"} {
		rec := f.do(http.MethodGet, "/v1/tenants/acme/production?timeout="+q, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, q)
		require.Equal(t, serrors.ErrBadRequest.Error(), decode[v1handler.ErrorBody](t, rec).Code, q)
	}
}
