package datacenter_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tenantfinder/pkg/datacenter"
	"tenantfinder/pkg/domain"
)

func entry(id string) domain.DataCenter {
	return domain.DataCenter{
		ID:                 id,
		ProductionTemplate: "https://" + strings.ToLower(id) + ".example.com/{id}/login",
		SandboxTemplate:    "https://" + strings.ToLower(id) + "-impl.example.com/{id}/login",
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		entries   []domain.DataCenter
		sentinels []string
		wantErr   error
	}{
		{name: "no entries", wantErr: datacenter.ErrNoEntries},
		{name: "empty id", entries: []domain.DataCenter{{ProductionTemplate: "https://x/{id}", SandboxTemplate: "https://y/{id}"}}, wantErr: datacenter.ErrEmptyID},
		{name: "duplicate id", entries: []domain.DataCenter{entry("DC1"), entry("DC1")}, wantErr: datacenter.ErrDuplicateID},
		{
			name: "missing placeholder",
			entries: []domain.DataCenter{{
				ID: "DC1", ProductionTemplate: "https://x/login", SandboxTemplate: "https://y/{id}/login",
			}},
			wantErr: datacenter.ErrBadPlaceholder,
		},
		{
			name: "two placeholders",
			entries: []domain.DataCenter{{
				ID: "DC1", ProductionTemplate: "https://x/{id}/login", SandboxTemplate: "https://y/{id}/{id}",
			}},
			wantErr: datacenter.ErrBadPlaceholder,
		},
		{name: "bad sentinel", entries: []domain.DataCenter{entry("DC1")}, sentinels: []string{"not a url"}, wantErr: datacenter.ErrInvalidSentinel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datacenter.New(tt.entries, tt.sentinels)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_RejectsNonHTTPScheme(t *testing.T) {
	_, err := datacenter.New([]domain.DataCenter{{
		ID: "DC1", ProductionTemplate: "ftp://x/{id}", SandboxTemplate: "https://y/{id}",
	}}, nil)
	require.Error(t, err)
}

func TestRegistry_LookupsAndOrder(t *testing.T) {
	r, err := datacenter.New([]domain.DataCenter{entry("DC3"), entry("DC1"), entry("DC2")}, []string{"https://x/invalid-url"})
	require.NoError(t, err)

	ids := make([]string, 0, r.Len())
	for _, dc := range r.Enumerate() {
		ids = append(ids, dc.ID)
	}
	require.Equal(t, []string{"DC3", "DC1", "DC2"}, ids, "enumeration must keep registration order")

	tmpl, ok := r.ProductionTemplate("DC1")
	require.True(t, ok)
	require.Equal(t, "https://dc1.example.com/{id}/login", tmpl)

	tmpl, ok = r.SandboxTemplate("DC2")
	require.True(t, ok)
	require.Equal(t, "https://dc2-impl.example.com/{id}/login", tmpl)

	_, ok = r.SandboxTemplate("DC9")
	require.False(t, ok)

	require.Equal(t, []string{
		"https://x/invalid-url",
		"https://dc3.example.com/invalid-url",
		"https://dc3-impl.example.com/invalid-url",
		"https://dc1.example.com/invalid-url",
		"https://dc1-impl.example.com/invalid-url",
		"https://dc2.example.com/invalid-url",
		"https://dc2-impl.example.com/invalid-url",
	}, r.Sentinels())
}

func TestNew_SentinelOrigins(t *testing.T) {
	r, err := datacenter.New([]domain.DataCenter{
		{ID: "A", ProductionTemplate: "https://a.example.com/{id}/login", SandboxTemplate: "https://shared.example.com/{id}/login"},
		{ID: "B", ProductionTemplate: "https://b.example.com/{id}/login", SandboxTemplate: "https://shared.example.com/{id}/login"},
		{ID: "C", ProductionTemplate: "https://{id}.example.com/login", SandboxTemplate: "https://c.example.com/{id}/login"},
	}, []string{"https://a.example.com/err/invalid-url?x=1"})
	require.NoError(t, err)

	require.Equal(t, []string{
		"https://a.example.com/err/invalid-url?x=1",
		"https://shared.example.com/err/invalid-url?x=1",
		"https://b.example.com/err/invalid-url?x=1",
		"https://c.example.com/err/invalid-url?x=1",
	}, r.Sentinels())

	none, err := datacenter.New([]domain.DataCenter{entry("DC1")}, nil)
	require.NoError(t, err)
	require.Empty(t, none.Sentinels())
}

func TestRegistry_EnumerateReturnsCopy(t *testing.T) {
	r, err := datacenter.New([]domain.DataCenter{entry("DC1")}, nil)
	require.NoError(t, err)

	list := r.Enumerate()
	list[0].ID = "changed"

	dc, ok := r.Lookup("DC1")
	require.True(t, ok)
	require.Equal(t, "DC1", dc.ID)
}

func TestDefault(t *testing.T) {
	r := datacenter.Default()
	require.Equal(t, 11, r.Len())

	first := r.Enumerate()[0]
	require.Equal(t, "DC1", first.ID)
	require.Equal(t, "https://www.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", first.ProductionTemplate)

	sandbox, ok := r.SandboxTemplate("DC503")
	require.True(t, ok)
	require.Equal(t, "https://impl.wd503.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", sandbox)

	sentinels := r.Sentinels()
	require.Equal(t, datacenter.DefaultSentinel, sentinels[0])
	require.Len(t, sentinels, 22, "one sentinel per distinct template host")
	require.Contains(t, sentinels, "https://wd5.myworkday.com/wday/authgwy/invalid-url")
	require.Contains(t, sentinels, "https://impl.workday.com/wday/authgwy/invalid-url")
	require.Contains(t, sentinels, "https://wd104-impl.workdaygov.com/wday/authgwy/invalid-url")
}

func TestSubstitute(t *testing.T) {
	require.Equal(t, "https://x/acme/login", datacenter.Substitute("https://x/{id}/login", "acme"))
	require.Equal(t, "https://x/a%2Fb/login", datacenter.Substitute("https://x/{id}/login", "a/b"))
}

func TestDerivations(t *testing.T) {
	const tmpl = "https://x/{id}/login"

	preview := datacenter.DerivePreview(tmpl)
	require.Equal(t, "https://x/{id}_Preview/login", preview)
	require.Equal(t, preview, datacenter.DerivePreview(preview), "derivation must be idempotent")
	require.Equal(t, "https://x/acme_Preview/login", datacenter.Substitute(preview, "acme"))

	central := datacenter.DeriveCentral(tmpl)
	require.Equal(t, "https://x/{id}_cc/login", central)
	require.Equal(t, central, datacenter.DeriveCentral(central))

	// no "/{id}/" segment: nothing to derive
	require.Equal(t, "https://x/acme/login", datacenter.DerivePreview("https://x/acme/login"))
	require.Equal(t, "https://x/?t={id}", datacenter.DeriveCentral("https://x/?t={id}"))
}

func TestDeriveURLs(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		tenant  string
		preview string
		central string
	}{
		{
			name:    "concrete url",
			in:      "https://x/acme/login",
			tenant:  "acme",
			preview: "https://x/acme_Preview/login",
			central: "https://x/acme_cc/login",
		},
		{
			name:    "template",
			in:      "https://x/{id}/login",
			tenant:  "acme",
			preview: "https://x/{id}_Preview/login",
			central: "https://x/{id}_cc/login",
		},
		{
			name:    "query kept",
			in:      "https://impl.workday.com/wday/authgwy/acme/login.htmld?redirect=n",
			tenant:  "acme",
			preview: "https://impl.workday.com/wday/authgwy/acme_Preview/login.htmld?redirect=n",
			central: "https://impl.workday.com/wday/authgwy/acme_cc/login.htmld?redirect=n",
		},
		{
			name:    "escaped tenant",
			in:      "https://x/a%20b/login",
			tenant:  "a b",
			preview: "https://x/a%20b_Preview/login",
			central: "https://x/a%20b_cc/login",
		},
		{
			name:    "no tenant segment",
			in:      "https://acme.example.com/login",
			tenant:  "acme",
			preview: "https://acme.example.com/login",
			central: "https://acme.example.com/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preview := datacenter.DerivePreviewURL(tt.in, tt.tenant)
			require.Equal(t, tt.preview, preview)
			require.Equal(t, preview, datacenter.DerivePreviewURL(preview, tt.tenant))

			central := datacenter.DeriveCentralURL(tt.in, tt.tenant)
			require.Equal(t, tt.central, central)
			require.Equal(t, central, datacenter.DeriveCentralURL(central, tt.tenant))
		})
	}

	tmpl := "https://x/{id}/login"
	require.Equal(t,
		datacenter.Substitute(datacenter.DerivePreview(tmpl), "acme"),
		datacenter.DerivePreviewURL(datacenter.Substitute(tmpl, "acme"), "acme"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yml")
	content := `sentinels:
  - https://example.com/invalid-url
dataCenters:
  - id: EU
    name: Europe
    productionTemplate: https://eu.example.com/{id}/login
    sandboxTemplate: https://eu-impl.example.com/{id}/login
  - id: US
    productionTemplate: https://us.example.com/{id}/login
    sandboxTemplate: https://us-impl.example.com/{id}/login
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := datacenter.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
	require.Equal(t, "https://example.com/invalid-url", r.Sentinels()[0])
	require.Contains(t, r.Sentinels(), "https://us-impl.example.com/invalid-url")

	eu, ok := r.Lookup("EU")
	require.True(t, ok)
	require.Equal(t, "Europe", eu.Name)
}

func TestLoad_DefaultSentinelAndErrors(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "registry.yml")
	require.NoError(t, os.WriteFile(path, []byte(`dataCenters:
  - id: EU
    productionTemplate: https://eu.example.com/{id}/login
    sandboxTemplate: https://eu-impl.example.com/{id}/login
`), 0o600))
	r, err := datacenter.Load(path)
	require.NoError(t, err)
	require.Equal(t, datacenter.DefaultSentinel, r.Sentinels()[0])
	require.Contains(t, r.Sentinels(), "https://eu.example.com/wday/authgwy/invalid-url")

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("dataCenters: []\n"), 0o600))
	_, err = datacenter.Load(bad)
	require.ErrorIs(t, err, datacenter.ErrNoEntries)

	_, err = datacenter.Load(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}
