package domain

// DataCenter is a single hosting region of the target service together with
// the URL templates of its two endpoint families. Templates contain exactly one
// tenant identifier placeholder.
type DataCenter struct {
	// ID is the short, stable identifier of the data center (e.g. "DC5").
	ID string `json:"id" yaml:"id"`
	// Name is a human-readable label (e.g. "Data Center 5").
	Name string `json:"name,omitempty" yaml:"name"`
	// ProductionTemplate is the login URL template of production tenants.
	ProductionTemplate string `json:"productionTemplate" yaml:"productionTemplate"`
	// SandboxTemplate is the login URL template of sandbox/implementation tenants.
	SandboxTemplate string `json:"sandboxTemplate" yaml:"sandboxTemplate"`
}

// ProbeOutcome is the immutable record of a single probe. An empty FinalURL or
// a zero StatusCode means no response was obtained.
type ProbeOutcome struct {
	RequestedURL string `json:"requestedUrl"`
	FinalURL     string `json:"finalUrl,omitempty"`
	StatusCode   int    `json:"statusCode,omitempty"`
	Valid        bool   `json:"valid"`
}

// Responded reports whether the probe obtained any HTTP response at all.
func (o ProbeOutcome) Responded() bool {
	return o.StatusCode != 0
}
