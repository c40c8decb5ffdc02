package datacenter

import (
	"fmt"

	"tenantfinder/pkg/domain"
)

const loginPath = "/wday/authgwy/" + Placeholder + "/login.htmld?redirect=n"

// DefaultSentinel is the page the service redirects to for unknown tenants.
const DefaultSentinel = "https://www.myworkday.com/wday/authgwy/invalid-url"

// defaultEntries mirrors the publicly known Workday data centers. Order matters:
// it is the priority order reported when several candidates validate.
var defaultEntries = []domain.DataCenter{ //nolint: gochecknoglobals
	dc("DC1", "1", "https://www.myworkday.com", "https://impl.workday.com"),
	dc("DC3", "3", "https://wd3.myworkday.com", "https://wd3-impl.workday.com"),
	dc("DC5", "5", "https://wd5.myworkday.com", "https://wd5-impl.workday.com"),
	dc("DC10", "10", "https://wd10.myworkday.com", "https://wd10-impl.workday.com"),
	dc("DC12", "12", "https://wd12.myworkday.com", "https://impl.wd12.myworkday.com"),
	dc("DC102", "102", "https://wd102.myworkday.com", "https://wd102-impl.workday.com"),
	dc("DC103", "103", "https://wd103.myworkday.com", "https://wd103-impl.workday.com"),
	dc("DC104", "104", "https://wd104.myworkdaygov.com", "https://wd104-impl.workdaygov.com"),
	dc("DC105", "105", "https://wd105.myworkday.com", "https://wd105-impl.workday.com"),
	dc("DC501", "501", "https://wd501.myworkday.com", "https://wd501-impl.workday.com"),
	dc("DC503", "503", "https://wd503.myworkday.com", "https://impl.wd503.myworkday.com"),
}

func dc(id, number, production, sandbox string) domain.DataCenter {
	return domain.DataCenter{
		ID:                 id,
		Name:               "Data Center " + number,
		ProductionTemplate: production + loginPath,
		SandboxTemplate:    sandbox + loginPath,
	}
}

// Default returns the built-in registry.
func Default() *Registry {
	r, err := New(defaultEntries, []string{DefaultSentinel})
	if err != nil {
		panic(fmt.Sprintf("invalid built-in registry: %v", err))
	}

	return r
}
