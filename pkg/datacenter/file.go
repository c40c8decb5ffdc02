package datacenter

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"tenantfinder/pkg/domain"
)

// File is the on-disk representation of a registry.
//
//	sentinels:
//	  - https://www.myworkday.com/wday/authgwy/invalid-url
//	dataCenters:
//	  - id: DC1
//	    name: Data Center 1
//	    productionTemplate: https://www.myworkday.com/wday/authgwy/{id}/login.htmld
//	    sandboxTemplate: https://impl.workday.com/wday/authgwy/{id}/login.htmld
type File struct {
	Sentinels   []string            `yaml:"sentinels"`
	DataCenters []domain.DataCenter `yaml:"dataCenters"`
}

// Load reads a registry file (YAML or JSON, chosen by extension) and validates
// it. A file without sentinels falls back to DefaultSentinel.
func Load(path string) (*Registry, error) {
	var f File
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("could not read registry file: %w", err)
	}
	if len(f.Sentinels) == 0 {
		f.Sentinels = []string{DefaultSentinel}
	}

	r, err := New(f.DataCenters, f.Sentinels)
	if err != nil {
		return nil, fmt.Errorf("invalid registry file %s: %w", path, err)
	}

	return r, nil
}
