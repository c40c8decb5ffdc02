package discovery

import (
	"tenantfinder/internal/config"
)

// Strategy selects how implementation tenants are scanned.
type Strategy string

const (
	// StrategyEarlyStop probes the first indices sequentially and gives up after
	// EarlyStopThreshold consecutive misses; once a tenant is found the rest of
	// the range is probed in parallel.
	StrategyEarlyStop Strategy = config.StrategyEarlyStop
	// StrategyExhaustive probes every index in parallel.
	StrategyExhaustive Strategy = config.StrategyExhaustive
)

const (
	DefaultLocatorWorkers     = 8
	DefaultScannerWorkers     = 10
	DefaultMaxIndex           = 10
	DefaultMaxIndexLimit      = 50
	DefaultEarlyStopThreshold = 3
)

// Options configure an Engine. Zero values fall back to the defaults above and
// to StrategyEarlyStop.
type Options struct {
	// LocatorWorkers bounds concurrent production probes.
	LocatorWorkers int
	// ScannerWorkers bounds concurrent implementation tenant probes.
	ScannerWorkers int
	// MaxIndex is used by Discover when the caller passes a non-positive index.
	MaxIndex int
	// MaxIndexLimit is the highest index a caller may ask for.
	MaxIndexLimit int
	// Strategy is the implementation tenant scan strategy.
	Strategy Strategy
	// EarlyStopThreshold is the number of consecutive misses that abandon an
	// early-stop scan before anything was found.
	EarlyStopThreshold int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LocatorWorkers:     cfg.Discovery.LocatorWorkers,
		ScannerWorkers:     cfg.Discovery.ScannerWorkers,
		MaxIndex:           cfg.Discovery.MaxIndex,
		MaxIndexLimit:      cfg.Discovery.MaxIndexLimit,
		Strategy:           Strategy(cfg.Discovery.Strategy),
		EarlyStopThreshold: cfg.Discovery.EarlyStopThreshold,
	}
}

func (o Options) withDefaults() Options {
	if o.LocatorWorkers <= 0 {
		o.LocatorWorkers = DefaultLocatorWorkers
	}
	if o.ScannerWorkers <= 0 {
		o.ScannerWorkers = DefaultScannerWorkers
	}
	if o.MaxIndexLimit <= 0 {
		o.MaxIndexLimit = DefaultMaxIndexLimit
	}
	if o.MaxIndex <= 0 {
		o.MaxIndex = DefaultMaxIndex
	}
	if o.MaxIndex > o.MaxIndexLimit {
		o.MaxIndex = o.MaxIndexLimit
	}
	if o.Strategy != StrategyExhaustive {
		o.Strategy = StrategyEarlyStop
	}
	if o.EarlyStopThreshold <= 0 {
		o.EarlyStopThreshold = DefaultEarlyStopThreshold
	}

	return o
}
