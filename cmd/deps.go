package main

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"tenantfinder/internal/config"
	"tenantfinder/internal/discovery"
	"tenantfinder/pkg/datacenter"
	"tenantfinder/pkg/probe"
)

// newRegistry returns the registry file named in the config, or the built-in
// registry when none is configured.
func newRegistry(cfg *config.Config) (*datacenter.Registry, error) {
	if cfg.Registry.Path == "" {
		return datacenter.Default(), nil
	}

	registry, err := datacenter.Load(cfg.Registry.Path)
	if err != nil {
		return nil, fmt.Errorf("could not load registry: %w", err)
	}

	return registry, nil
}

func newProbeOptions(cfg *config.Config, mp metric.MeterProvider) probe.Options {
	return probe.Options{
		Timeout:        cfg.Prober.Timeout,
		MaxAttempts:    cfg.Prober.MaxAttempts,
		InitialBackoff: cfg.Prober.InitialBackoff,
		MaxBackoff:     cfg.Prober.MaxBackoff,
		MaxRedirects:   cfg.Prober.MaxRedirects,
		UserAgent:      cfg.Prober.UserAgent,
		MaxBodyBytes:   cfg.Prober.MaxBodyBytes,
		RateLimit:      cfg.Prober.RateLimit,
		RateBurst:      cfg.Prober.RateBurst,
		MeterProvider:  mp,
	}
}

// newEngine builds the discovery engine and its prober from the config.
func newEngine(cfg *config.Config, mp metric.MeterProvider, options discovery.Options) (*discovery.Engine, error) {
	registry, err := newRegistry(cfg)
	if err != nil {
		return nil, err
	}

	prober, err := probe.New(nil, newProbeOptions(cfg, mp))
	if err != nil {
		return nil, fmt.Errorf("could not create prober: %w", err)
	}

	return discovery.New(registry, prober, nil, options), nil
}
