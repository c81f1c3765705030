package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CoveragePolicy holds per-location coverage thresholds keyed by location
// name, overriding the configured defaults. Locations absent from the file
// use the defaults.
type CoveragePolicy struct {
	Defaults  CoverageThresholds            `yaml:"defaults"`
	Locations map[string]CoverageThresholds `yaml:"locations"`
}

// CoverageThresholds are the enforced minimums for a single location
type CoverageThresholds struct {
	RequiredCoverage    int `yaml:"required_coverage"`
	MaxConcurrentBreaks int `yaml:"max_concurrent_breaks"`
}

// LoadCoveragePolicy reads the optional coverage policy file. A missing file
// is not an error; the returned policy then carries only the config defaults.
func LoadCoveragePolicy(path string, cfg *Config) (*CoveragePolicy, error) {
	policy := &CoveragePolicy{
		Defaults: CoverageThresholds{
			RequiredCoverage:    cfg.DefaultRequiredCoverage,
			MaxConcurrentBreaks: cfg.DefaultMaxConcurrentBreaks,
		},
		Locations: map[string]CoverageThresholds{},
	}

	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return policy, nil
		}
		return nil, fmt.Errorf("error reading coverage policy file: %w", err)
	}

	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("error unmarshaling coverage policy: %w", err)
	}

	if policy.Defaults.RequiredCoverage < 0 || policy.Defaults.MaxConcurrentBreaks < 0 {
		return nil, fmt.Errorf("coverage policy thresholds must be non-negative")
	}
	for name, th := range policy.Locations {
		if th.RequiredCoverage < 0 || th.MaxConcurrentBreaks < 0 {
			return nil, fmt.Errorf("coverage policy for location %q must be non-negative", name)
		}
	}

	if policy.Locations == nil {
		policy.Locations = map[string]CoverageThresholds{}
	}

	return policy, nil
}

// ThresholdsFor resolves the thresholds for a location name
func (p *CoveragePolicy) ThresholdsFor(locationName string) CoverageThresholds {
	if th, ok := p.Locations[locationName]; ok {
		return th
	}
	return p.Defaults
}
