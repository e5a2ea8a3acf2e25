// Package config loads fitting-schema configuration: which force field a
// bespoke fitting run starts from and which collection workflows produce
// reference data for each target.
package config

import (
	"fmt"

	"github.com/openforcefield/bespoke-fit/workflow"
)

// Config describes one bespoke fitting run.
type Config struct {
	// Name identifies the run.
	Name string `yaml:"Name,omitempty" json:"Name,omitempty"`

	// ForceField is the path of the initial force field to fit against.
	ForceField string `yaml:"ForceField" json:"ForceField"`

	// Logging controls the run's log output.
	Logging Logging `yaml:"Logging,omitempty" json:"Logging,omitempty"`

	// Targets are the reference-data targets the run fits to.
	Targets []*Target `yaml:"Targets,omitempty" json:"Targets,omitempty"`
}

// Logging holds logging configuration.
type Logging struct {
	Level string `yaml:"Level,omitempty" json:"Level,omitempty"`
}

// Target couples a named fitting target with the collection workflow that
// produces its reference data.
type Target struct {
	// Name identifies the target within the run.
	Name string `yaml:"Name" json:"Name"`

	// Workflow names a pre-built collection workflow template.
	Workflow string `yaml:"Workflow" json:"Workflow"`

	// Parameterize marks whether parameters proposed for this target stay
	// eligible for downstream optimization. Defaults to true.
	Parameterize *bool `yaml:"Parameterize,omitempty" json:"Parameterize,omitempty"`

	// Keywords are execution options applied to every stage of the
	// instantiated workflow.
	Keywords map[string]any `yaml:"Keywords,omitempty" json:"Keywords,omitempty"`
}

// ShouldParameterize resolves the Parameterize flag with its default.
func (t *Target) ShouldParameterize() bool {
	if t.Parameterize == nil {
		return true
	}
	return *t.Parameterize
}

// Validate checks the config for structural problems.
func (c *Config) Validate() error {
	if c.ForceField == "" {
		return fmt.Errorf("force field path required")
	}
	seen := make(map[string]bool)
	for i, target := range c.Targets {
		if target.Name == "" {
			return fmt.Errorf("target %d: name required", i)
		}
		if seen[target.Name] {
			return fmt.Errorf("duplicate target name %q", target.Name)
		}
		seen[target.Name] = true
		if _, err := workflow.Template(target.Workflow); err != nil {
			return fmt.Errorf("target %q: %w", target.Name, err)
		}
	}
	return nil
}

// BuildWorkflow instantiates the target's workflow template, applying the
// target's keywords to every stage. Stage records are fresh per call since
// the execution driver mutates them in place.
func BuildWorkflow(target *Target) ([]*workflow.Stage, error) {
	stages, err := workflow.Template(target.Workflow)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", target.Name, err)
	}
	for _, stage := range stages {
		if len(target.Keywords) == 0 {
			continue
		}
		stage.Keywords = make(map[string]any, len(target.Keywords))
		for k, v := range target.Keywords {
			stage.Keywords[k] = v
		}
	}
	return stages, nil
}
