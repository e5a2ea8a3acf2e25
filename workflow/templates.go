package workflow

import (
	"fmt"
	"sort"
)

// Pre-built collection workflows. Each constructor returns fresh stage
// records because stages are mutated in place by the execution driver.

// OptimizationWorkflow collects an optimized geometry.
func OptimizationWorkflow() []*Stage {
	return []*Stage{NewStage(Optimization)}
}

// TorsiondriveWorkflow collects a one-dimensional torsion scan.
func TorsiondriveWorkflow() []*Stage {
	return []*Stage{NewStage(TorsionDrive1D)}
}

// HessianWorkflow optimizes the geometry and then collects a Hessian at the
// optimized structure.
func HessianWorkflow() []*Stage {
	return []*Stage{
		NewStage(Optimization),
		NewStage(Hessian),
	}
}

// RespWorkflow optimizes the geometry, collects single-point energies, and
// finishes with a local charge-fitting step.
func RespWorkflow() []*Stage {
	return []*Stage{
		NewStage(Optimization),
		NewStage(Energy),
		NewStage(Local),
	}
}

var templates = map[string]func() []*Stage{
	"optimization": OptimizationWorkflow,
	"torsiondrive": TorsiondriveWorkflow,
	"hessian":      HessianWorkflow,
	"resp":         RespWorkflow,
}

// Template instantiates a pre-built workflow by name.
func Template(name string) ([]*Stage, error) {
	build, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown workflow template %q (have %v)", name, TemplateNames())
	}
	return build(), nil
}

// TemplateNames lists the pre-built workflow names, sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
