// Package workflow models multi-stage reference-data collection for a
// single molecule: each stage is one quantum-chemistry calculation whose
// results feed the next stage or the fitting target. Stages are passive
// records; the execution driver that submits jobs and advances statuses
// lives outside this module.
package workflow

import (
	"errors"

	bespokefit "github.com/openforcefield/bespoke-fit"
)

// CollectionMethod names the kind of reference data a stage collects.
type CollectionMethod string

const (
	TorsionDrive1D CollectionMethod = "torsiondrive1d"
	TorsionDrive2D CollectionMethod = "torsiondrive2d"
	Optimization   CollectionMethod = "optimization"
	Hessian        CollectionMethod = "hessian"
	Energy         CollectionMethod = "energy"
	Gradient       CollectionMethod = "gradient"

	// Local marks a function executed locally rather than submitted to the
	// quantum-chemistry queue.
	Local CollectionMethod = "local"
)

// Precedence is a scheduling hint for the execution driver: Parallel stages
// may be dispatched concurrently with siblings in the same workflow, Serial
// stages may not. This module attaches no concurrency semantics of its own.
type Precedence string

const (
	Serial   Precedence = "serial"
	Parallel Precedence = "parallel"
)

// ErrNoResults indicates a read of stage results before the stage has
// collected any.
var ErrNoResults = errors.New("workflow stage has no results")

// Stage is one unit of reference-data collection. It is a mutable record:
// the execution driver advances Status, fills in JobID, bumps Retries on
// failure, and populates Result once collection completes.
type Stage struct {
	// Method selects the calculation this stage performs.
	Method CollectionMethod `json:"method" yaml:"method"`

	// Status starts at StatusPrepared and is advanced externally. Result is
	// only populated once the status indicates completion.
	Status bespokefit.Status `json:"status" yaml:"status"`

	// Precedence hints whether the driver may run this stage concurrently
	// with its siblings.
	Precedence Precedence `json:"precedence" yaml:"precedence"`

	// Result holds one record per calculation once collected; nil before.
	Result []*bespokefit.SingleResult `json:"result,omitempty" yaml:"result,omitempty"`

	// Keywords are stage-specific execution options passed through to the
	// submission system.
	Keywords map[string]any `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Retries counts failures; it is advisory state for the driver's retry
	// policy, nothing here acts on it.
	Retries int `json:"retries" yaml:"retries"`

	// JobID is the handle assigned by the submission system; empty until
	// submitted.
	JobID string `json:"job_id" yaml:"job_id"`
}

// NewStage builds a stage in the prepared state with serial precedence.
func NewStage(method CollectionMethod) *Stage {
	return &Stage{
		Method:     method,
		Status:     bespokefit.StatusPrepared,
		Precedence: Serial,
	}
}

// ResultGeometries extracts the geometry from each collected result, tagged
// with the bohr length unit, in result order. It fails with ErrNoResults if
// the stage has not collected anything; callers must wait for collection
// before asking for geometries.
func (s *Stage) ResultGeometries() ([]bespokefit.Quantity, error) {
	if len(s.Result) == 0 {
		return nil, ErrNoResults
	}
	geometries := make([]bespokefit.Quantity, 0, len(s.Result))
	for _, result := range s.Result {
		geometries = append(geometries, bespokefit.Quantity{
			Value: result.Molecule.Geometry,
			Unit:  bespokefit.Bohr,
		})
	}
	return geometries, nil
}
