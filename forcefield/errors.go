package forcefield

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openforcefield/bespoke-fit/smirks"
)

// ErrNoLabeler indicates a labeling request against a force field that has
// no topology labeler configured.
var ErrNoLabeler = errors.New("force field has no topology labeler configured")

// NotFoundError indicates that no parameter record exists for a SMIRKS
// pattern or atom tuple that an operation required to be present.
type NotFoundError struct {
	Type   smirks.ParameterType
	Smirks string
	Atoms  smirks.Tuple
}

func (e *NotFoundError) Error() string {
	if e.Smirks != "" {
		return fmt.Sprintf("%s parameter with smirks %q not found", e.Type, e.Smirks)
	}
	return fmt.Sprintf("no %s parameter assigned to atoms %s", e.Type, e.Atoms)
}

// AmbiguousClusterError indicates that the atoms clustered onto one proposed
// parameter are governed by more than one existing parameter in the force
// field. This means the caller's clustering merged atoms the force field
// treats separately; repairing it silently would corrupt the fitting target,
// so it always surfaces.
type AmbiguousClusterError struct {
	Smirks string
	IDs    []string
}

func (e *AmbiguousClusterError) Error() string {
	return fmt.Sprintf(
		"atoms clustered under smirks %q are governed by %d distinct parameters (%s)",
		e.Smirks, len(e.IDs), strings.Join(e.IDs, ", "),
	)
}
