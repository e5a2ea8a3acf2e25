package bespokefit

import "gonum.org/v1/gonum/mat"

// Unit names the physical unit attached to a Quantity. No conversion logic
// lives in this module; units travel with values for downstream consumers.
type Unit string

const (
	// Bohr is the atomic length unit used for all geometries produced by
	// the quantum-chemistry collection stages.
	Bohr Unit = "bohr"
)

// Quantity wraps a raw geometry matrix with the unit it is expressed in.
type Quantity struct {
	Value *mat.Dense
	Unit  Unit
}

// SingleResult is one reference-data record returned by a quantum-chemistry
// calculation. Fields other than Molecule are populated depending on the
// collection method that produced the record.
type SingleResult struct {
	// ID is the record handle assigned by the external submission system.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Molecule references the molecule, including the final conformer.
	Molecule *Molecule `json:"molecule" yaml:"molecule"`

	// Energy is the total energy in hartree, when computed.
	Energy float64 `json:"energy,omitempty" yaml:"energy,omitempty"`

	// Gradient is the n_atoms x 3 energy gradient, when computed.
	Gradient *mat.Dense `json:"-" yaml:"-"`

	// Hessian is the 3n x 3n second-derivative matrix, when computed.
	Hessian *mat.Dense `json:"-" yaml:"-"`
}
