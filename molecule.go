package bespokefit

import "gonum.org/v1/gonum/mat"

// Molecule is an opaque reference to the molecule a fitting run targets.
// The chemistry itself (perception, substructure matching) is owned by
// external collaborators; this record only carries what the schemas need
// to round-trip.
type Molecule struct {
	// Name is a human-readable identifier for the molecule.
	Name string `json:"name" yaml:"name"`

	// Smiles is the mapped SMILES string identifying the molecule. It is
	// treated as an opaque key throughout this module.
	Smiles string `json:"smiles,omitempty" yaml:"smiles,omitempty"`

	// Geometry holds the conformer as an n_atoms x 3 matrix in bohr.
	Geometry *mat.Dense `json:"-" yaml:"-"`
}

// NumAtoms returns the number of atoms in the stored conformer, or zero
// when no geometry is set.
func (m *Molecule) NumAtoms() int {
	if m.Geometry == nil {
		return 0
	}
	rows, _ := m.Geometry.Dims()
	return rows
}
