package forcefield

import "github.com/openforcefield/bespoke-fit/smirks"

// Labels is the result of typing a molecule against a force field: for each
// parameter type, the record governing each atom-index tuple the molecule
// contains.
type Labels map[smirks.ParameterType]map[smirks.Tuple]*ParameterRecord

// Record returns the record governing the given atoms under the given
// parameter type.
func (l Labels) Record(t smirks.ParameterType, atoms smirks.Tuple) (*ParameterRecord, bool) {
	byAtoms, ok := l[t]
	if !ok {
		return nil, false
	}
	rec, ok := byAtoms[atoms]
	return rec, ok
}

// Assign sets the record governing the given atoms. Used by Labeler
// implementations to build up an assignment.
func (l Labels) Assign(t smirks.ParameterType, atoms smirks.Tuple, rec *ParameterRecord) {
	byAtoms, ok := l[t]
	if !ok {
		byAtoms = make(map[smirks.Tuple]*ParameterRecord)
		l[t] = byAtoms
	}
	byAtoms[atoms] = rec
}
