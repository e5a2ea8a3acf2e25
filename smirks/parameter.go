package smirks

import "fmt"

// Field names shared with the force-field record format.
const (
	// FieldSmirks carries the SMIRKS pattern in a serialized record.
	FieldSmirks = "smirks"

	// FieldParameterize marks which value fields a downstream optimizer may
	// fit. Records written with the marker stripped are treated as fixed.
	FieldParameterize = "parameterize"
)

// Parameter is the closed family of SMIRKS-keyed parameter schemas:
// AtomSmirks, BondSmirks, AngleSmirks and TorsionSmirks. Implementations are
// mutable records owned by the caller; the force-field editor reads and
// updates them but never takes ownership.
type Parameter interface {
	// Type returns the parameter handler this parameter belongs to.
	Type() ParameterType

	// Smirks returns the SMIRKS pattern, the unique key within the type.
	Smirks() string

	// Atoms returns the set of atom-index tuples this pattern is known to
	// cover within a molecule. The returned set is live and may be added to.
	Atoms() TupleSet

	// RecordFields serializes the parameter to the force-field record
	// format, including the SMIRKS pattern and the parameterize marker.
	RecordFields() map[string]string

	// ApplyRecord overwrites the parameter's value fields from a record's
	// attributes. When clearExisting is set, value fields are reset to their
	// zero values before the record values are applied; otherwise record
	// values overlay whatever is present. The atoms set is never touched.
	ApplyRecord(fields map[string]string, clearExisting bool)
}

// Equal reports whether two parameters are the same for deduplication
// purposes: same type and same SMIRKS pattern. Value fields and covered
// atoms are deliberately ignored.
func Equal(a, b Parameter) bool {
	return a.Type() == b.Type() && a.Smirks() == b.Smirks()
}

// FromRecord builds a typed parameter of the given type from a force-field
// record's attributes. The record must carry a SMIRKS pattern.
func FromRecord(t ParameterType, fields map[string]string) (Parameter, error) {
	pattern, ok := fields[FieldSmirks]
	if !ok || pattern == "" {
		return nil, fmt.Errorf("record has no smirks pattern")
	}
	var p Parameter
	switch t {
	case Vdw:
		p = NewAtomSmirks(pattern)
	case Bonds:
		p = NewBondSmirks(pattern)
	case Angles:
		p = NewAngleSmirks(pattern)
	case ProperTorsions:
		p = NewTorsionSmirks(pattern)
	default:
		return nil, fmt.Errorf("unknown parameter type %q", t)
	}
	p.ApplyRecord(fields, false)
	return p, nil
}
