package smirks

// AtomSmirks is a van der Waals parameter covering single atoms.
type AtomSmirks struct {
	Pattern     string   `json:"smirks" yaml:"smirks"`
	AtomIndices TupleSet `json:"atoms" yaml:"atoms"`

	// Value fields, carried as opaque unit-tagged strings.
	Epsilon  string `json:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	RMinHalf string `json:"rmin_half,omitempty" yaml:"rmin_half,omitempty"`
}

// NewAtomSmirks builds a vdW parameter for the given pattern covering the
// given atoms.
func NewAtomSmirks(pattern string, atoms ...Tuple) *AtomSmirks {
	return &AtomSmirks{Pattern: pattern, AtomIndices: NewTupleSet(atoms...)}
}

func (a *AtomSmirks) Type() ParameterType { return Vdw }

func (a *AtomSmirks) Smirks() string { return a.Pattern }

func (a *AtomSmirks) Atoms() TupleSet {
	if a.AtomIndices == nil {
		a.AtomIndices = NewTupleSet()
	}
	return a.AtomIndices
}

func (a *AtomSmirks) RecordFields() map[string]string {
	return map[string]string{
		FieldSmirks:       a.Pattern,
		"epsilon":         a.Epsilon,
		"rmin_half":       a.RMinHalf,
		FieldParameterize: "epsilon, rmin_half",
	}
}

func (a *AtomSmirks) ApplyRecord(fields map[string]string, clearExisting bool) {
	if clearExisting {
		a.Epsilon = ""
		a.RMinHalf = ""
	}
	if v, ok := fields["epsilon"]; ok {
		a.Epsilon = v
	}
	if v, ok := fields["rmin_half"]; ok {
		a.RMinHalf = v
	}
}
