package smirks

// AngleSmirks is a harmonic angle parameter covering atom triples.
type AngleSmirks struct {
	Pattern     string   `json:"smirks" yaml:"smirks"`
	AtomIndices TupleSet `json:"atoms" yaml:"atoms"`

	K     string `json:"k,omitempty" yaml:"k,omitempty"`
	Angle string `json:"angle,omitempty" yaml:"angle,omitempty"`
}

// NewAngleSmirks builds an angle parameter for the given pattern covering
// the given atom triples.
func NewAngleSmirks(pattern string, atoms ...Tuple) *AngleSmirks {
	return &AngleSmirks{Pattern: pattern, AtomIndices: NewTupleSet(atoms...)}
}

func (a *AngleSmirks) Type() ParameterType { return Angles }

func (a *AngleSmirks) Smirks() string { return a.Pattern }

func (a *AngleSmirks) Atoms() TupleSet {
	if a.AtomIndices == nil {
		a.AtomIndices = NewTupleSet()
	}
	return a.AtomIndices
}

func (a *AngleSmirks) RecordFields() map[string]string {
	return map[string]string{
		FieldSmirks:       a.Pattern,
		"k":               a.K,
		"angle":           a.Angle,
		FieldParameterize: "k, angle",
	}
}

func (a *AngleSmirks) ApplyRecord(fields map[string]string, clearExisting bool) {
	if clearExisting {
		a.K = ""
		a.Angle = ""
	}
	if v, ok := fields["k"]; ok {
		a.K = v
	}
	if v, ok := fields["angle"]; ok {
		a.Angle = v
	}
}
