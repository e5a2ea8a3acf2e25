package smirks

// BondSmirks is a harmonic bond parameter covering atom pairs.
type BondSmirks struct {
	Pattern     string   `json:"smirks" yaml:"smirks"`
	AtomIndices TupleSet `json:"atoms" yaml:"atoms"`

	K      string `json:"k,omitempty" yaml:"k,omitempty"`
	Length string `json:"length,omitempty" yaml:"length,omitempty"`
}

// NewBondSmirks builds a bond parameter for the given pattern covering the
// given atom pairs.
func NewBondSmirks(pattern string, atoms ...Tuple) *BondSmirks {
	return &BondSmirks{Pattern: pattern, AtomIndices: NewTupleSet(atoms...)}
}

func (b *BondSmirks) Type() ParameterType { return Bonds }

func (b *BondSmirks) Smirks() string { return b.Pattern }

func (b *BondSmirks) Atoms() TupleSet {
	if b.AtomIndices == nil {
		b.AtomIndices = NewTupleSet()
	}
	return b.AtomIndices
}

func (b *BondSmirks) RecordFields() map[string]string {
	return map[string]string{
		FieldSmirks:       b.Pattern,
		"k":               b.K,
		"length":          b.Length,
		FieldParameterize: "k, length",
	}
}

func (b *BondSmirks) ApplyRecord(fields map[string]string, clearExisting bool) {
	if clearExisting {
		b.K = ""
		b.Length = ""
	}
	if v, ok := fields["k"]; ok {
		b.K = v
	}
	if v, ok := fields["length"]; ok {
		b.Length = v
	}
}
