package smirks

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TorsionTerm is one periodic term of a proper torsion expansion.
type TorsionTerm struct {
	K           string `json:"k,omitempty" yaml:"k,omitempty"`
	Periodicity string `json:"periodicity,omitempty" yaml:"periodicity,omitempty"`
	Phase       string `json:"phase,omitempty" yaml:"phase,omitempty"`
	IdivF       string `json:"idivf,omitempty" yaml:"idivf,omitempty"`
}

// TorsionSmirks is a proper torsion parameter covering atom quadruples. Its
// value fields are an indexed expansion of periodic terms, serialized as
// k1/periodicity1/phase1/idivf1, k2/..., matching the force-field record
// format.
type TorsionSmirks struct {
	Pattern     string   `json:"smirks" yaml:"smirks"`
	AtomIndices TupleSet `json:"atoms" yaml:"atoms"`

	Terms map[int]TorsionTerm `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// NewTorsionSmirks builds a torsion parameter for the given pattern covering
// the given atom quadruples.
func NewTorsionSmirks(pattern string, atoms ...Tuple) *TorsionSmirks {
	return &TorsionSmirks{
		Pattern:     pattern,
		AtomIndices: NewTupleSet(atoms...),
		Terms:       make(map[int]TorsionTerm),
	}
}

func (t *TorsionSmirks) Type() ParameterType { return ProperTorsions }

func (t *TorsionSmirks) Smirks() string { return t.Pattern }

func (t *TorsionSmirks) Atoms() TupleSet {
	if t.AtomIndices == nil {
		t.AtomIndices = NewTupleSet()
	}
	return t.AtomIndices
}

// SetTerm stores one periodic term under its expansion index.
func (t *TorsionSmirks) SetTerm(index int, term TorsionTerm) {
	if t.Terms == nil {
		t.Terms = make(map[int]TorsionTerm)
	}
	t.Terms[index] = term
}

func (t *TorsionSmirks) termIndices() []int {
	indices := make([]int, 0, len(t.Terms))
	for i := range t.Terms {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

func (t *TorsionSmirks) RecordFields() map[string]string {
	fields := map[string]string{FieldSmirks: t.Pattern}
	tunable := make([]string, 0, len(t.Terms))
	for _, i := range t.termIndices() {
		term := t.Terms[i]
		fields["k"+strconv.Itoa(i)] = term.K
		fields["periodicity"+strconv.Itoa(i)] = term.Periodicity
		fields["phase"+strconv.Itoa(i)] = term.Phase
		fields["idivf"+strconv.Itoa(i)] = term.IdivF
		tunable = append(tunable, "k"+strconv.Itoa(i))
	}
	fields[FieldParameterize] = strings.Join(tunable, ", ")
	return fields
}

func (t *TorsionSmirks) ApplyRecord(fields map[string]string, clearExisting bool) {
	if clearExisting || t.Terms == nil {
		t.Terms = make(map[int]TorsionTerm)
	}
	for key, value := range fields {
		name, index, ok := splitTermKey(key)
		if !ok {
			continue
		}
		term := t.Terms[index]
		switch name {
		case "k":
			term.K = value
		case "periodicity":
			term.Periodicity = value
		case "phase":
			term.Phase = value
		case "idivf":
			term.IdivF = value
		}
		t.Terms[index] = term
	}
}

// splitTermKey parses an indexed torsion field name such as "k1" or
// "periodicity2" into its base name and expansion index.
func splitTermKey(key string) (string, int, bool) {
	for _, name := range []string{"periodicity", "phase", "idivf", "k"} {
		if !strings.HasPrefix(key, name) {
			continue
		}
		index, err := strconv.Atoi(key[len(name):])
		if err != nil || index < 1 {
			return "", 0, false
		}
		return name, index, true
	}
	return "", 0, false
}

func (t *TorsionSmirks) String() string {
	return fmt.Sprintf("TorsionSmirks(%s, %d terms)", t.Pattern, len(t.Terms))
}
