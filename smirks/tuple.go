package smirks

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tuple is a fixed-arity tuple of atom indices within a molecule. Tuples are
// comparable and may be used as map keys. The arity determines the parameter
// type the tuple resolves to: 1 = vdW, 2 = Bonds, 3 = Angles,
// 4 = ProperTorsions.
type Tuple struct {
	ix [4]int
	n  int
}

// NewTuple builds a Tuple from atom indices, rejecting lengths that have no
// corresponding parameter type with ErrUnsupportedArity.
func NewTuple(indices ...int) (Tuple, error) {
	if _, err := TypeForArity(len(indices)); err != nil {
		return Tuple{}, err
	}
	var t Tuple
	t.n = len(indices)
	copy(t.ix[:], indices)
	return t, nil
}

// MustTuple is NewTuple for statically known indices; it panics on an
// unsupported arity.
func MustTuple(indices ...int) Tuple {
	t, err := NewTuple(indices...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the tuple arity.
func (t Tuple) Len() int {
	return t.n
}

// Indices returns the atom indices as a fresh slice.
func (t Tuple) Indices() []int {
	out := make([]int, t.n)
	copy(out, t.ix[:t.n])
	return out
}

// Type returns the parameter type implied by the tuple arity.
func (t Tuple) Type() ParameterType {
	pt, _ := TypeForArity(t.n)
	return pt
}

func (t Tuple) String() string {
	parts := make([]string, t.n)
	for i := 0; i < t.n; i++ {
		parts[i] = strconv.Itoa(t.ix[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t Tuple) less(o Tuple) bool {
	if t.n != o.n {
		return t.n < o.n
	}
	for i := 0; i < t.n; i++ {
		if t.ix[i] != o.ix[i] {
			return t.ix[i] < o.ix[i]
		}
	}
	return false
}

// TupleSet is a set of atom-index tuples covered by one parameter.
type TupleSet map[Tuple]struct{}

// NewTupleSet builds a set from the given tuples.
func NewTupleSet(tuples ...Tuple) TupleSet {
	s := make(TupleSet, len(tuples))
	for _, t := range tuples {
		s.Add(t)
	}
	return s
}

// Add inserts a tuple into the set.
func (s TupleSet) Add(t Tuple) {
	s[t] = struct{}{}
}

// Contains reports whether the tuple is in the set.
func (s TupleSet) Contains(t Tuple) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of tuples in the set.
func (s TupleSet) Len() int {
	return len(s)
}

// Sorted returns the tuples in a deterministic order.
func (s TupleSet) Sorted() []Tuple {
	out := make([]Tuple, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

func (s TupleSet) String() string {
	parts := make([]string, 0, len(s))
	for _, t := range s.Sorted() {
		parts = append(parts, t.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, " "))
}
