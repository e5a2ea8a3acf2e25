// Package forcefield holds the force-field handle contract and the editor
// that reconciles proposed SMIRKS parameters against a live force field:
// merging new parameters with stable id assignment, resolving atom tuples to
// their governing parameters, and clustering atoms that share one.
package forcefield

import (
	"sort"

	bespokefit "github.com/openforcefield/bespoke-fit"
	"github.com/openforcefield/bespoke-fit/smirks"
)

// Handle is the contract the editor needs from a force field: per-type
// parameter handlers and topology labeling. ForceField is the in-memory
// implementation; fitting services may substitute their own.
type Handle interface {
	// ParameterHandler returns the handler for the given parameter type,
	// creating an empty one if the force field has none yet.
	ParameterHandler(t smirks.ParameterType) *ParameterHandler

	// LabelMolecule types the molecule and returns, per parameter type, the
	// record governing each atom tuple.
	LabelMolecule(mol *bespokefit.Molecule) (Labels, error)

	// RemoveHandler drops a handler by name, reporting whether it existed.
	RemoveHandler(name string) bool
}

// Labeler performs the chemistry of typing a molecule against a force
// field's SMIRKS patterns. It is an external collaborator; this module only
// consumes its assignments.
type Labeler interface {
	LabelMolecule(ff *ForceField, mol *bespokefit.Molecule) (Labels, error)
}

// LabelerFunc adapts a function to the Labeler interface.
type LabelerFunc func(ff *ForceField, mol *bespokefit.Molecule) (Labels, error)

func (f LabelerFunc) LabelMolecule(ff *ForceField, mol *bespokefit.Molecule) (Labels, error) {
	return f(ff, mol)
}

// ForceField is an in-memory force field: named parameter handlers, each an
// ordered SMIRKS-keyed collection of records. It is not safe for concurrent
// use; callers serialize access per fitting run.
type ForceField struct {
	handlers map[string]*ParameterHandler
	order    []string
	labeler  Labeler
}

// Option configures a ForceField.
type Option func(*ForceField)

// WithLabeler sets the topology labeler collaborator.
func WithLabeler(l Labeler) Option {
	return func(f *ForceField) { f.labeler = l }
}

// New builds an empty force field.
func New(opts ...Option) *ForceField {
	f := &ForceField{handlers: make(map[string]*ParameterHandler)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetLabeler replaces the topology labeler collaborator.
func (f *ForceField) SetLabeler(l Labeler) {
	f.labeler = l
}

// ParameterHandler returns the handler for the given parameter type,
// creating it if absent.
func (f *ForceField) ParameterHandler(t smirks.ParameterType) *ParameterHandler {
	return f.handler(t.String())
}

func (f *ForceField) handler(name string) *ParameterHandler {
	h, ok := f.handlers[name]
	if !ok {
		h = NewParameterHandler(name)
		f.handlers[name] = h
		f.order = append(f.order, name)
	}
	return h
}

// Handler looks a handler up by name without creating it.
func (f *ForceField) Handler(name string) (*ParameterHandler, bool) {
	h, ok := f.handlers[name]
	return h, ok
}

// HandlerNames returns the handler names in creation order.
func (f *ForceField) HandlerNames() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// RemoveHandler drops a handler by name, reporting whether it existed.
// Removing an absent handler is a no-op.
func (f *ForceField) RemoveHandler(name string) bool {
	if _, ok := f.handlers[name]; !ok {
		return false
	}
	delete(f.handlers, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return true
}

// LabelMolecule types the molecule via the configured labeler.
func (f *ForceField) LabelMolecule(mol *bespokefit.Molecule) (Labels, error) {
	if f.labeler == nil {
		return nil, ErrNoLabeler
	}
	return f.labeler.LabelMolecule(f, mol)
}

func sortedIDs(ids map[string]struct{}) []string {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
