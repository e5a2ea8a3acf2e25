package forcefield

import (
	"fmt"
	"strconv"

	bespokefit "github.com/openforcefield/bespoke-fit"
	"github.com/openforcefield/bespoke-fit/slogger"
	"github.com/openforcefield/bespoke-fit/smirks"
)

// Editor merges proposed SMIRKS parameters into a force field and resolves
// atoms against the parameters already there. It keeps parameter ids stable:
// a pattern that already exists keeps its id and has its fields rewritten,
// only genuinely new patterns get fresh sequential ids.
//
// The editor is synchronous and performs read-then-write against the shared
// handle; callers must not invoke it concurrently against the same handle.
type Editor struct {
	ff     Handle
	logger slogger.Logger
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithEditorLogger sets the editor's logger.
func WithEditorLogger(l slogger.Logger) EditorOption {
	return func(e *Editor) { e.logger = l }
}

// NewEditor wraps a force field handle for editing. The constraints handler
// is always stripped: the force field must be unconstrained for fitting.
// Stripping an absent handler is a no-op.
func NewEditor(ff Handle, opts ...EditorOption) *Editor {
	e := &Editor{ff: ff, logger: slogger.DefaultLogger}
	for _, opt := range opts {
		opt(e)
	}
	ff.RemoveHandler("Constraints")
	return e
}

// AddSmirks merges the proposed parameters into the force field. Proposals
// are deduplicated per type by SMIRKS pattern, keeping first-seen order. A
// pattern already present in its handler keeps its id and has all fields
// rewritten in one operation; a new pattern is appended under a fresh
// sequential id. When parameterize is false the parameterize marker is
// stripped from the written fields, so the values are treated as fixed
// downstream.
//
// Calling twice with the same proposals is idempotent: the second call finds
// every pattern existing and rewrites in place.
func (e *Editor) AddSmirks(params []smirks.Parameter, parameterize bool) {
	var order []smirks.ParameterType
	grouped := make(map[smirks.ParameterType][]smirks.Parameter)
	for _, p := range params {
		t := p.Type()
		existing, seen := grouped[t]
		if !seen {
			order = append(order, t)
		}
		dup := false
		for _, q := range existing {
			if smirks.Equal(p, q) {
				dup = true
				break
			}
		}
		if !dup {
			grouped[t] = append(existing, p)
		}
	}

	for _, t := range order {
		handler := e.ff.ParameterHandler(t)
		// Snapshot the size before any appends so that ids assigned within
		// one call never collide with each other.
		base := handler.Len()
		for j, p := range grouped[t] {
			fields := p.RecordFields()
			if !parameterize {
				delete(fields, smirks.FieldParameterize)
			}
			if rec, ok := handler.Get(p.Smirks()); ok {
				rec.Overwrite(fields)
				e.logger.Debug("rewrote existing parameter",
					"type", t.String(), "id", rec.ID(), "smirks", p.Smirks())
				continue
			}
			// Ids start at base+2 to stay clear of handler-reserved low
			// indices.
			id := t.Prefix() + strconv.Itoa(base+j+2)
			handler.Append(NewParameterRecord(id, fields))
			e.logger.Debug("added new parameter",
				"type", t.String(), "id", id, "smirks", p.Smirks())
		}
	}
}

// LabelMolecule types the molecule with the force field and returns the
// per-type parameter assignment for every atom tuple. Pure read.
func (e *Editor) LabelMolecule(mol *bespokefit.Molecule) (Labels, error) {
	return e.ff.LabelMolecule(mol)
}

// SmirksParameters labels the molecule and returns the typed parameters
// governing the requested atom tuples. The tuple arity selects the parameter
// type; lengths outside 1..4 fail with smirks.ErrUnsupportedArity. Atoms
// governed by the same pattern are clustered onto one output parameter, so
// the result is deduplicated in first-encounter order and each parameter's
// atoms set holds every tuple that resolved to it.
func (e *Editor) SmirksParameters(mol *bespokefit.Molecule, atoms [][]int) ([]smirks.Parameter, error) {
	labels, err := e.ff.LabelMolecule(mol)
	if err != nil {
		return nil, fmt.Errorf("labeling molecule %q: %w", mol.Name, err)
	}

	var out []smirks.Parameter
	for _, indices := range atoms {
		tuple, err := smirks.NewTuple(indices...)
		if err != nil {
			return nil, err
		}
		t := tuple.Type()
		rec, ok := labels.Record(t, tuple)
		if !ok {
			return nil, &NotFoundError{Type: t, Atoms: tuple}
		}
		p, err := smirks.FromRecord(t, rec.Fields())
		if err != nil {
			return nil, fmt.Errorf("converting %s record %s: %w", t, rec.ID(), err)
		}
		p.Atoms().Add(tuple)

		merged := false
		for _, q := range out {
			if smirks.Equal(p, q) {
				q.Atoms().Add(tuple)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, p)
		}
	}
	return out, nil
}

// UpdateSmirksParameters overwrites each input parameter's value fields from
// the force field's current record for its pattern, in place. A pattern
// missing from its handler fails with NotFoundError; nothing is skipped
// silently. Atoms sets are left untouched.
func (e *Editor) UpdateSmirksParameters(params []smirks.Parameter) error {
	for _, p := range params {
		handler := e.ff.ParameterHandler(p.Type())
		rec, ok := handler.Get(p.Smirks())
		if !ok {
			return &NotFoundError{Type: p.Type(), Smirks: p.Smirks()}
		}
		p.ApplyRecord(rec.Fields(), true)
	}
	return nil
}

// InitialParameters resolves the force field's current values for the atoms
// a proposed parameter covers and writes them onto the proposal. Every atom
// tuple in the proposal's atoms set must resolve to the same existing
// record; if the tuples span more than one record id the proposal clustered
// atoms the force field parameterizes separately, and the call fails with
// AmbiguousClusterError. When clearExisting is set the proposal's value
// fields are reset before the resolved values are applied. Returns the same
// (mutated) parameter.
func (e *Editor) InitialParameters(mol *bespokefit.Molecule, p smirks.Parameter, clearExisting bool) (smirks.Parameter, error) {
	labels, err := e.ff.LabelMolecule(mol)
	if err != nil {
		return nil, fmt.Errorf("labeling molecule %q: %w", mol.Name, err)
	}

	tuples := p.Atoms().Sorted()
	if len(tuples) == 0 {
		return nil, fmt.Errorf("parameter %q covers no atoms", p.Smirks())
	}

	ids := make(map[string]struct{})
	var resolved *ParameterRecord
	for _, tuple := range tuples {
		rec, ok := labels.Record(p.Type(), tuple)
		if !ok {
			return nil, &NotFoundError{Type: p.Type(), Atoms: tuple}
		}
		if resolved == nil {
			resolved = rec
		}
		ids[rec.ID()] = struct{}{}
	}
	if len(ids) > 1 {
		return nil, &AmbiguousClusterError{Smirks: p.Smirks(), IDs: sortedIDs(ids)}
	}

	p.ApplyRecord(resolved.Fields(), clearExisting)
	return p, nil
}
