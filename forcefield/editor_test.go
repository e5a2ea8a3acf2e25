package forcefield

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	bespokefit "github.com/openforcefield/bespoke-fit"
	"github.com/openforcefield/bespoke-fit/smirks"
)

// staticLabels returns a labeler that hands back a fixed assignment,
// standing in for the external chemistry.
func staticLabels(labels Labels) Labeler {
	return LabelerFunc(func(ff *ForceField, mol *bespokefit.Molecule) (Labels, error) {
		return labels, nil
	})
}

func ethane() *bespokefit.Molecule {
	return &bespokefit.Molecule{Name: "ethane", Smiles: "CC"}
}

func newBond(pattern, k, length string, atoms ...smirks.Tuple) *smirks.BondSmirks {
	b := smirks.NewBondSmirks(pattern, atoms...)
	b.K = k
	b.Length = length
	return b
}

func TestNewEditorStripsConstraints(t *testing.T) {
	ff := New()
	ff.ParameterHandler(smirks.Bonds)
	constraints := ff.handler("Constraints")
	constraints.Append(NewParameterRecord("c1", map[string]string{"smirks": "[#1:1]-[*:2]"}))

	NewEditor(ff)
	_, ok := ff.Handler("Constraints")
	require.False(t, ok)

	// Absent constraints handler is a no-op, not an error.
	require.NotPanics(t, func() { NewEditor(New()) })
}

func TestAddSmirksNewParameters(t *testing.T) {
	ff := New()
	editor := NewEditor(ff)

	editor.AddSmirks([]smirks.Parameter{
		newBond("[#6:1]-[#6:2]", "500", "1.52"),
		newBond("[#6:1]-[#8:2]", "600", "1.41"),
		smirks.NewAngleSmirks("[*:1]~[#6:2]~[*:3]"),
	}, true)

	bonds := ff.ParameterHandler(smirks.Bonds)
	require.Equal(t, 2, bonds.Len())
	// Ids count from the handler's prior size plus the reserved offset.
	first, ok := bonds.Get("[#6:1]-[#6:2]")
	require.True(t, ok)
	require.Equal(t, "b2", first.ID())
	second, ok := bonds.Get("[#6:1]-[#8:2]")
	require.True(t, ok)
	require.Equal(t, "b3", second.ID())

	angles := ff.ParameterHandler(smirks.Angles)
	require.Equal(t, 1, angles.Len())
	angle, _ := angles.Get("[*:1]~[#6:2]~[*:3]")
	require.Equal(t, "a2", angle.ID())

	k, _ := first.Field("k")
	require.Equal(t, "500", k)
	marker, ok := first.Field(smirks.FieldParameterize)
	require.True(t, ok)
	require.Equal(t, "k, length", marker)
}

func TestAddSmirksIdempotent(t *testing.T) {
	ff := New()
	editor := NewEditor(ff)
	proposals := []smirks.Parameter{
		newBond("[#6:1]-[#6:2]", "500", "1.52"),
		newBond("[#6:1]-[#8:2]", "600", "1.41"),
	}

	editor.AddSmirks(proposals, true)
	bonds := ff.ParameterHandler(smirks.Bonds)
	require.Equal(t, 2, bonds.Len())
	firstID, _ := bonds.Get("[#6:1]-[#6:2]")
	secondID, _ := bonds.Get("[#6:1]-[#8:2]")

	editor.AddSmirks(proposals, true)
	require.Equal(t, 2, bonds.Len())
	first, _ := bonds.Get("[#6:1]-[#6:2]")
	second, _ := bonds.Get("[#6:1]-[#8:2]")
	require.Equal(t, firstID.ID(), first.ID())
	require.Equal(t, secondID.ID(), second.ID())
}

func TestAddSmirksStableIDs(t *testing.T) {
	ff := New()
	bonds := ff.ParameterHandler(smirks.Bonds)
	bonds.Append(NewParameterRecord("b17", map[string]string{
		"smirks": "[#6:1]-[#6:2]", "k": "400", "length": "1.54",
	}))
	editor := NewEditor(ff)

	// Re-submitting an existing pattern in any batch keeps its id.
	editor.AddSmirks([]smirks.Parameter{
		newBond("[#6:1]-[#6:2]", "520", "1.52"),
		newBond("[#6:1]-[#8:2]", "600", "1.41"),
	}, true)

	require.Equal(t, 2, bonds.Len())
	existing, _ := bonds.Get("[#6:1]-[#6:2]")
	require.Equal(t, "b17", existing.ID())
	k, _ := existing.Field("k")
	require.Equal(t, "520", k)
}

func TestAddSmirksSequentialUniqueness(t *testing.T) {
	ff := New()
	bonds := ff.ParameterHandler(smirks.Bonds)
	for i := 0; i < 3; i++ {
		pattern := fmt.Sprintf("[#%d:1]~[#%d:2]", i+5, i+5)
		bonds.Append(NewParameterRecord(fmt.Sprintf("b%d", i+1), map[string]string{"smirks": pattern}))
	}
	editor := NewEditor(ff)

	editor.AddSmirks([]smirks.Parameter{
		newBond("new-1", "1", "1"),
		newBond("new-2", "2", "2"),
		newBond("new-3", "3", "3"),
	}, true)

	// Prior size 3, so the new ids run from 3+2 through 3+1+3.
	require.Equal(t, 6, bonds.Len())
	ids := make(map[string]bool)
	for _, pattern := range []string{"new-1", "new-2", "new-3"} {
		rec, ok := bonds.Get(pattern)
		require.True(t, ok)
		ids[rec.ID()] = true
	}
	require.Len(t, ids, 3)
	require.True(t, ids["b5"])
	require.True(t, ids["b6"])
	require.True(t, ids["b7"])
}

func TestAddSmirksDeduplicates(t *testing.T) {
	ff := New()
	editor := NewEditor(ff)

	editor.AddSmirks([]smirks.Parameter{
		newBond("[#6:1]-[#6:2]", "500", "1.52"),
		newBond("[#6:1]-[#6:2]", "999", "9.99"),
	}, true)

	bonds := ff.ParameterHandler(smirks.Bonds)
	require.Equal(t, 1, bonds.Len())
	rec, _ := bonds.Get("[#6:1]-[#6:2]")
	// First-seen proposal wins; the later duplicate is dropped.
	k, _ := rec.Field("k")
	require.Equal(t, "500", k)
}

func TestAddSmirksParameterizeFlag(t *testing.T) {
	t.Run("Stripped", func(t *testing.T) {
		ff := New()
		NewEditor(ff).AddSmirks([]smirks.Parameter{newBond("x", "1", "1")}, false)
		rec, _ := ff.ParameterHandler(smirks.Bonds).Get("x")
		_, ok := rec.Field(smirks.FieldParameterize)
		require.False(t, ok)
	})

	t.Run("Included", func(t *testing.T) {
		ff := New()
		NewEditor(ff).AddSmirks([]smirks.Parameter{newBond("x", "1", "1")}, true)
		rec, _ := ff.ParameterHandler(smirks.Bonds).Get("x")
		marker, ok := rec.Field(smirks.FieldParameterize)
		require.True(t, ok)
		require.Equal(t, "k, length", marker)
	})

	t.Run("RewriteDropsStaleMarker", func(t *testing.T) {
		ff := New()
		editor := NewEditor(ff)
		editor.AddSmirks([]smirks.Parameter{newBond("x", "1", "1")}, true)
		editor.AddSmirks([]smirks.Parameter{newBond("x", "2", "2")}, false)

		rec, _ := ff.ParameterHandler(smirks.Bonds).Get("x")
		_, ok := rec.Field(smirks.FieldParameterize)
		require.False(t, ok)
	})
}

func TestAddSmirksEmptyNoOp(t *testing.T) {
	ff := New()
	editor := NewEditor(ff)
	editor.AddSmirks(nil, true)
	require.Empty(t, ff.HandlerNames())
}

func TestSmirksParametersClustering(t *testing.T) {
	ff := New()
	bonds := ff.ParameterHandler(smirks.Bonds)
	shared := NewParameterRecord("b1", map[string]string{
		"smirks": "[#6:1]-[#6:2]", "k": "500", "length": "1.52",
	})
	other := NewParameterRecord("b2", map[string]string{
		"smirks": "[#6:1]-[#1:2]", "k": "700", "length": "1.09",
	})
	bonds.Append(shared)
	bonds.Append(other)

	labels := Labels{}
	labels.Assign(smirks.Bonds, smirks.MustTuple(0, 1), shared)
	labels.Assign(smirks.Bonds, smirks.MustTuple(1, 2), shared)
	labels.Assign(smirks.Bonds, smirks.MustTuple(2, 3), other)
	ff.SetLabeler(staticLabels(labels))

	editor := NewEditor(ff)
	params, err := editor.SmirksParameters(ethane(), [][]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	// Atoms governed by one pattern cluster onto one output parameter, in
	// first-encounter order.
	require.Len(t, params, 2)
	require.Equal(t, "[#6:1]-[#6:2]", params[0].Smirks())
	require.Equal(t, 2, params[0].Atoms().Len())
	require.True(t, params[0].Atoms().Contains(smirks.MustTuple(0, 1)))
	require.True(t, params[0].Atoms().Contains(smirks.MustTuple(1, 2)))
	require.Equal(t, "[#6:1]-[#1:2]", params[1].Smirks())
	require.Equal(t, 1, params[1].Atoms().Len())

	bond, ok := params[0].(*smirks.BondSmirks)
	require.True(t, ok)
	require.Equal(t, "500", bond.K)
}

func TestSmirksParametersUnsupportedArity(t *testing.T) {
	ff := New()
	ff.SetLabeler(staticLabels(Labels{}))
	editor := NewEditor(ff)

	_, err := editor.SmirksParameters(ethane(), [][]int{{0, 1, 2, 3, 4}})
	require.ErrorIs(t, err, smirks.ErrUnsupportedArity)
}

func TestSmirksParametersUnlabeledAtoms(t *testing.T) {
	ff := New()
	ff.SetLabeler(staticLabels(Labels{}))
	editor := NewEditor(ff)

	_, err := editor.SmirksParameters(ethane(), [][]int{{0, 1}})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, smirks.Bonds, notFound.Type)
}

func TestLabelMoleculeNoLabeler(t *testing.T) {
	editor := NewEditor(New())
	_, err := editor.LabelMolecule(ethane())
	require.ErrorIs(t, err, ErrNoLabeler)
}

func TestUpdateSmirksParameters(t *testing.T) {
	t.Run("OverwritesValues", func(t *testing.T) {
		ff := New()
		ff.ParameterHandler(smirks.Bonds).Append(NewParameterRecord("b1", map[string]string{
			"smirks": "[#6:1]-[#6:2]", "k": "510", "length": "1.50",
		}))
		editor := NewEditor(ff)

		proposal := newBond("[#6:1]-[#6:2]", "old", "old", smirks.MustTuple(0, 1))
		require.NoError(t, editor.UpdateSmirksParameters([]smirks.Parameter{proposal}))
		require.Equal(t, "510", proposal.K)
		require.Equal(t, "1.50", proposal.Length)
		// Covered atoms are untouched.
		require.Equal(t, 1, proposal.Atoms().Len())
	})

	t.Run("MissingPattern", func(t *testing.T) {
		editor := NewEditor(New())
		err := editor.UpdateSmirksParameters([]smirks.Parameter{newBond("missing", "1", "1")})
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "missing", notFound.Smirks)
	})
}

func TestInitialParameters(t *testing.T) {
	setup := func() (*ForceField, *ParameterRecord, *ParameterRecord) {
		ff := New()
		bonds := ff.ParameterHandler(smirks.Bonds)
		recA := NewParameterRecord("b1", map[string]string{
			"smirks": "[#6:1]-[#6:2]", "k": "500",
		})
		recB := NewParameterRecord("b2", map[string]string{
			"smirks": "[#6:1]-[#1:2]", "k": "700", "length": "1.09",
		})
		bonds.Append(recA)
		bonds.Append(recB)
		return ff, recA, recB
	}

	t.Run("SingleCluster", func(t *testing.T) {
		ff, recA, _ := setup()
		labels := Labels{}
		labels.Assign(smirks.Bonds, smirks.MustTuple(0, 1), recA)
		labels.Assign(smirks.Bonds, smirks.MustTuple(1, 2), recA)
		ff.SetLabeler(staticLabels(labels))
		editor := NewEditor(ff)

		proposal := newBond("[#6:1]-[#6X4:2]", "stale-k", "stale-length",
			smirks.MustTuple(0, 1), smirks.MustTuple(1, 2))
		got, err := editor.InitialParameters(ethane(), proposal, true)
		require.NoError(t, err)
		// Same object back, mutated in place.
		require.Same(t, smirks.Parameter(proposal), got)
		require.Equal(t, "500", proposal.K)
		// The record has no length field; clearing resets it rather than
		// leaving the stale value.
		require.Empty(t, proposal.Length)
	})

	t.Run("KeepExisting", func(t *testing.T) {
		ff, recA, _ := setup()
		labels := Labels{}
		labels.Assign(smirks.Bonds, smirks.MustTuple(0, 1), recA)
		ff.SetLabeler(staticLabels(labels))
		editor := NewEditor(ff)

		proposal := newBond("[#6:1]-[#6X4:2]", "stale-k", "kept-length", smirks.MustTuple(0, 1))
		_, err := editor.InitialParameters(ethane(), proposal, false)
		require.NoError(t, err)
		require.Equal(t, "500", proposal.K)
		require.Equal(t, "kept-length", proposal.Length)
	})

	t.Run("AmbiguousCluster", func(t *testing.T) {
		ff, recA, recB := setup()
		labels := Labels{}
		labels.Assign(smirks.Bonds, smirks.MustTuple(0, 1), recA)
		labels.Assign(smirks.Bonds, smirks.MustTuple(1, 2), recB)
		ff.SetLabeler(staticLabels(labels))
		editor := NewEditor(ff)

		proposal := newBond("[#6:1]~[*:2]", "", "",
			smirks.MustTuple(0, 1), smirks.MustTuple(1, 2))
		_, err := editor.InitialParameters(ethane(), proposal, true)
		var ambiguous *AmbiguousClusterError
		require.ErrorAs(t, err, &ambiguous)
		require.Equal(t, []string{"b1", "b2"}, ambiguous.IDs)
	})

	t.Run("NoAtoms", func(t *testing.T) {
		ff, _, _ := setup()
		ff.SetLabeler(staticLabels(Labels{}))
		editor := NewEditor(ff)

		_, err := editor.InitialParameters(ethane(), newBond("[#6:1]-[#6:2]", "", ""), true)
		require.Error(t, err)
		require.Contains(t, err.Error(), "covers no atoms")
	})

	t.Run("UnlabeledAtoms", func(t *testing.T) {
		ff, _, _ := setup()
		ff.SetLabeler(staticLabels(Labels{}))
		editor := NewEditor(ff)

		proposal := newBond("[#6:1]-[#6:2]", "", "", smirks.MustTuple(0, 1))
		_, err := editor.InitialParameters(ethane(), proposal, true)
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}
