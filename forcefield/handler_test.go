package forcefield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameterHandler(t *testing.T) {
	t.Run("AppendAndGet", func(t *testing.T) {
		h := NewParameterHandler("Bonds")
		require.Equal(t, "Bonds", h.Name())
		require.Zero(t, h.Len())

		h.Append(NewParameterRecord("b1", map[string]string{"smirks": "[#6:1]-[#6:2]", "k": "500"}))
		h.Append(NewParameterRecord("b2", map[string]string{"smirks": "[#6:1]-[#8:2]", "k": "600"}))
		require.Equal(t, 2, h.Len())

		rec, ok := h.Get("[#6:1]-[#6:2]")
		require.True(t, ok)
		require.Equal(t, "b1", rec.ID())

		_, ok = h.Get("[#7:1]-[#7:2]")
		require.False(t, ok)
	})

	t.Run("InsertionOrder", func(t *testing.T) {
		h := NewParameterHandler("Bonds")
		h.Append(NewParameterRecord("b1", map[string]string{"smirks": "first"}))
		h.Append(NewParameterRecord("b2", map[string]string{"smirks": "second"}))
		h.Append(NewParameterRecord("b3", map[string]string{"smirks": "third"}))

		var ids []string
		for _, rec := range h.Records() {
			ids = append(ids, rec.ID())
		}
		require.Equal(t, []string{"b1", "b2", "b3"}, ids)
	})

	t.Run("AppendSameKeyRewritesInPlace", func(t *testing.T) {
		h := NewParameterHandler("Bonds")
		h.Append(NewParameterRecord("b1", map[string]string{"smirks": "x", "k": "500", "stale": "yes"}))
		h.Append(NewParameterRecord("b9", map[string]string{"smirks": "x", "k": "600"}))

		require.Equal(t, 1, h.Len())
		rec, ok := h.Get("x")
		require.True(t, ok)
		// Id and position stay; fields are fully replaced.
		require.Equal(t, "b1", rec.ID())
		v, _ := rec.Field("k")
		require.Equal(t, "600", v)
		_, hasStale := rec.Field("stale")
		require.False(t, hasStale)
	})
}

func TestParameterRecordOverwrite(t *testing.T) {
	rec := NewParameterRecord("a3", map[string]string{
		"smirks":       "[*:1]~[*:2]~[*:3]",
		"k":            "100",
		"angle":        "120",
		"parameterize": "k, angle",
	})
	rec.Overwrite(map[string]string{
		"smirks": "[*:1]~[*:2]~[*:3]",
		"k":      "110",
		"angle":  "115",
	})

	require.Equal(t, "a3", rec.ID())
	v, _ := rec.Field("k")
	require.Equal(t, "110", v)
	// Overwrite replaces the whole field set, so the conditional marker is
	// gone rather than merged over.
	_, ok := rec.Field("parameterize")
	require.False(t, ok)
}

func TestParameterRecordFieldsCopied(t *testing.T) {
	in := map[string]string{"smirks": "x", "k": "1"}
	rec := NewParameterRecord("b1", in)
	in["k"] = "mutated"

	v, _ := rec.Field("k")
	require.Equal(t, "1", v)

	out := rec.Fields()
	out["k"] = "mutated"
	v, _ = rec.Field("k")
	require.Equal(t, "1", v)
}
