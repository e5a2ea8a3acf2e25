package forcefield

// ParameterHandler is a force field's sub-store of parameters for one
// interaction type: an ordered collection of records keyed by SMIRKS
// pattern. Records keep their insertion order; lookups go through the key.
type ParameterHandler struct {
	name    string
	records []*ParameterRecord
	index   map[string]*ParameterRecord
}

// NewParameterHandler builds an empty handler with the given name.
func NewParameterHandler(name string) *ParameterHandler {
	return &ParameterHandler{
		name:  name,
		index: make(map[string]*ParameterRecord),
	}
}

// Name returns the handler's name, e.g. "Bonds".
func (h *ParameterHandler) Name() string {
	return h.name
}

// Len returns the number of records in the handler.
func (h *ParameterHandler) Len() int {
	return len(h.records)
}

// Get looks a record up by its SMIRKS pattern key.
func (h *ParameterHandler) Get(smirks string) (*ParameterRecord, bool) {
	rec, ok := h.index[smirks]
	return rec, ok
}

// Append adds a record to the end of the collection. If a record with the
// same SMIRKS key already exists its fields are overwritten in place and its
// id and position are kept.
func (h *ParameterHandler) Append(rec *ParameterRecord) {
	if existing, ok := h.index[rec.Smirks()]; ok {
		existing.Overwrite(rec.fields)
		return
	}
	h.records = append(h.records, rec)
	h.index[rec.Smirks()] = rec
}

// Records returns the records in insertion order. The slice is a copy; the
// records are not.
func (h *ParameterHandler) Records() []*ParameterRecord {
	out := make([]*ParameterRecord, len(h.records))
	copy(out, h.records)
	return out
}
