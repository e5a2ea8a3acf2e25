package forcefield

// ParameterRecord is one entry in a parameter handler: a stable identifier
// plus the parameter's fields in the force field's native string format,
// keyed by field name. The SMIRKS pattern lives in the fields under
// "smirks" and acts as the record's key within its handler.
type ParameterRecord struct {
	id     string
	fields map[string]string
}

// NewParameterRecord builds a record with the given id and fields. The
// fields map is copied.
func NewParameterRecord(id string, fields map[string]string) *ParameterRecord {
	return &ParameterRecord{id: id, fields: copyFields(fields)}
}

// ID returns the record's stable identifier. Identifiers never change once
// assigned, no matter how often the record's fields are rewritten.
func (r *ParameterRecord) ID() string {
	return r.id
}

// Smirks returns the record's SMIRKS pattern key.
func (r *ParameterRecord) Smirks() string {
	return r.fields["smirks"]
}

// Field returns a single field value.
func (r *ParameterRecord) Field(name string) (string, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Fields returns a copy of all fields.
func (r *ParameterRecord) Fields() map[string]string {
	return copyFields(r.fields)
}

// Overwrite replaces every field on the record in one operation, keeping
// the id. Fields absent from the replacement are dropped rather than
// carried over, so a rewrite never leaves stale conditional fields behind.
func (r *ParameterRecord) Overwrite(fields map[string]string) {
	r.fields = copyFields(fields)
}

func copyFields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
