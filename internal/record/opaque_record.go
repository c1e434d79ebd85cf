package record

// OpaqueRecord holds record data of an unknown or unsupported type.
// The raw text form is carried through untouched; opaque data is not
// an error.
type OpaqueRecord struct {
	T   Type
	Raw string
}

// NewOpaqueRecord creates an opaque record for unknown types.
func NewOpaqueRecord(t Type, raw string) *OpaqueRecord {
	return &OpaqueRecord{T: t, Raw: raw}
}

// Type returns the record type.
func (r *OpaqueRecord) Type() Type { return r.T }

// EncodeData returns the raw underlying text form.
func (r *OpaqueRecord) EncodeData() string { return r.Raw }
