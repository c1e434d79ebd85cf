package record

// NameRecord holds record data that is a single domain name
// (CNAME, NS, PTR).
type NameRecord struct {
	T      Type
	Target string
}

// NewNameRecord creates a name-based record (CNAME, NS, or PTR).
func NewNameRecord(t Type, target string) *NameRecord {
	return &NameRecord{T: t, Target: target}
}

// Type returns the record type (CNAME, NS, or PTR).
func (r *NameRecord) Type() Type { return r.T }

// EncodeData renders the target name literal.
func (r *NameRecord) EncodeData() string { return r.Target }
