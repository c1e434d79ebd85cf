// Package record models DNS resource record data as a tagged variant:
// one concrete type per record shape, plus an opaque fallback for
// anything the manager does not understand.
//
// Each variant knows how to render its data as the single display
// string used by the tabular views and the CSV exporter. The reverse
// direction (ParseCreateData) only covers the record types this
// manager is allowed to create.
package record

// Type identifies a DNS resource record type by its textual mnemonic.
// Unrecognized mnemonics are carried through verbatim.
type Type string

const (
	TypeA     Type = "A"
	TypeAAAA  Type = "AAAA"
	TypeCNAME Type = "CNAME"
	TypeSOA   Type = "SOA"
	TypePTR   Type = "PTR"
	TypeMX    Type = "MX"
	TypeTXT   Type = "TXT"
	TypeSRV   Type = "SRV"
	TypeNS    Type = "NS"
)

// Record is the interface implemented by all record data variants.
type Record interface {
	// Type returns the DNS record type.
	Type() Type

	// EncodeData renders the record data as a single display string.
	EncodeData() string
}

// CanCreate reports whether this manager supports creating records of
// the given type. Everything else is read-only here.
func CanCreate(t Type) bool {
	switch t {
	case TypeA, TypeCNAME, TypeTXT, TypePTR:
		return true
	}
	return false
}

// RequiresDataMatch reports whether deleting a record of the given
// type needs the exact record data in addition to the owner name.
// Remaining types are removed by name and type alone.
func RequiresDataMatch(t Type) bool {
	switch t {
	case TypeA, TypeAAAA, TypeCNAME, TypeTXT, TypePTR, TypeNS:
		return true
	}
	return false
}
