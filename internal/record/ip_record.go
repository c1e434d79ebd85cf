package record

import "net"

// IPRecord holds A or AAAA record data. The type is determined by the
// address family (IPv4 → A, IPv6 → AAAA).
type IPRecord struct {
	Addr net.IP
}

// NewIPRecord creates an IP record (A or AAAA based on address family).
func NewIPRecord(addr net.IP) *IPRecord {
	return &IPRecord{Addr: addr}
}

// Type returns TypeA for IPv4 addresses, TypeAAAA for IPv6.
func (r *IPRecord) Type() Type {
	if r.Addr.To4() != nil {
		return TypeA
	}
	return TypeAAAA
}

// EncodeData renders the address literal.
func (r *IPRecord) EncodeData() string {
	return r.Addr.String()
}
