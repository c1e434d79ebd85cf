package record

import (
	"fmt"
	"net"
	"strings"
)

// ParseCreateData parses operator input into record data for creation.
// Only A, CNAME, TXT, and PTR can be created through this manager;
// any other type returns ErrUnsupportedType so the caller can surface
// it — requesting e.g. an MX record is not silently dropped.
func ParseCreateData(t Type, raw string) (Record, error) {
	switch t {
	case TypeA:
		ip := net.ParseIP(strings.TrimSpace(raw))
		if ip == nil || ip.To4() == nil {
			return nil, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidData, raw)
		}
		return NewIPRecord(ip.To4()), nil
	case TypeCNAME, TypePTR:
		target := strings.TrimSpace(raw)
		if target == "" {
			return nil, fmt.Errorf("%w: empty target name", ErrInvalidData)
		}
		return NewNameRecord(t, target), nil
	case TypeTXT:
		if raw == "" {
			return nil, fmt.Errorf("%w: empty text", ErrInvalidData)
		}
		return NewTXTRecord(raw), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}
