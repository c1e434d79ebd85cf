package record

import "fmt"

// SRVRecord holds service locator record data.
type SRVRecord struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

// NewSRVRecord creates an SRV record.
func NewSRVRecord(priority, weight, port uint16, target string) *SRVRecord {
	return &SRVRecord{Priority: priority, Weight: weight, Port: port, Target: target}
}

// Type returns TypeSRV.
func (r *SRVRecord) Type() Type { return TypeSRV }

// EncodeData renders "[<priority>][<weight>][<port>] <target-host>".
func (r *SRVRecord) EncodeData() string {
	return fmt.Sprintf("[%d][%d][%d] %s", r.Priority, r.Weight, r.Port, r.Target)
}
