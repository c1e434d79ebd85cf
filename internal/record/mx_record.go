package record

import "fmt"

// MXRecord holds mail exchange record data.
type MXRecord struct {
	Preference uint16
	Exchange   string
}

// NewMXRecord creates an MX record.
func NewMXRecord(preference uint16, exchange string) *MXRecord {
	return &MXRecord{Preference: preference, Exchange: exchange}
}

// Type returns TypeMX.
func (r *MXRecord) Type() Type { return TypeMX }

// EncodeData renders "[<preference>] <mail-exchange-host>".
func (r *MXRecord) EncodeData() string {
	return fmt.Sprintf("[%d] %s", r.Preference, r.Exchange)
}
