package record

// TXTRecord holds descriptive text record data.
type TXTRecord struct {
	Text string
}

// NewTXTRecord creates a TXT record.
func NewTXTRecord(text string) *TXTRecord {
	return &TXTRecord{Text: text}
}

// Type returns TypeTXT.
func (r *TXTRecord) Type() Type { return TypeTXT }

// EncodeData renders the text literal.
func (r *TXTRecord) EncodeData() string { return r.Text }
