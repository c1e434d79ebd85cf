package record

import (
	"fmt"
	"strings"
)

// SOARecord holds start-of-authority record data. ResponsiblePerson is
// stored DNS-style, with a literal dot separating the local part from
// the domain (e.g. "admin.example.com").
type SOARecord struct {
	ResponsiblePerson string
	PrimaryServer     string
}

// NewSOARecord creates an SOA record.
func NewSOARecord(responsiblePerson, primaryServer string) *SOARecord {
	return &SOARecord{ResponsiblePerson: responsiblePerson, PrimaryServer: primaryServer}
}

// Type returns TypeSOA.
func (r *SOARecord) Type() Type { return TypeSOA }

// EncodeData renders "<mailbox> [<primary-server>]", rewriting only
// the first dot of the responsible-person field to an "@".
func (r *SOARecord) EncodeData() string {
	mailbox := strings.Replace(r.ResponsiblePerson, ".", "@", 1)
	return fmt.Sprintf("%s [%s]", mailbox, r.PrimaryServer)
}
