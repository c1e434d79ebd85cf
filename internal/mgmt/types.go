package mgmt

import (
	"net"

	"github.com/nvdberg/splithorizon/internal/record"
)

// Policy actions understood by the DNS server.
const (
	ActionAllow    = "Allow"
	ActionBlock    = "Block"
	ActionOverride = "Override"
)

// CriteriaPrefix is the fixed operator prefix of a policy's client
// subnet criteria. Policies created here always match by equality.
const CriteriaPrefix = "EQ,"

// Zone is a DNS zone as reported by the management API.
type Zone struct {
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

// ZoneScope is a named alternate view of a zone's records.
type ZoneScope struct {
	ZoneName string `json:"zone_name"`
	Name     string `json:"name"`
}

// ClientSubnet is a named, ordered set of IPv4 and IPv6 prefixes.
// Either list may be empty, but not both at creation.
type ClientSubnet struct {
	Name string   `json:"name"`
	IPv4 []string `json:"ipv4,omitempty"`
	IPv6 []string `json:"ipv6,omitempty"`
}

// Policy is a query-resolution policy binding a client subnet match to
// a zone scope. Criteria is the raw match string ("EQ,<subnet name>");
// ZoneScope names the content target. The referenced scope and subnet
// are not checked for existence: dangling references are surfaced
// as-is.
type Policy struct {
	ZoneName  string `json:"zone_name"`
	Name      string `json:"name"`
	Action    string `json:"action"`
	Enabled   bool   `json:"enabled"`
	Criteria  string `json:"criteria"`
	ZoneScope string `json:"zone_scope"`
}

// ResourceRecord is a single DNS entry within a (zone, scope) pair.
// Data is the typed variant from the record package.
type ResourceRecord struct {
	Name string
	Type record.Type
	TTL  uint32
	Data record.Record
}

// recordPayload is the wire form of a resource record. RecordData is a
// union: only the fields for the record's type are populated.
type recordPayload struct {
	Name string     `json:"name"`
	Type string     `json:"type"`
	TTL  uint32     `json:"ttl,omitempty"`
	Data RecordData `json:"data"`
}

// RecordData carries type-specific record data on the wire.
type RecordData struct {
	Address           string `json:"address,omitempty"`
	Target            string `json:"target,omitempty"`
	Preference        uint16 `json:"preference,omitempty"`
	Exchange          string `json:"exchange,omitempty"`
	Text              string `json:"text,omitempty"`
	Priority          uint16 `json:"priority,omitempty"`
	Weight            uint16 `json:"weight,omitempty"`
	Port              uint16 `json:"port,omitempty"`
	ResponsiblePerson string `json:"responsible_person,omitempty"`
	PrimaryServer     string `json:"primary_server,omitempty"`
	Raw               string `json:"raw,omitempty"`
}

func decodeRecordPayload(p recordPayload) ResourceRecord {
	rr := ResourceRecord{Name: p.Name, Type: record.Type(p.Type), TTL: p.TTL}
	switch rr.Type {
	case record.TypeA, record.TypeAAAA:
		if ip := net.ParseIP(p.Data.Address); ip != nil {
			rr.Data = record.NewIPRecord(ip)
		} else {
			rr.Data = record.NewOpaqueRecord(rr.Type, p.Data.Address)
		}
	case record.TypeCNAME, record.TypeNS, record.TypePTR:
		rr.Data = record.NewNameRecord(rr.Type, p.Data.Target)
	case record.TypeMX:
		rr.Data = record.NewMXRecord(p.Data.Preference, p.Data.Exchange)
	case record.TypeTXT:
		rr.Data = record.NewTXTRecord(p.Data.Text)
	case record.TypeSRV:
		rr.Data = record.NewSRVRecord(p.Data.Priority, p.Data.Weight, p.Data.Port, p.Data.Target)
	case record.TypeSOA:
		rr.Data = record.NewSOARecord(p.Data.ResponsiblePerson, p.Data.PrimaryServer)
	default:
		rr.Data = record.NewOpaqueRecord(rr.Type, p.Data.Raw)
	}
	return rr
}

func encodeRecordData(data record.Record) RecordData {
	switch v := data.(type) {
	case *record.IPRecord:
		return RecordData{Address: v.Addr.String()}
	case *record.NameRecord:
		return RecordData{Target: v.Target}
	case *record.MXRecord:
		return RecordData{Preference: v.Preference, Exchange: v.Exchange}
	case *record.TXTRecord:
		return RecordData{Text: v.Text}
	case *record.SRVRecord:
		return RecordData{Priority: v.Priority, Weight: v.Weight, Port: v.Port, Target: v.Target}
	case *record.SOARecord:
		return RecordData{ResponsiblePerson: v.ResponsiblePerson, PrimaryServer: v.PrimaryServer}
	case *record.OpaqueRecord:
		return RecordData{Raw: v.Raw}
	default:
		return RecordData{Raw: data.EncodeData()}
	}
}
