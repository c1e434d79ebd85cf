// Package projection flattens entity lists into fixed, named-column
// tables for display and export, and parses imported rows back into
// creation parameters. The table layout is the contract between the
// list views, the CSV exporter and the CSV importer: what is shown is
// exactly what is exported.
package projection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nvdberg/splithorizon/internal/mgmt"
)

// Column headers, in the exact order rows are emitted.
var (
	ScopeColumns  = []string{"Scope Name", "Zone"}
	SubnetColumns = []string{"Subnet Name", "IPv4 Address(es)", "IPv6 Address(es)"}
	PolicyColumns = []string{"Policy Name", "Zone", "Scope Name", "Subnet Name", "Action", "Enabled"}
	RecordColumns = []string{"Name", "Type", "Data"}
)

// Table is an ordered sequence of rows under fixed column headers.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Scopes projects zone scopes.
func Scopes(scopes []mgmt.ZoneScope) Table {
	rows := make([][]string, 0, len(scopes))
	for _, s := range scopes {
		rows = append(rows, []string{s.Name, s.ZoneName})
	}
	return Table{Columns: ScopeColumns, Rows: rows}
}

// Subnets projects client subnets, comma-joining the prefix lists.
func Subnets(subnets []mgmt.ClientSubnet) Table {
	rows := make([][]string, 0, len(subnets))
	for _, s := range subnets {
		rows = append(rows, []string{s.Name, JoinPrefixes(s.IPv4), JoinPrefixes(s.IPv6)})
	}
	return Table{Columns: SubnetColumns, Rows: rows}
}

// Policies projects query-resolution policies. The subnet column is
// extracted from the raw criteria string.
func Policies(policies []mgmt.Policy) Table {
	rows := make([][]string, 0, len(policies))
	for _, p := range policies {
		rows = append(rows, []string{
			p.Name, p.ZoneName, p.ZoneScope,
			SubnetFromCriteria(p.Criteria),
			p.Action, strconv.FormatBool(p.Enabled),
		})
	}
	return Table{Columns: PolicyColumns, Rows: rows}
}

// Records projects resource records; the data column is the codec's
// encoded display string.
func Records(records []mgmt.ResourceRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, rr := range records {
		rows = append(rows, []string{rr.Name, string(rr.Type), rr.Data.EncodeData()})
	}
	return Table{Columns: RecordColumns, Rows: rows}
}

// SubnetFromCriteria strips the fixed 3-character operator prefix
// ("EQ,") from a policy's match criteria, leaving the subnet name.
func SubnetFromCriteria(criteria string) string {
	return strings.TrimPrefix(criteria, mgmt.CriteriaPrefix)
}

// JoinPrefixes joins multiple prefix values into one display cell.
func JoinPrefixes(prefixes []string) string {
	return strings.Join(prefixes, ",")
}

// SplitPrefixes splits a comma-separated input cell into prefix
// values. Exact inverse of JoinPrefixes for values without embedded
// commas.
func SplitPrefixes(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func rowLen(row []string, want int, what string) error {
	if len(row) != want {
		return fmt.Errorf("%s row needs %d columns, got %d", what, want, len(row))
	}
	return nil
}

// ParseScopeRow parses a (Scope Name, Zone) row.
func ParseScopeRow(row []string) (zone, scope string, err error) {
	if err := rowLen(row, len(ScopeColumns), "scope"); err != nil {
		return "", "", err
	}
	return row[1], row[0], nil
}

// ParseSubnetRow parses a (Subnet Name, IPv4, IPv6) row, splitting the
// comma-joined prefix cells.
func ParseSubnetRow(row []string) (mgmt.ClientSubnet, error) {
	if err := rowLen(row, len(SubnetColumns), "subnet"); err != nil {
		return mgmt.ClientSubnet{}, err
	}
	return mgmt.ClientSubnet{
		Name: row[0],
		IPv4: SplitPrefixes(row[1]),
		IPv6: SplitPrefixes(row[2]),
	}, nil
}

// PolicyRow is a parsed policy import row.
type PolicyRow struct {
	Name    string
	Zone    string
	Scope   string
	Subnet  string
	Action  string
	Enabled bool
}

// ParsePolicyRow parses a (Policy Name, Zone, Scope Name, Subnet Name,
// Action, Enabled) row.
func ParsePolicyRow(row []string) (PolicyRow, error) {
	if err := rowLen(row, len(PolicyColumns), "policy"); err != nil {
		return PolicyRow{}, err
	}
	enabled, err := strconv.ParseBool(row[5])
	if err != nil {
		return PolicyRow{}, fmt.Errorf("policy enabled flag %q: %w", row[5], err)
	}
	return PolicyRow{
		Name:    row[0],
		Zone:    row[1],
		Scope:   row[2],
		Subnet:  row[3],
		Action:  row[4],
		Enabled: enabled,
	}, nil
}

// ParseRecordRow parses a (Name, Type, Data) row.
func ParseRecordRow(row []string) (name, rtype, data string, err error) {
	if err := rowLen(row, len(RecordColumns), "record"); err != nil {
		return "", "", "", err
	}
	return row[0], row[1], row[2], nil
}
