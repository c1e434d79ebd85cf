package projection_test

import (
	"testing"

	"github.com/nvdberg/splithorizon/internal/mgmt"
	"github.com/nvdberg/splithorizon/internal/projection"
	"github.com/nvdberg/splithorizon/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopesTable(t *testing.T) {
	table := projection.Scopes([]mgmt.ZoneScope{
		{ZoneName: "corp.example.com", Name: "internal"},
		{ZoneName: "corp.example.com", Name: "external"},
	})
	assert.Equal(t, []string{"Scope Name", "Zone"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"internal", "corp.example.com"}, table.Rows[0])
}

func TestSubnetsTable_CommaJoins(t *testing.T) {
	table := projection.Subnets([]mgmt.ClientSubnet{
		{Name: "Corp", IPv4: []string{"10.10.0.0/16", "10.20.0.0/16"}, IPv6: []string{"2001:db8::/32"}},
		{Name: "Guest", IPv4: []string{"192.168.0.0/24"}},
	})
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Corp", "10.10.0.0/16,10.20.0.0/16", "2001:db8::/32"}, table.Rows[0])
	assert.Equal(t, []string{"Guest", "192.168.0.0/24", ""}, table.Rows[1])
}

func TestPoliciesTable_ExtractsSubnetFromCriteria(t *testing.T) {
	table := projection.Policies([]mgmt.Policy{
		{
			ZoneName:  "corp.example.com",
			Name:      "corp-split",
			Action:    mgmt.ActionAllow,
			Enabled:   true,
			Criteria:  "EQ,CorpSubnet",
			ZoneScope: "internal",
		},
	})
	require.Len(t, table.Rows, 1)
	assert.Equal(t,
		[]string{"corp-split", "corp.example.com", "internal", "CorpSubnet", "Allow", "true"},
		table.Rows[0])
}

func TestSubnetFromCriteria(t *testing.T) {
	assert.Equal(t, "CorpSubnet", projection.SubnetFromCriteria("EQ,CorpSubnet"))
	// dangling or odd criteria pass through untouched
	assert.Equal(t, "NoPrefix", projection.SubnetFromCriteria("NoPrefix"))
}

func TestRecordsTable_EncodesData(t *testing.T) {
	table := projection.Records([]mgmt.ResourceRecord{
		{Name: "@", Type: record.TypeSOA, Data: record.NewSOARecord("admin.example.com", "ns1.example.com")},
		{Name: "_sip._tls", Type: record.TypeSRV, Data: record.NewSRVRecord(10, 5, 443, "svc.example.com")},
	})
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"@", "SOA", "admin@example.com [ns1.example.com]"}, table.Rows[0])
	assert.Equal(t, []string{"_sip._tls", "SRV", "[10][5][443] svc.example.com"}, table.Rows[1])
}

func TestJoinSplitPrefixes_Inverse(t *testing.T) {
	prefixes := []string{"10.10.0.0/16", "172.16.0.0/12", "192.168.1.0/24"}
	joined := projection.JoinPrefixes(prefixes)
	assert.Equal(t, prefixes, projection.SplitPrefixes(joined))
}

func TestSplitPrefixes_TrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.0/12"},
		projection.SplitPrefixes(" 10.0.0.0/8 , 172.16.0.0/12 ,"))
	assert.Nil(t, projection.SplitPrefixes(""))
}

func TestParseSubnetRow(t *testing.T) {
	subnet, err := projection.ParseSubnetRow([]string{"Corp", "10.10.0.0/16,10.20.0.0/16", ""})
	require.NoError(t, err)
	assert.Equal(t, "Corp", subnet.Name)
	assert.Equal(t, []string{"10.10.0.0/16", "10.20.0.0/16"}, subnet.IPv4)
	assert.Empty(t, subnet.IPv6)
}

func TestParseScopeRow(t *testing.T) {
	zone, scope, err := projection.ParseScopeRow([]string{"internal", "corp.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "corp.example.com", zone)
	assert.Equal(t, "internal", scope)

	_, _, err = projection.ParseScopeRow([]string{"only-one"})
	assert.Error(t, err)
}

func TestParsePolicyRow(t *testing.T) {
	row, err := projection.ParsePolicyRow([]string{"corp-split", "corp.example.com", "internal", "CorpSubnet", "Allow", "true"})
	require.NoError(t, err)
	assert.Equal(t, "corp-split", row.Name)
	assert.Equal(t, "CorpSubnet", row.Subnet)
	assert.True(t, row.Enabled)

	_, err = projection.ParsePolicyRow([]string{"p", "z", "s", "n", "Allow", "maybe"})
	assert.Error(t, err)
}

func TestParseRecordRow(t *testing.T) {
	name, rtype, data, err := projection.ParseRecordRow([]string{"www", "A", "192.0.2.10"})
	require.NoError(t, err)
	assert.Equal(t, "www", name)
	assert.Equal(t, "A", rtype)
	assert.Equal(t, "192.0.2.10", data)
}
