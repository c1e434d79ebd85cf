package bulk_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nvdberg/splithorizon/internal/bulk"
	"github.com/nvdberg/splithorizon/internal/mgmt"
	"github.com/nvdberg/splithorizon/internal/mgmt/mgmttest"
	"github.com/nvdberg/splithorizon/internal/projection"
	"github.com/nvdberg/splithorizon/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImporter(fake *mgmttest.Fake) *bulk.Importer {
	return bulk.NewImporter(repository.New(fake, nil, nil))
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "SplitBrain_Export_2026-08-25.csv", bulk.ExportFilename(now))
}

func TestExport_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	table := projection.Table{
		Columns: projection.SubnetColumns,
		Rows: [][]string{
			{"Corp", "10.10.0.0/16,10.20.0.0/16", "2001:db8::/32"},
		},
	}
	require.NoError(t, bulk.Export(&buf, table))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Subnet Name,IPv4 Address(es),IPv6 Address(es)", lines[0])
	// comma-joined cells get standard CSV quoting
	assert.Equal(t, `Corp,"10.10.0.0/16,10.20.0.0/16",2001:db8::/32`, lines[1])
}

func TestExportFile_ReportsDestination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, bulk.ExportFilename(time.Now()))

	got, err := bulk.ExportFile(path, projection.Table{Columns: projection.ScopeColumns})
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Scope Name,Zone\n", string(data))
}

func TestSubnetRoundTrip(t *testing.T) {
	subnets := []mgmt.ClientSubnet{
		{Name: "Corp", IPv4: []string{"10.10.0.0/16", "10.20.0.0/16"}, IPv6: []string{"2001:db8::/32"}},
		{Name: "Guest", IPv4: []string{"192.168.0.0/24"}},
	}

	var buf bytes.Buffer
	require.NoError(t, bulk.Export(&buf, projection.Subnets(subnets)))

	fake := &mgmttest.Fake{}
	report, err := newImporter(fake).ImportSubnets(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Empty(t, report.Failures)
	assert.Equal(t, subnets, fake.Subnets)
}

func TestImportSubnets_RowIsolation(t *testing.T) {
	csvData := strings.Join([]string{
		"Subnet Name,IPv4 Address(es),IPv6 Address(es)",
		"First,10.1.0.0/16,",
		"Broken,not-a-cidr,",
		"Third,10.3.0.0/16,",
	}, "\n")

	fake := &mgmttest.Fake{}
	report, err := newImporter(fake).ImportSubnets(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 2, report.Created)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 3, report.Failures[0].Line)
	assert.Contains(t, report.Failures[0].Error, "not-a-cidr")

	require.Len(t, fake.Subnets, 2)
	assert.Equal(t, "First", fake.Subnets[0].Name)
	assert.Equal(t, "Third", fake.Subnets[1].Name)
}

func TestImportScopes(t *testing.T) {
	csvData := "Scope Name,Zone\ninternal,corp.example.com\n"
	fake := &mgmttest.Fake{}
	report, err := newImporter(fake).ImportScopes(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	require.Len(t, fake.ScopesByZone["corp.example.com"], 1)
	assert.Equal(t, "internal", fake.ScopesByZone["corp.example.com"][0].Name)
}

func TestImportPolicies_RebuildsCriteria(t *testing.T) {
	csvData := strings.Join([]string{
		"Policy Name,Zone,Scope Name,Subnet Name,Action,Enabled",
		"corp-split,corp.example.com,internal,CorpSubnet,Allow,true",
	}, "\n")

	fake := &mgmttest.Fake{}
	report, err := newImporter(fake).ImportPolicies(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)

	policies := fake.PoliciesByZone["corp.example.com"]
	require.Len(t, policies, 1)
	assert.Equal(t, "EQ,CorpSubnet", policies[0].Criteria)
	assert.Equal(t, "internal", policies[0].ZoneScope)
	assert.True(t, policies[0].Enabled)
}

func TestImportRecords_UnsupportedTypeIsPerRowFailure(t *testing.T) {
	csvData := strings.Join([]string{
		"Name,Type,Data",
		"www,A,192.0.2.10",
		"mail,MX,[10] mail.corp.example.com",
		"alias,CNAME,www.corp.example.com",
	}, "\n")

	fake := &mgmttest.Fake{}
	report, err := newImporter(fake).ImportRecords(context.Background(), "corp.example.com", "internal", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Created)
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0].Error, "unsupported record type")
	assert.Len(t, fake.RecordsByView["corp.example.com/internal"], 2)
}

func TestImport_HeaderMismatchFailsWhole(t *testing.T) {
	fake := &mgmttest.Fake{}
	_, err := newImporter(fake).ImportSubnets(context.Background(), strings.NewReader("Wrong,Header\nCorp,10.0.0.0/8"))
	require.Error(t, err)
	assert.Equal(t, 0, fake.CallCount("CreateClientSubnet"))
}

func TestImport_EmptyFile(t *testing.T) {
	_, err := newImporter(&mgmttest.Fake{}).ImportScopes(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}
