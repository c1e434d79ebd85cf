package bulk

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/nvdberg/splithorizon/internal/projection"
	"github.com/nvdberg/splithorizon/internal/record"
	"github.com/nvdberg/splithorizon/internal/repository"
)

// RowFailure is one rejected import row, kept for operator visibility.
type RowFailure struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

// Report summarizes an import batch. Rows counts data rows seen,
// Created the ones that resulted in a new entity.
type Report struct {
	Rows     int          `json:"rows"`
	Created  int          `json:"created"`
	Failures []RowFailure `json:"failures,omitempty"`
}

// Importer creates entities from CSV rows through the repository.
type Importer struct {
	repo *repository.Repository
}

// NewImporter creates an Importer backed by repo.
func NewImporter(repo *repository.Repository) *Importer {
	return &Importer{repo: repo}
}

// ImportScopes reads (Scope Name, Zone) rows and creates zone scopes.
func (im *Importer) ImportScopes(ctx context.Context, r io.Reader) (*Report, error) {
	return importRows(r, projection.ScopeColumns, func(row []string) error {
		zone, scope, err := projection.ParseScopeRow(row)
		if err != nil {
			return err
		}
		return im.repo.CreateZoneScope(ctx, zone, scope)
	})
}

// ImportSubnets reads (Subnet Name, IPv4, IPv6) rows and creates
// client subnets, splitting the comma-joined prefix cells.
func (im *Importer) ImportSubnets(ctx context.Context, r io.Reader) (*Report, error) {
	return importRows(r, projection.SubnetColumns, func(row []string) error {
		subnet, err := projection.ParseSubnetRow(row)
		if err != nil {
			return err
		}
		return im.repo.CreateClientSubnet(ctx, subnet)
	})
}

// ImportPolicies reads policy rows and creates query-resolution
// policies.
func (im *Importer) ImportPolicies(ctx context.Context, r io.Reader) (*Report, error) {
	return importRows(r, projection.PolicyColumns, func(row []string) error {
		p, err := projection.ParsePolicyRow(row)
		if err != nil {
			return err
		}
		return im.repo.CreatePolicy(ctx, repository.PolicyParams{
			Zone:    p.Zone,
			Name:    p.Name,
			Scope:   p.Scope,
			Subnet:  p.Subnet,
			Action:  p.Action,
			Enabled: p.Enabled,
		})
	})
}

// ImportRecords reads (Name, Type, Data) rows and creates records in
// the given (zone, scope) pair. Rows with types outside the creatable
// set fail individually, like any other bad row.
func (im *Importer) ImportRecords(ctx context.Context, zone, scope string, r io.Reader) (*Report, error) {
	return importRows(r, projection.RecordColumns, func(row []string) error {
		name, rtype, data, err := projection.ParseRecordRow(row)
		if err != nil {
			return err
		}
		return im.repo.CreateRecord(ctx, zone, scope, name, record.Type(rtype), data)
	})
}

// importRows runs the per-row batch: header must match the schema,
// then each data row is attempted independently. A row failure lands
// in the report and the batch continues.
func importRows(r io.Reader, columns []string, create func(row []string) error) (*Report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("import file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if !equalHeader(header, columns) {
		return nil, fmt.Errorf("unexpected csv header %v, want %v", header, columns)
	}

	report := &Report{}
	line := 1
	for {
		line++
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.Rows++
			report.Failures = append(report.Failures, RowFailure{Line: line, Error: err.Error()})
			continue
		}
		report.Rows++
		if err := create(row); err != nil {
			report.Failures = append(report.Failures, RowFailure{Line: line, Error: err.Error()})
			continue
		}
		report.Created++
	}
	return report, nil
}

func equalHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
