package repository

import (
	"context"

	"github.com/nvdberg/splithorizon/internal/mgmt"
	"github.com/nvdberg/splithorizon/internal/record"
)

// Records lists the resource records of one (zone, scope) pair. The
// pair is an explicit argument; there is no shared browsing context.
func (r *Repository) Records(ctx context.Context, zone, scope string) ([]mgmt.ResourceRecord, error) {
	key := zone + "/" + scope
	if zone == "" || scope == "" {
		return nil, &OpError{Op: "list", Kind: "record", Key: key,
			Err: validationError("zone and scope are required")}
	}
	records, err := r.client.ListRecords(ctx, zone, scope)
	if err != nil {
		return nil, &OpError{Op: "list", Kind: "record", Key: key, Err: err}
	}
	return records, nil
}

// CreateRecord creates a record in the given scope. Only A, CNAME, TXT
// and PTR can be created; any other type fails with
// record.ErrUnsupportedType before the management API is contacted.
func (r *Repository) CreateRecord(ctx context.Context, zone, scope, name string, rtype record.Type, data string) error {
	key := zone + "/" + scope + "/" + name
	if zone == "" || scope == "" || name == "" {
		return &OpError{Op: "create", Kind: "record", Key: key,
			Err: validationError("zone, scope and record name are required")}
	}
	rr, err := record.ParseCreateData(rtype, data)
	if err != nil {
		r.recordOutcome("create", "record", key, err)
		return &OpError{Op: "create", Kind: "record", Key: key, Err: err}
	}
	err = r.client.CreateRecord(ctx, zone, scope, name, rr)
	r.recordOutcome("create", "record", key, err)
	if err != nil {
		return &OpError{Op: "create", Kind: "record", Key: key, Err: err}
	}
	return nil
}

// DeleteRecord removes a record. Data-qualified types (A, AAAA, CNAME,
// TXT, PTR, NS) need the exact data string; the remaining types are
// removed by name and type alone and any supplied data is ignored.
func (r *Repository) DeleteRecord(ctx context.Context, zone, scope, name string, rtype record.Type, data string) error {
	key := zone + "/" + scope + "/" + name
	if zone == "" || scope == "" || name == "" {
		return &OpError{Op: "delete", Kind: "record", Key: key,
			Err: validationError("zone, scope and record name are required")}
	}
	if record.RequiresDataMatch(rtype) {
		if data == "" {
			return &OpError{Op: "delete", Kind: "record", Key: key,
				Err: validationError("record data is required to delete %s records", rtype)}
		}
	} else {
		data = ""
	}
	err := r.client.DeleteRecord(ctx, zone, scope, name, rtype, data)
	r.recordOutcome("delete", "record", key, err)
	if err != nil {
		return &OpError{Op: "delete", Kind: "record", Key: key, Err: err}
	}
	return nil
}
