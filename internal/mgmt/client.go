// Package mgmt is the client for the external DNS management API.
//
// The manager holds no configuration state of its own: every zone,
// zone scope, client subnet, query-resolution policy and resource
// record lives on the DNS server and is read and mutated through this
// client. Calls are synchronous, propagate the server's failure as-is,
// and are never retried.
package mgmt

import (
	"context"
	"errors"

	"github.com/nvdberg/splithorizon/internal/record"
)

// ErrNotFound is returned when the management API reports that the
// addressed entity does not exist.
var ErrNotFound = errors.New("entity not found")

// Client is the operation surface of the DNS management API.
type Client interface {
	// ListZones enumerates all zones on the server, including reverse
	// and pseudo zones; filtering happens in the repository layer.
	ListZones(ctx context.Context) ([]Zone, error)

	ListZoneScopes(ctx context.Context, zone string) ([]ZoneScope, error)
	CreateZoneScope(ctx context.Context, zone, scope string) error
	DeleteZoneScope(ctx context.Context, zone, scope string) error

	ListClientSubnets(ctx context.Context) ([]ClientSubnet, error)
	CreateClientSubnet(ctx context.Context, subnet ClientSubnet) error
	DeleteClientSubnet(ctx context.Context, name string) error

	ListPolicies(ctx context.Context, zone string) ([]Policy, error)
	CreatePolicy(ctx context.Context, policy Policy) error
	DeletePolicy(ctx context.Context, zone, name string) error

	ListRecords(ctx context.Context, zone, scope string) ([]ResourceRecord, error)
	CreateRecord(ctx context.Context, zone, scope, name string, data record.Record) error

	// DeleteRecord removes a record. For data-qualified types the data
	// string must match the record exactly; for the remaining types it
	// is ignored and removal is by name and type alone.
	DeleteRecord(ctx context.Context, zone, scope, name string, rtype record.Type, data string) error
}
