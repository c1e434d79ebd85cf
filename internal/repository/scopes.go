package repository

import (
	"context"

	"github.com/nvdberg/splithorizon/internal/mgmt"
)

// scopeListResult is the per-zone outcome of the scope fan-out.
// Failures are kept alongside successes so the aggregation step can
// skip them deliberately instead of aborting the enumeration.
type scopeListResult struct {
	zone   string
	scopes []mgmt.ZoneScope
	err    error
}

// ZoneScopes lists all split-brain scopes across all managed zones.
// Zones whose scope enumeration fails are skipped; the default scope
// of each zone is suppressed.
func (r *Repository) ZoneScopes(ctx context.Context) ([]mgmt.ZoneScope, error) {
	zones, err := r.Zones(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]scopeListResult, 0, len(zones))
	for _, z := range zones {
		scopes, err := r.client.ListZoneScopes(ctx, z.Name)
		results = append(results, scopeListResult{zone: z.Name, scopes: scopes, err: err})
	}

	out := make([]mgmt.ZoneScope, 0, len(results))
	for _, res := range results {
		if res.err != nil {
			r.logger.Debug("skipping zone during scope enumeration", "zone", res.zone, "error", res.err)
			continue
		}
		for _, s := range res.scopes {
			if s.Name == res.zone {
				continue
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// CreateZoneScope creates a scope in the given zone.
func (r *Repository) CreateZoneScope(ctx context.Context, zone, scope string) error {
	key := zone + "/" + scope
	if zone == "" || scope == "" {
		return &OpError{Op: "create", Kind: "zone scope", Key: key,
			Err: validationError("zone and scope name are required")}
	}
	err := r.client.CreateZoneScope(ctx, zone, scope)
	r.recordOutcome("create", "zone scope", key, err)
	if err != nil {
		return &OpError{Op: "create", Kind: "zone scope", Key: key, Err: err}
	}
	return nil
}

// DeleteZoneScope removes a scope. The scope is not checked for
// contained records; the server deletes non-empty scopes without
// complaint.
func (r *Repository) DeleteZoneScope(ctx context.Context, zone, scope string) error {
	key := zone + "/" + scope
	if zone == "" || scope == "" {
		return &OpError{Op: "delete", Kind: "zone scope", Key: key,
			Err: validationError("zone and scope name are required")}
	}
	err := r.client.DeleteZoneScope(ctx, zone, scope)
	r.recordOutcome("delete", "zone scope", key, err)
	if err != nil {
		return &OpError{Op: "delete", Kind: "zone scope", Key: key, Err: err}
	}
	return nil
}
