package repository

import (
	"context"

	"github.com/nvdberg/splithorizon/internal/mgmt"
)

// PolicyParams are the operator-supplied fields for a new
// query-resolution policy. The match criteria is always an equality
// match on the named client subnet.
type PolicyParams struct {
	Zone    string
	Name    string
	Scope   string
	Subnet  string
	Action  string
	Enabled bool
}

type policyListResult struct {
	zone     string
	policies []mgmt.Policy
	err      error
}

// Policies lists query-resolution policies across all managed zones,
// skipping zones whose policy enumeration fails. References to scopes
// or subnets that no longer exist are surfaced as-is.
func (r *Repository) Policies(ctx context.Context) ([]mgmt.Policy, error) {
	zones, err := r.Zones(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]policyListResult, 0, len(zones))
	for _, z := range zones {
		policies, err := r.client.ListPolicies(ctx, z.Name)
		results = append(results, policyListResult{zone: z.Name, policies: policies, err: err})
	}

	out := make([]mgmt.Policy, 0, len(results))
	for _, res := range results {
		if res.err != nil {
			r.logger.Debug("skipping zone during policy enumeration", "zone", res.zone, "error", res.err)
			continue
		}
		out = append(out, res.policies...)
	}
	return out, nil
}

// CreatePolicy creates a policy binding subnet matches to a zone scope.
func (r *Repository) CreatePolicy(ctx context.Context, params PolicyParams) error {
	key := params.Zone + "/" + params.Name
	if err := validatePolicy(params); err != nil {
		return &OpError{Op: "create", Kind: "policy", Key: key, Err: err}
	}
	policy := mgmt.Policy{
		ZoneName:  params.Zone,
		Name:      params.Name,
		Action:    params.Action,
		Enabled:   params.Enabled,
		Criteria:  mgmt.CriteriaPrefix + params.Subnet,
		ZoneScope: params.Scope,
	}
	err := r.client.CreatePolicy(ctx, policy)
	r.recordOutcome("create", "policy", key, err)
	if err != nil {
		return &OpError{Op: "create", Kind: "policy", Key: key, Err: err}
	}
	return nil
}

// DeletePolicy removes a policy; removal needs both the zone and the
// policy name.
func (r *Repository) DeletePolicy(ctx context.Context, zone, name string) error {
	key := zone + "/" + name
	if zone == "" || name == "" {
		return &OpError{Op: "delete", Kind: "policy", Key: key,
			Err: validationError("zone and policy name are required")}
	}
	err := r.client.DeletePolicy(ctx, zone, name)
	r.recordOutcome("delete", "policy", key, err)
	if err != nil {
		return &OpError{Op: "delete", Kind: "policy", Key: key, Err: err}
	}
	return nil
}

func validatePolicy(params PolicyParams) error {
	switch {
	case params.Zone == "":
		return validationError("zone is required")
	case params.Name == "":
		return validationError("policy name is required")
	case params.Scope == "":
		return validationError("zone scope is required")
	case params.Subnet == "":
		return validationError("client subnet is required")
	}
	switch params.Action {
	case mgmt.ActionAllow, mgmt.ActionBlock, mgmt.ActionOverride:
		return nil
	default:
		return validationError("unknown policy action %q", params.Action)
	}
}
