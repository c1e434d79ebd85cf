package repository

import (
	"context"
	"net"

	"github.com/nvdberg/splithorizon/internal/mgmt"
)

// ClientSubnets lists all client subnets on the server.
func (r *Repository) ClientSubnets(ctx context.Context) ([]mgmt.ClientSubnet, error) {
	subnets, err := r.client.ListClientSubnets(ctx)
	if err != nil {
		return nil, &OpError{Op: "list", Kind: "client subnet", Err: err}
	}
	return subnets, nil
}

// CreateClientSubnet creates a named subnet. At least one prefix is
// required and every prefix must parse as a CIDR; nothing beyond that
// is validated (routability is the server's problem, not ours).
func (r *Repository) CreateClientSubnet(ctx context.Context, subnet mgmt.ClientSubnet) error {
	if err := validateSubnet(subnet); err != nil {
		return &OpError{Op: "create", Kind: "client subnet", Key: subnet.Name, Err: err}
	}
	err := r.client.CreateClientSubnet(ctx, subnet)
	r.recordOutcome("create", "client subnet", subnet.Name, err)
	if err != nil {
		return &OpError{Op: "create", Kind: "client subnet", Key: subnet.Name, Err: err}
	}
	return nil
}

// DeleteClientSubnet removes a subnet by name. Policies referencing it
// are left dangling on purpose; they show up as-is in policy listings.
func (r *Repository) DeleteClientSubnet(ctx context.Context, name string) error {
	if name == "" {
		return &OpError{Op: "delete", Kind: "client subnet",
			Err: validationError("subnet name is required")}
	}
	err := r.client.DeleteClientSubnet(ctx, name)
	r.recordOutcome("delete", "client subnet", name, err)
	if err != nil {
		return &OpError{Op: "delete", Kind: "client subnet", Key: name, Err: err}
	}
	return nil
}

func validateSubnet(subnet mgmt.ClientSubnet) error {
	if subnet.Name == "" {
		return validationError("subnet name is required")
	}
	if len(subnet.IPv4) == 0 && len(subnet.IPv6) == 0 {
		return validationError("subnet %q needs at least one IPv4 or IPv6 prefix", subnet.Name)
	}
	for _, prefix := range subnet.IPv4 {
		if _, _, err := net.ParseCIDR(prefix); err != nil {
			return validationError("invalid IPv4 prefix %q", prefix)
		}
	}
	for _, prefix := range subnet.IPv6 {
		if _, _, err := net.ParseCIDR(prefix); err != nil {
			return validationError("invalid IPv6 prefix %q", prefix)
		}
	}
	return nil
}
