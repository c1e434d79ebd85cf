package repository

import (
	"context"
	"regexp"

	"github.com/nvdberg/splithorizon/internal/mgmt"
)

// reverseLookupZone matches reverse-lookup zone names by suffix
// pattern, not prefix: the arpa suffix must terminate the name.
var reverseLookupZone = regexp.MustCompile(`(?i)(^|\.)(in-addr|ip6)\.arpa\.?$`)

// trustAnchorsZone is the pseudo-zone holding DNSSEC trust anchors.
const trustAnchorsZone = "TrustAnchors"

// IsManagedZone reports whether a zone participates in split-brain
// management. Reverse-lookup zones and the trust-anchor pseudo-zone do
// not.
func IsManagedZone(name string) bool {
	return name != trustAnchorsZone && !reverseLookupZone.MatchString(name)
}

// Zones lists the managed zones. Zones are read-only from this
// system's perspective: enumerated here, never created or deleted.
func (r *Repository) Zones(ctx context.Context) ([]mgmt.Zone, error) {
	zones, err := r.client.ListZones(ctx)
	if err != nil {
		return nil, &OpError{Op: "list", Kind: "zone", Err: err}
	}
	managed := make([]mgmt.Zone, 0, len(zones))
	for _, z := range zones {
		if IsManagedZone(z.Name) {
			managed = append(managed, z)
		}
	}
	return managed, nil
}
