// Package mgmttest provides an in-memory mgmt.Client for tests.
package mgmttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/nvdberg/splithorizon/internal/mgmt"
	"github.com/nvdberg/splithorizon/internal/record"
)

// Fake is an in-memory management API. Zero value is usable. Mutations
// are applied to the in-memory state and recorded in Calls; per-zone
// listing failures can be injected to exercise the fan-out skip path.
type Fake struct {
	mu sync.Mutex

	Zones           []mgmt.Zone
	ScopesByZone    map[string][]mgmt.ZoneScope
	ScopeErrByZone  map[string]error
	Subnets         []mgmt.ClientSubnet
	PoliciesByZone  map[string][]mgmt.Policy
	PolicyErrByZone map[string]error
	RecordsByView   map[string][]mgmt.ResourceRecord

	// FailWith, when set, makes every mutation fail.
	FailWith error

	// Calls records every API call as "<method> <key>".
	Calls []string
}

var _ mgmt.Client = (*Fake)(nil)

func (f *Fake) call(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

// CallCount returns the number of recorded calls whose description
// starts with prefix.
func (f *Fake) CallCount(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *Fake) ListZones(context.Context) ([]mgmt.Zone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("ListZones")
	return append([]mgmt.Zone(nil), f.Zones...), nil
}

func (f *Fake) ListZoneScopes(_ context.Context, zone string) ([]mgmt.ZoneScope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("ListZoneScopes %s", zone)
	if err := f.ScopeErrByZone[zone]; err != nil {
		return nil, err
	}
	return append([]mgmt.ZoneScope(nil), f.ScopesByZone[zone]...), nil
}

func (f *Fake) CreateZoneScope(_ context.Context, zone, scope string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("CreateZoneScope %s/%s", zone, scope)
	if f.FailWith != nil {
		return f.FailWith
	}
	if f.ScopesByZone == nil {
		f.ScopesByZone = map[string][]mgmt.ZoneScope{}
	}
	f.ScopesByZone[zone] = append(f.ScopesByZone[zone], mgmt.ZoneScope{ZoneName: zone, Name: scope})
	return nil
}

func (f *Fake) DeleteZoneScope(_ context.Context, zone, scope string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("DeleteZoneScope %s/%s", zone, scope)
	if f.FailWith != nil {
		return f.FailWith
	}
	scopes := f.ScopesByZone[zone]
	for i, s := range scopes {
		if s.Name == scope {
			f.ScopesByZone[zone] = append(scopes[:i], scopes[i+1:]...)
			return nil
		}
	}
	return mgmt.ErrNotFound
}

func (f *Fake) ListClientSubnets(context.Context) ([]mgmt.ClientSubnet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("ListClientSubnets")
	return append([]mgmt.ClientSubnet(nil), f.Subnets...), nil
}

func (f *Fake) CreateClientSubnet(_ context.Context, subnet mgmt.ClientSubnet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("CreateClientSubnet %s", subnet.Name)
	if f.FailWith != nil {
		return f.FailWith
	}
	f.Subnets = append(f.Subnets, subnet)
	return nil
}

func (f *Fake) DeleteClientSubnet(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("DeleteClientSubnet %s", name)
	if f.FailWith != nil {
		return f.FailWith
	}
	for i, s := range f.Subnets {
		if s.Name == name {
			f.Subnets = append(f.Subnets[:i], f.Subnets[i+1:]...)
			return nil
		}
	}
	return mgmt.ErrNotFound
}

func (f *Fake) ListPolicies(_ context.Context, zone string) ([]mgmt.Policy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("ListPolicies %s", zone)
	if err := f.PolicyErrByZone[zone]; err != nil {
		return nil, err
	}
	return append([]mgmt.Policy(nil), f.PoliciesByZone[zone]...), nil
}

func (f *Fake) CreatePolicy(_ context.Context, policy mgmt.Policy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("CreatePolicy %s/%s", policy.ZoneName, policy.Name)
	if f.FailWith != nil {
		return f.FailWith
	}
	if f.PoliciesByZone == nil {
		f.PoliciesByZone = map[string][]mgmt.Policy{}
	}
	f.PoliciesByZone[policy.ZoneName] = append(f.PoliciesByZone[policy.ZoneName], policy)
	return nil
}

func (f *Fake) DeletePolicy(_ context.Context, zone, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("DeletePolicy %s/%s", zone, name)
	if f.FailWith != nil {
		return f.FailWith
	}
	policies := f.PoliciesByZone[zone]
	for i, p := range policies {
		if p.Name == name {
			f.PoliciesByZone[zone] = append(policies[:i], policies[i+1:]...)
			return nil
		}
	}
	return mgmt.ErrNotFound
}

func (f *Fake) ListRecords(_ context.Context, zone, scope string) ([]mgmt.ResourceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("ListRecords %s/%s", zone, scope)
	return append([]mgmt.ResourceRecord(nil), f.RecordsByView[zone+"/"+scope]...), nil
}

func (f *Fake) CreateRecord(_ context.Context, zone, scope, name string, data record.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("CreateRecord %s/%s/%s", zone, scope, name)
	if f.FailWith != nil {
		return f.FailWith
	}
	if f.RecordsByView == nil {
		f.RecordsByView = map[string][]mgmt.ResourceRecord{}
	}
	view := zone + "/" + scope
	f.RecordsByView[view] = append(f.RecordsByView[view], mgmt.ResourceRecord{
		Name: name,
		Type: data.Type(),
		Data: data,
	})
	return nil
}

func (f *Fake) DeleteRecord(_ context.Context, zone, scope, name string, rtype record.Type, data string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("DeleteRecord %s/%s/%s", zone, scope, name)
	if f.FailWith != nil {
		return f.FailWith
	}
	view := zone + "/" + scope
	records := f.RecordsByView[view]
	for i, rr := range records {
		if rr.Name != name || rr.Type != rtype {
			continue
		}
		if data != "" && rr.Data.EncodeData() != data {
			continue
		}
		f.RecordsByView[view] = append(records[:i], records[i+1:]...)
		return nil
	}
	return mgmt.ErrNotFound
}
