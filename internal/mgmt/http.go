package mgmt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nvdberg/splithorizon/internal/record"
)

// HTTPClient talks JSON over HTTP to the DNS server's management
// endpoint. One request per operation, no retries.
type HTTPClient struct {
	base   string
	apiKey string
	hc     *http.Client
}

// NewHTTPClient creates a client for the management endpoint at base
// (e.g. "http://dns1.corp.example:5380/api"). A zero timeout means the
// http.Client default (no timeout).
func NewHTTPClient(base, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		base:   strings.TrimRight(base, "/"),
		apiKey: apiKey,
		hc:     &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) ListZones(ctx context.Context) ([]Zone, error) {
	var zones []Zone
	if err := c.do(ctx, http.MethodGet, "/zones", nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *HTTPClient) ListZoneScopes(ctx context.Context, zone string) ([]ZoneScope, error) {
	var scopes []ZoneScope
	path := "/zones/" + url.PathEscape(zone) + "/scopes"
	if err := c.do(ctx, http.MethodGet, path, nil, &scopes); err != nil {
		return nil, err
	}
	// The server reports scope names only; stamp the owning zone so
	// callers always see the full (zone, scope) identity.
	for i := range scopes {
		scopes[i].ZoneName = zone
	}
	return scopes, nil
}

func (c *HTTPClient) CreateZoneScope(ctx context.Context, zone, scope string) error {
	path := "/zones/" + url.PathEscape(zone) + "/scopes"
	return c.do(ctx, http.MethodPost, path, ZoneScope{Name: scope}, nil)
}

func (c *HTTPClient) DeleteZoneScope(ctx context.Context, zone, scope string) error {
	path := "/zones/" + url.PathEscape(zone) + "/scopes/" + url.PathEscape(scope)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) ListClientSubnets(ctx context.Context) ([]ClientSubnet, error) {
	var subnets []ClientSubnet
	if err := c.do(ctx, http.MethodGet, "/clientsubnets", nil, &subnets); err != nil {
		return nil, err
	}
	return subnets, nil
}

func (c *HTTPClient) CreateClientSubnet(ctx context.Context, subnet ClientSubnet) error {
	return c.do(ctx, http.MethodPost, "/clientsubnets", subnet, nil)
}

func (c *HTTPClient) DeleteClientSubnet(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/clientsubnets/"+url.PathEscape(name), nil, nil)
}

func (c *HTTPClient) ListPolicies(ctx context.Context, zone string) ([]Policy, error) {
	var policies []Policy
	path := "/zones/" + url.PathEscape(zone) + "/policies"
	if err := c.do(ctx, http.MethodGet, path, nil, &policies); err != nil {
		return nil, err
	}
	for i := range policies {
		policies[i].ZoneName = zone
	}
	return policies, nil
}

func (c *HTTPClient) CreatePolicy(ctx context.Context, policy Policy) error {
	path := "/zones/" + url.PathEscape(policy.ZoneName) + "/policies"
	return c.do(ctx, http.MethodPost, path, policy, nil)
}

func (c *HTTPClient) DeletePolicy(ctx context.Context, zone, name string) error {
	path := "/zones/" + url.PathEscape(zone) + "/policies/" + url.PathEscape(name)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) ListRecords(ctx context.Context, zone, scope string) ([]ResourceRecord, error) {
	var payloads []recordPayload
	if err := c.do(ctx, http.MethodGet, recordsPath(zone, scope), nil, &payloads); err != nil {
		return nil, err
	}
	records := make([]ResourceRecord, 0, len(payloads))
	for _, p := range payloads {
		records = append(records, decodeRecordPayload(p))
	}
	return records, nil
}

func (c *HTTPClient) CreateRecord(ctx context.Context, zone, scope, name string, data record.Record) error {
	payload := recordPayload{
		Name: name,
		Type: string(data.Type()),
		Data: encodeRecordData(data),
	}
	return c.do(ctx, http.MethodPost, recordsPath(zone, scope), payload, nil)
}

func (c *HTTPClient) DeleteRecord(ctx context.Context, zone, scope, name string, rtype record.Type, data string) error {
	q := url.Values{}
	q.Set("name", name)
	q.Set("type", string(rtype))
	if data != "" {
		q.Set("data", data)
	}
	return c.do(ctx, http.MethodDelete, recordsPath(zone, scope)+"?"+q.Encode(), nil, nil)
}

func recordsPath(zone, scope string) string {
	return "/zones/" + url.PathEscape(zone) + "/scopes/" + url.PathEscape(scope) + "/records"
}

// apiError is the management API's error body.
type apiError struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("management api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae apiError
		if err := json.NewDecoder(resp.Body).Decode(&ae); err == nil && ae.Error != "" {
			return fmt.Errorf("management api: %s (status %d)", ae.Error, resp.StatusCode)
		}
		return fmt.Errorf("management api: unexpected status %d for %s %s", resp.StatusCode, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}
