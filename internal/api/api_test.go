// Package api_test provides behavior tests for the API package.
package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nvdberg/splithorizon/internal/api"
	"github.com/nvdberg/splithorizon/internal/api/handlers"
	"github.com/nvdberg/splithorizon/internal/api/models"
	"github.com/nvdberg/splithorizon/internal/config"
	"github.com/nvdberg/splithorizon/internal/mgmt"
	"github.com/nvdberg/splithorizon/internal/mgmt/mgmttest"
	"github.com/nvdberg/splithorizon/internal/record"
	"github.com/nvdberg/splithorizon/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 8053,
		},
		Upstream: config.UpstreamConfig{
			Endpoint: "http://127.0.0.1:5380",
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(cfg *config.Config, fake *mgmttest.Fake) *api.Server {
	logger := testLogger()
	repo := repository.New(fake, logger, nil)
	h := handlers.New(cfg, repo, nil, logger)
	return api.New(cfg, h, logger)
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seededFake() *mgmttest.Fake {
	return &mgmttest.Fake{
		Zones: []mgmt.Zone{
			{Name: "corp.example.com", Kind: "Primary"},
			{Name: "10.in-addr.arpa", Kind: "Primary"},
			{Name: "TrustAnchors", Kind: "Primary"},
		},
		ScopesByZone: map[string][]mgmt.ZoneScope{
			"corp.example.com": {
				{ZoneName: "corp.example.com", Name: "corp.example.com"}, // default scope
				{ZoneName: "corp.example.com", Name: "internal"},
			},
		},
		Subnets: []mgmt.ClientSubnet{
			{Name: "office", IPv4: []string{"10.1.0.0/16"}},
		},
		PoliciesByZone: map[string][]mgmt.Policy{
			"corp.example.com": {
				{
					ZoneName:  "corp.example.com",
					Name:      "office-internal",
					Action:    "Allow",
					Enabled:   true,
					Criteria:  mgmt.CriteriaPrefix + "office",
					ZoneScope: "internal",
				},
			},
		},
		RecordsByView: map[string][]mgmt.ResourceRecord{
			"corp.example.com/internal": {
				{Name: "intranet", Type: record.TypeA, TTL: 300, Data: record.NewIPRecord(net.ParseIP("10.1.2.3"))},
			},
		},
	}
}

// ============================================================================
// Server Creation Tests
// ============================================================================

func TestNew_CreatesServer(t *testing.T) {
	server := newTestServer(createTestConfig(), &mgmttest.Fake{})

	assert.NotNil(t, server)
}

func TestNew_PanicsOnNilConfig(t *testing.T) {
	assert.Panics(t, func() {
		api.New(nil, nil, testLogger())
	})
}

func TestServer_Addr(t *testing.T) {
	cfg := createTestConfig()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 9090

	server := newTestServer(cfg, &mgmttest.Fake{})

	assert.Equal(t, "0.0.0.0:9090", server.Addr())
}

func TestServer_Engine(t *testing.T) {
	server := newTestServer(createTestConfig(), &mgmttest.Fake{})

	assert.NotNil(t, server.Engine())
}

// ============================================================================
// System Endpoint Tests
// ============================================================================

func TestRoutes_HealthEndpoint(t *testing.T) {
	server := newTestServer(createTestConfig(), &mgmttest.Fake{})

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestRoutes_StatsEndpoint(t *testing.T) {
	server := newTestServer(createTestConfig(), &mgmttest.Fake{})

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ServerStatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Uptime)
}

func TestRoutes_AuditEndpoint_Disabled(t *testing.T) {
	server := newTestServer(createTestConfig(), &mgmttest.Fake{})

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/audit", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ============================================================================
// Entity Endpoint Tests
// ============================================================================

func TestRoutes_ListZones_FiltersInfrastructureZones(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/zones", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ZoneListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "corp.example.com", resp.Zones[0].Name)
}

func TestRoutes_ListScopes_SuppressesDefaultScope(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/scopes", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.TableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Scope Name", "Zone"}, resp.Columns)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, []string{"internal", "corp.example.com"}, resp.Rows[0])
}

func TestRoutes_CreateScope(t *testing.T) {
	fake := seededFake()
	server := newTestServer(createTestConfig(), fake)

	w := performRequest(server.Engine(), http.MethodPost,
		"/api/v1/zones/corp.example.com/scopes", `{"name":"guest"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, fake.CallCount("CreateZoneScope corp.example.com/guest"))
}

func TestRoutes_CreateScope_MissingName(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodPost,
		"/api/v1/zones/corp.example.com/scopes", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_DeleteScope(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodDelete,
		"/api/v1/zones/corp.example.com/scopes/internal", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_DeleteScope_NotFound(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodDelete,
		"/api/v1/zones/corp.example.com/scopes/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_ListSubnets(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/subnets", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.TableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, []string{"office", "10.1.0.0/16", ""}, resp.Rows[0])
}

func TestRoutes_CreateSubnet(t *testing.T) {
	fake := seededFake()
	server := newTestServer(createTestConfig(), fake)

	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/subnets",
		`{"name":"branch","ipv4":"192.168.10.0/24,192.168.11.0/24"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, fake.CallCount("CreateClientSubnet branch"))
}

func TestRoutes_CreateSubnet_BadPrefix(t *testing.T) {
	fake := seededFake()
	server := newTestServer(createTestConfig(), fake)

	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/subnets",
		`{"name":"branch","ipv4":"not-a-cidr"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Rejected before the management API is contacted.
	assert.Equal(t, 0, fake.CallCount("CreateClientSubnet"))
}

func TestRoutes_DeleteSubnet(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodDelete, "/api/v1/subnets/office", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_ListPolicies_ResolvesSubnetName(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/policies", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.TableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t,
		[]string{"office-internal", "corp.example.com", "internal", "office", "Allow", "true"},
		resp.Rows[0])
}

func TestRoutes_CreatePolicy(t *testing.T) {
	fake := seededFake()
	server := newTestServer(createTestConfig(), fake)

	w := performRequest(server.Engine(), http.MethodPost,
		"/api/v1/zones/corp.example.com/policies",
		`{"name":"guest-block","scope":"internal","subnet":"office","action":"Block","enabled":true}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, fake.CallCount("CreatePolicy corp.example.com/guest-block"))
}

func TestRoutes_DeletePolicy(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodDelete,
		"/api/v1/zones/corp.example.com/policies/office-internal", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_ListRecords(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodGet,
		"/api/v1/zones/corp.example.com/scopes/internal/records", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.TableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, []string{"intranet", "A", "10.1.2.3"}, resp.Rows[0])
}

func TestRoutes_CreateRecord(t *testing.T) {
	fake := seededFake()
	server := newTestServer(createTestConfig(), fake)

	w := performRequest(server.Engine(), http.MethodPost,
		"/api/v1/zones/corp.example.com/scopes/internal/records",
		`{"name":"portal","type":"CNAME","data":"intranet.corp.example.com"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, fake.CallCount("CreateRecord corp.example.com/internal/portal"))
}

func TestRoutes_CreateRecord_UnsupportedType(t *testing.T) {
	fake := seededFake()
	server := newTestServer(createTestConfig(), fake)

	w := performRequest(server.Engine(), http.MethodPost,
		"/api/v1/zones/corp.example.com/scopes/internal/records",
		`{"name":"mail","type":"MX","data":"[10] mx.corp.example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, fake.CallCount("CreateRecord"))
}

func TestRoutes_DeleteRecord(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodDelete,
		"/api/v1/zones/corp.example.com/scopes/internal/records?name=intranet&type=A&data=10.1.2.3", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_DeleteRecord_MissingData(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	// A records are data-qualified; deleting without data is a
	// validation error.
	w := performRequest(server.Engine(), http.MethodDelete,
		"/api/v1/zones/corp.example.com/scopes/internal/records?name=intranet&type=A", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ============================================================================
// Bulk Transfer Tests
// ============================================================================

func TestRoutes_ExportScopes(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/export/scopes", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "SplitBrain_Export_")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Scope Name,Zone", strings.TrimSpace(lines[0]))
	assert.Equal(t, "internal,corp.example.com", strings.TrimSpace(lines[1]))
}

func TestRoutes_Export_UnknownKind(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/export/bogus", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_ImportSubnets_PerRowIsolation(t *testing.T) {
	fake := seededFake()
	server := newTestServer(createTestConfig(), fake)

	csv := "Subnet Name,IPv4 Address(es),IPv6 Address(es)\n" +
		"lab,10.9.0.0/24,\n" +
		"broken,not-a-cidr,\n" +
		"dmz,10.8.0.0/24,\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/subnets", strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Rows)
	assert.Equal(t, 2, resp.Created)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, 3, resp.Failures[0].Line)
}

func TestRoutes_ImportRecords_NeedsZoneAndScope(t *testing.T) {
	server := newTestServer(createTestConfig(), seededFake())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/records",
		strings.NewReader("Name,Type,Data\n"))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ============================================================================
// API Key Protection Tests
// ============================================================================

func TestRoutes_WithAPIKey_ValidKey(t *testing.T) {
	cfg := createTestConfig()
	cfg.Server.APIKey = "secret-key"
	server := newTestServer(cfg, &mgmttest.Fake{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-API-Key", "secret-key")
	w := httptest.NewRecorder()

	server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_WithAPIKey_InvalidKey(t *testing.T) {
	cfg := createTestConfig()
	cfg.Server.APIKey = "secret-key"
	server := newTestServer(cfg, &mgmttest.Fake{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	w := httptest.NewRecorder()

	server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_WithAPIKey_MissingKey(t *testing.T) {
	cfg := createTestConfig()
	cfg.Server.APIKey = "secret-key"
	server := newTestServer(cfg, &mgmttest.Fake{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	// No X-API-Key header
	w := httptest.NewRecorder()

	server.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_NoAPIKey_NoAuth(t *testing.T) {
	cfg := createTestConfig()
	cfg.Server.APIKey = ""
	server := newTestServer(cfg, &mgmttest.Fake{})

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

// ============================================================================
// Server Lifecycle Tests
// ============================================================================

func TestServer_Shutdown(t *testing.T) {
	cfg := createTestConfig()
	cfg.Server.Port = 0 // Let the OS pick a port
	server := newTestServer(cfg, &mgmttest.Fake{})

	// Shutdown should not error even if never started
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := server.Shutdown(ctx)
	assert.NoError(t, err)
}

// ============================================================================
// Swagger and UI Tests
// ============================================================================

func TestRoutes_SwaggerEndpoint(t *testing.T) {
	server := newTestServer(createTestConfig(), &mgmttest.Fake{})

	w := performRequest(server.Engine(), http.MethodGet, "/swagger/index.html", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_UIPlaceholder(t *testing.T) {
	server := newTestServer(createTestConfig(), &mgmttest.Fake{})

	w := performRequest(server.Engine(), http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SplitHorizon")
}

// ============================================================================
// Not Found Tests
// ============================================================================

func TestRoutes_NotFound(t *testing.T) {
	server := newTestServer(createTestConfig(), &mgmttest.Fake{})

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
