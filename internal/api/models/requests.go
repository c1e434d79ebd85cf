package models

// ScopeCreateRequest creates a zone scope in the zone named by the
// URL.
type ScopeCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// SubnetCreateRequest creates a client subnet. IPv4 and IPv6 are
// comma-separated prefix lists; at least one must be non-empty.
type SubnetCreateRequest struct {
	Name string `json:"name" binding:"required"`
	IPv4 string `json:"ipv4"`
	IPv6 string `json:"ipv6"`
}

// PolicyCreateRequest creates a query-resolution policy in the zone
// named by the URL. The subnet match is always an equality match.
type PolicyCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Scope   string `json:"scope" binding:"required"`
	Subnet  string `json:"subnet" binding:"required"`
	Action  string `json:"action" binding:"required"`
	Enabled bool   `json:"enabled"`
}

// RecordCreateRequest creates a resource record in the (zone, scope)
// pair named by the URL. Only A, CNAME, TXT and PTR are accepted.
type RecordCreateRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
	Data string `json:"data" binding:"required"`
}

// ImportResponse reports a bulk import batch.
type ImportResponse struct {
	Rows     int             `json:"rows"`
	Created  int             `json:"created"`
	Failures []ImportFailure `json:"failures,omitempty"`
}

// ImportFailure is one rejected import row.
type ImportFailure struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

// ExportResponse reports where an export landed.
type ExportResponse struct {
	Path string `json:"path"`
}
