// Package repository implements the configuration entity operations on
// top of the management API client: zone, zone scope, client subnet,
// query-resolution policy and resource record.
//
// Listing semantics:
//   - Reverse-lookup zones and the trust-anchor pseudo-zone never
//     appear in zone listings.
//   - Scope and policy listings fan out across all managed zones.
//     A failure for one zone (some zone kinds structurally cannot hold
//     scopes or policies) is skipped and enumeration continues; only a
//     failure of the zone enumeration itself fails the whole listing.
//   - A zone's default scope (scope name equal to the zone name) is
//     suppressed; it is not a split-brain scope.
//
// Every mutation outcome is recorded in the audit log when one is
// configured. Audit failures never fail the operation itself.
package repository

import (
	"log/slog"

	"github.com/nvdberg/splithorizon/internal/mgmt"
)

// Auditor receives the outcome of every mutating operation.
// *database.DB satisfies this.
type Auditor interface {
	RecordOperation(op, kind, key, outcome, detail string) error
}

// Repository executes entity operations against the management API.
type Repository struct {
	client mgmt.Client
	logger *slog.Logger
	audit  Auditor
}

// New creates a Repository. audit may be nil to disable the operation
// log.
func New(client mgmt.Client, logger *slog.Logger, audit Auditor) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{client: client, logger: logger, audit: audit}
}

// recordOutcome writes one audit row. Best-effort: a failing audit
// store must not turn a successful mutation into an error.
func (r *Repository) recordOutcome(op, kind, key string, opErr error) {
	if r.audit == nil {
		return
	}
	outcome, detail := "ok", ""
	if opErr != nil {
		outcome, detail = "error", opErr.Error()
	}
	if err := r.audit.RecordOperation(op, kind, key, outcome, detail); err != nil {
		r.logger.Warn("audit write failed", "op", op, "kind", kind, "key", key, "error", err)
	}
}
