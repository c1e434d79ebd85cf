package database

import (
	"fmt"
)

// AuditEntry is one recorded operation outcome.
type AuditEntry struct {
	ID        int64  `json:"id"`
	Op        string `json:"op"`
	Kind      string `json:"kind"`
	Key       string `json:"key"`
	Outcome   string `json:"outcome"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

// RecordOperation appends one operation outcome to the audit log.
func (db *DB) RecordOperation(op, kind, key, outcome, detail string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		INSERT INTO audit_log (op, kind, key, outcome, detail)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := db.conn.Exec(query, op, kind, key, outcome, detail); err != nil {
		return fmt.Errorf("record %s %s: %w", op, kind, err)
	}
	return nil
}

// RecentOperations returns the newest audit entries, most recent
// first, capped at limit.
func (db *DB) RecentOperations(limit int) ([]AuditEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, op, kind, key, outcome, detail, created_at
		FROM audit_log
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := db.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.Op, &e.Kind, &e.Key, &e.Outcome, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit log: %w", err)
	}
	return entries, nil
}
