package domain

import "time"

// AuditEntry records who changed what. Entries are appended asynchronously by
// the audit dispatcher; per-entity ordering is preserved by sharding.
type AuditEntry struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}
