package domain

import "time"

// AuditEntry records an action taken by a principal. Entries are written
// asynchronously, after the request that produced them may have finished.
type AuditEntry struct {
	ID         string
	Action     string
	Detail     string
	UserID     int64
	UserName   string
	Permission string
	OccurredAt time.Time
}
