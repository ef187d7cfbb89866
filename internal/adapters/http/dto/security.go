package dto

import (
	"time"

	"github.com/pmhub/secctx/internal/domain"
)

// PrincipalResponse describes the caller. The session key is never echoed.
type PrincipalResponse struct {
	UserID      int64    `json:"userId"`
	UserName    string   `json:"username"`
	HasUserKey  bool     `json:"hasUserKey"`
	Permissions []string `json:"permissions"`
	Anonymous   bool     `json:"anonymous"`
}

// NewPrincipalResponse converts a domain principal.
func NewPrincipalResponse(p *domain.Principal) *PrincipalResponse {
	perms := p.Permissions
	if perms == nil {
		perms = []string{}
	}

	return &PrincipalResponse{
		UserID:      p.UserID,
		UserName:    p.UserName,
		HasUserKey:  p.HasUserKey,
		Permissions: perms,
		Anonymous:   p.IsAnonymous(),
	}
}

// AuditRequest is the body of POST /api/v1/context/audit.
type AuditRequest struct {
	Action string `json:"action" validate:"required,notblank,max=64"`
	Detail string `json:"detail" validate:"max=512"`
}

// AuditResponse acknowledges a queued audit entry.
type AuditResponse struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	UserID     int64     `json:"userId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewAuditResponse converts a queued audit entry.
func NewAuditResponse(e *domain.AuditEntry) *AuditResponse {
	return &AuditResponse{
		ID:         e.ID,
		Action:     e.Action,
		UserID:     e.UserID,
		OccurredAt: e.OccurredAt,
	}
}
