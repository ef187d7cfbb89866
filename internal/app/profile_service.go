// Package app contains application services that orchestrate use cases.
// Services read the caller identity from the security context carried by
// ctx; they never see transport details.
package app

import (
	"context"
	"log/slog"

	"github.com/pmhub/secctx/internal/domain"
	"github.com/pmhub/secctx/internal/platform/logging"
	"github.com/pmhub/secctx/internal/security"
)

// ProfileService resolves the caller identity.
type ProfileService struct{}

// NewProfileService creates a profile service.
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Current returns the principal for the security context in ctx. A context
// without a store yields the anonymous principal.
func (s *ProfileService) Current(ctx context.Context) *domain.Principal {
	store := security.FromContext(ctx)

	p := &domain.Principal{
		UserID:      store.UserID(),
		UserName:    store.UserName(),
		HasUserKey:  store.UserKey() != security.Empty,
		Permissions: store.Permissions(),
	}

	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "resolved principal",
		slog.Any("security", store),
		slog.Bool("anonymous", p.IsAnonymous()),
	)

	return p
}
