// Package security holds the per-request security attributes forwarded by the
// gateway: user id, username, user key and the permission string.
//
// # Lifecycle
//
// An inbound interceptor creates a Store at the start of a request, fills it
// from request headers and attaches it to the request context:
//
//	store := security.New()
//	store.SetUserID(r.Header.Get("user_id"))
//	ctx := security.WithContext(r.Context(), store)
//	defer store.Reset()
//
// Business code anywhere later in the call chain reads it back:
//
//	userID := security.UserID(ctx)
//	name := security.FromContext(ctx).UserName()
//
// Reads never fail. A missing store, a missing key or a malformed value all
// degrade to the empty string, zero or a caller supplied default.
//
// # Derived Tasks
//
// Goroutines started on behalf of a request receive a snapshot through Fork.
// The snapshot is a copy, so later writes or a Reset in the parent are not
// visible to the child:
//
//	go audit(security.Fork(ctx))
package security
