package security

import "context"

type ctxKey struct{}

// WithContext attaches a store to the context.
func WithContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the store, returning nil if none is attached or ctx is nil.
// The nil store is safe to use: reads degrade and writes are dropped.
func FromContext(ctx context.Context) *Store {
	if ctx == nil {
		return nil
	}

	if s, ok := ctx.Value(ctxKey{}).(*Store); ok {
		return s
	}

	return nil
}

// Ensure returns the store attached to ctx, creating and attaching an empty
// one when there is none.
func Ensure(ctx context.Context) (context.Context, *Store) {
	if s := FromContext(ctx); s != nil {
		return ctx, s
	}

	if ctx == nil {
		ctx = context.Background()
	}

	s := New()

	return WithContext(ctx, s), s
}

// Fork returns a context carrying a snapshot of the current store, for handing
// to derived goroutines. Cancellation and deadlines of ctx still apply.
func Fork(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return WithContext(ctx, FromContext(ctx).Snapshot())
}

// UserID reads the user id from the store in ctx.
func UserID(ctx context.Context) int64 {
	return FromContext(ctx).UserID()
}

// UserName reads the login name from the store in ctx.
func UserName(ctx context.Context) string {
	return FromContext(ctx).UserName()
}

// UserKey reads the session key from the store in ctx.
func UserKey(ctx context.Context) string {
	return FromContext(ctx).UserKey()
}

// Permission reads the permission string from the store in ctx.
func Permission(ctx context.Context) string {
	return FromContext(ctx).Permission()
}
