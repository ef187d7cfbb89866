package security

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_NilContext(t *testing.T) {
	s := FromContext(nil) //nolint:staticcheck // Testing nil guard intentionally
	assert.Nil(t, s)
}

func TestFromContext_NoStore(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx))
	assert.Equal(t, int64(0), UserID(ctx))
	assert.Empty(t, UserName(ctx))
	assert.Empty(t, UserKey(ctx))
	assert.Empty(t, Permission(ctx))
}

func TestFromContext_NoStore_WriteIsDropped(t *testing.T) {
	ctx := context.Background()

	assert.NotPanics(t, func() { FromContext(ctx).SetUserID("7") })
	assert.NotPanics(t, func() { FromContext(ctx).Replace(map[string]Value{}) })
	assert.Equal(t, int64(0), UserID(ctx))
}

func TestWithContext_RoundTrip(t *testing.T) {
	s := New()
	s.SetUserID("42")
	s.SetUserName("alice")

	ctx := WithContext(context.Background(), s)

	assert.Same(t, s, FromContext(ctx))
	assert.Equal(t, int64(42), UserID(ctx))
	assert.Equal(t, "alice", UserName(ctx))
}

func TestEnsure_CreatesLazily(t *testing.T) {
	ctx, s := Ensure(context.Background())

	require.NotNil(t, s)
	assert.Same(t, s, FromContext(ctx))

	again, s2 := Ensure(ctx)
	assert.Same(t, s, s2)
	assert.Equal(t, ctx, again)
}

func TestEnsure_NilContext(t *testing.T) {
	ctx, s := Ensure(nil) //nolint:staticcheck // Testing nil guard intentionally

	require.NotNil(t, ctx)
	require.NotNil(t, s)
	assert.Same(t, s, FromContext(ctx))
}

func TestFork_ChildSeesParentValues(t *testing.T) {
	parent := New()
	parent.SetUserID("7")
	parent.SetPermission("admin,read")

	ctx := WithContext(context.Background(), parent)
	child := Fork(ctx)

	assert.Equal(t, int64(7), UserID(child))
	assert.Equal(t, "admin,read", Permission(child))
	assert.NotSame(t, parent, FromContext(child))
}

func TestFork_ParentMutationInvisibleToChild(t *testing.T) {
	parent := New()
	parent.SetUserName("bob")
	ctx := WithContext(context.Background(), parent)

	child := Fork(ctx)

	parent.SetUserName("eve")
	parent.Reset()

	assert.Equal(t, "bob", UserName(child))
}

func TestFork_WithoutStore(t *testing.T) {
	child := Fork(context.Background())

	s := FromContext(child)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
}

func TestIsolation_ConcurrentRequests(t *testing.T) {
	start := make(chan struct{})
	results := make([]string, 2)

	var wg sync.WaitGroup
	for i, value := range []string{"a", "b"} {
		wg.Go(func() {
			ctx, s := Ensure(context.Background())
			s.Set("k", value)

			<-start

			results[i] = FromContext(ctx).Get("k")
		})
	}

	close(start)
	wg.Wait()

	assert.Equal(t, []string{"a", "b"}, results)
}

func TestScenario_RequestThenReuse(t *testing.T) {
	// One store reused across two requests, as a pooled worker would.
	s := New()
	ctx := WithContext(context.Background(), s)

	s.SetUserID("7")
	s.SetUserName("bob")
	s.SetPermission("admin,read")

	assert.Equal(t, int64(7), UserID(ctx))
	assert.Equal(t, "bob", UserName(ctx))
	assert.Equal(t, "admin,read", Permission(ctx))

	s.Reset()

	assert.Equal(t, int64(0), UserID(ctx))
	assert.Empty(t, UserName(ctx))
}
