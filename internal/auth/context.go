package auth

import "context"

type contextKey struct{}

// ThreadContext identifies the planning thread a request is acting on, after
// the middleware has verified it exists and is unlocked for this session.
type ThreadContext struct {
	ThreadID string
	Owner    string
}

func WithThread(ctx context.Context, tc ThreadContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

func FromContext(ctx context.Context) (ThreadContext, bool) {
	tc, ok := ctx.Value(contextKey{}).(ThreadContext)
	return tc, ok
}

// ThreadID returns the verified thread id on the request, or "".
func ThreadID(ctx context.Context) string {
	tc, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return tc.ThreadID
}

// Owner returns the owner username of the verified thread, or "".
func Owner(ctx context.Context) string {
	tc, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return tc.Owner
}
