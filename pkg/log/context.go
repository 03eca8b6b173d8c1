package log

import "context"

type ctxKey struct{}

// SetRequestID returns a copy of ctx carrying id. Loggers attach it as a
// request_id field.
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// GetRequestID returns the request id stored in ctx, if any.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
