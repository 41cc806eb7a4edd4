package ctxutil

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey       ctxKey = "user_id"
	requestIDKey    ctxKey = "request_id"
	capabilitiesKey ctxKey = "capabilities"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithCapabilities stores the caller's capabilities in the context,
// replacing any set earlier.
func WithCapabilities(ctx context.Context, caps ...string) context.Context {
	return context.WithValue(ctx, capabilitiesKey, slices.Clone(caps))
}

// HasCapability reports whether the caller holds the named capability.
func HasCapability(ctx context.Context, capability string) bool {
	caps, _ := ctx.Value(capabilitiesKey).([]string)
	return slices.Contains(caps, capability)
}
