package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyDrawingID contextKey = "drawing_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithDrawingID tags the context with the drawing a pipeline run works on.
func WithDrawingID(ctx context.Context, drawingID string) context.Context {
	return context.WithValue(ctx, ContextKeyDrawingID, drawingID)
}

// DrawingIDFromContext extracts the drawing ID from context
func DrawingIDFromContext(ctx context.Context) string {
	if drawingID, ok := ctx.Value(ContextKeyDrawingID).(string); ok {
		return drawingID
	}
	return ""
}
