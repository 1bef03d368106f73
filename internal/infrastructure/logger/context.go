package logger

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is a type for context keys used by the logger package
type contextKey string

const (
	// LoggerKey is the context key for the logger
	LoggerKey contextKey = "logger"
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// BusinessIDKey is the context key for the business being operated on
	BusinessIDKey contextKey = "business_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from context, returns a no-op logger if
// not found
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID adds the request ID to the context and returns an enriched logger
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	enriched := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enriched), enriched
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithBusinessID adds the business ID to the context and returns an enriched logger
func WithBusinessID(ctx context.Context, logger *zap.Logger, businessID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, BusinessIDKey, businessID)
	enriched := logger.With(zap.String("business_id", businessID))
	return WithContext(ctx, enriched), enriched
}

// GetBusinessID retrieves the business ID from context
func GetBusinessID(ctx context.Context) string {
	if businessID, ok := ctx.Value(BusinessIDKey).(string); ok {
		return businessID
	}
	return ""
}
