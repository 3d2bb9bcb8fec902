package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyMessageID is the key for storing the telemetry message ID in context.
	KeyMessageID ContextKey = "message_id"

	// KeyLogger is the key for storing a message-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderMessageID is the transport header carrying a producer-assigned message ID.
	HeaderMessageID = "Message-Id"
)

// ResolveMessageID returns the first non-empty candidate, or a new UUID when
// every candidate is empty.
func ResolveMessageID(candidates ...string) string {
	for _, id := range candidates {
		if id != "" {
			return id
		}
	}

	return uuid.New().String()
}

// GetMessageID extracts the message ID from context.Context.
// If not found, returns empty string.
func GetMessageID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyMessageID).(string); ok {
		return id
	}

	return ""
}

// WithMessageID returns a new context with the message ID.
func WithMessageID(ctx context.Context, messageID string) context.Context {
	return context.WithValue(ctx, KeyMessageID, messageID)
}

// GetLogger extracts the message-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the message-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
