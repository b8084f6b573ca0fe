// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// GenerateRequestID returns a new UUID v4 request identifier.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a context carrying the given request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID from the context, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns a logger enriched with the request ID from the context, if any.
// The returned pointer follows zerolog's Ctx convention so call sites read as
// logging.Ctx(ctx).Info().Msg(...).
func Ctx(ctx context.Context) *zerolog.Logger {
	base := Logger()
	if id := RequestIDFromContext(ctx); id != "" {
		enriched := base.With().Str("request_id", id).Logger()
		return &enriched
	}
	return &base
}

// WithComponent returns a logger tagged with a component name. Use this for
// package-scoped loggers so log lines can be attributed without grepping.
func WithComponent(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}
