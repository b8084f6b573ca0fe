// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package services

import (
	"context"
	"time"

	"github.com/kinotheca/kinotheca/internal/logging"
)

// Pinger matches the database handle's liveness check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabasePingService periodically verifies the catalog database is
// reachable so connectivity loss shows up in the logs before a request
// hits it.
type DatabasePingService struct {
	pinger   Pinger
	interval time.Duration
	name     string
}

// NewDatabasePingService creates a ping service with the given check
// interval.
func NewDatabasePingService(pinger Pinger, interval time.Duration) *DatabasePingService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &DatabasePingService{
		pinger:   pinger,
		interval: interval,
		name:     "database-ping",
	}
}

// Serve implements suture.Service.
func (s *DatabasePingService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := s.pinger.Ping(pingCtx)
			cancel()
			if err != nil {
				logging.Warn().Err(err).Msg("Database ping failed")
			}
		}
	}
}

// String implements fmt.Stringer for suture's log messages.
func (s *DatabasePingService) String() string {
	return s.name
}
