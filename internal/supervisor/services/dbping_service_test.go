// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type mockPinger struct {
	pingCount atomic.Int32
	err       error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	m.pingCount.Add(1)
	return m.err
}

func TestDatabasePingServiceTicks(t *testing.T) {
	t.Parallel()

	pinger := &mockPinger{}
	svc := NewDatabasePingService(pinger, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", err)
	}
	if pinger.pingCount.Load() == 0 {
		t.Error("expected at least one ping")
	}
}

func TestDatabasePingServiceSurvivesFailures(t *testing.T) {
	t.Parallel()

	pinger := &mockPinger{err: errors.New("connection lost")}
	svc := NewDatabasePingService(pinger, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	// Ping failures are logged, not fatal: the loop keeps running
	// until the context ends.
	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", err)
	}
	if pinger.pingCount.Load() < 2 {
		t.Error("expected the loop to continue past a failed ping")
	}
}

func TestDatabasePingServiceDefaultInterval(t *testing.T) {
	t.Parallel()

	svc := NewDatabasePingService(&mockPinger{}, 0)
	if svc.interval != 30*time.Second {
		t.Errorf("expected default interval 30s, got %v", svc.interval)
	}
	if svc.String() != "database-ping" {
		t.Errorf("unexpected service name %q", svc.String())
	}
}
