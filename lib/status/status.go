// Copyright (C) 2019 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package status tracks transient daemon state: live connections and pin
// resolution status, refreshed on a fixed interval, plus path completion
// for the pin editor. Nothing here touches the configuration.
package status

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/huaixv/syncthingfuse/lib/api"
)

const pollInterval = 10 * time.Second

// Service polls the daemon for connection and pin status. It implements
// suture.Service; cancelling the context stops the timer.
type Service struct {
	client      api.APIClient
	connections *xsync.MapOf[string, api.Connection]
	pinsMut     sync.Mutex
	pins        map[string]map[string]string
	forceRun    chan struct{}
}

func NewService(client api.APIClient) *Service {
	return &Service{
		client:      client,
		connections: xsync.NewMapOf[string, api.Connection](),
		pins:        make(map[string]map[string]string),
		forceRun:    make(chan struct{}, 1), // Buffered to prevent locking
	}
}

func (s *Service) Serve(ctx context.Context) error {
	t := time.NewTimer(0)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.forceRun:
			t.Reset(0)
		case <-t.C:
			s.refresh(ctx)
			t.Reset(pollInterval)
		}
	}
}

// ForceRefresh schedules an immediate poll.
func (s *Service) ForceRefresh() {
	select {
	case s.forceRun <- struct{}{}:
	default:
		// s.forceRun is one buffered, so even though nothing
		// was sent, a run will still happen after this point.
	}
}

// refresh issues the two status fetches concurrently. Each is best
// effort: a failure keeps the previous value and must not block the
// other fetch.
func (s *Service) refresh(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.refreshConnections(ctx)
	}()
	go func() {
		defer wg.Done()
		s.refreshPins(ctx)
	}()
	wg.Wait()
}

func (s *Service) refreshConnections(ctx context.Context) {
	connections, err := api.GetConnections(ctx, s.client)
	if err != nil {
		slog.Debug("Refreshing connections", "error", err)
		return
	}
	seen := make(map[string]bool, len(connections))
	for _, connection := range connections {
		s.connections.Store(connection.DeviceID, connection)
		seen[connection.DeviceID] = true
	}
	s.connections.Range(func(deviceID string, _ api.Connection) bool {
		if !seen[deviceID] {
			s.connections.Delete(deviceID)
		}
		return true
	})
}

func (s *Service) refreshPins(ctx context.Context) {
	pins, err := api.GetPinStatus(ctx, s.client)
	if err != nil {
		slog.Debug("Refreshing pin status", "error", err)
		return
	}
	s.pinsMut.Lock()
	s.pins = pins
	s.pinsMut.Unlock()
}

// Connections returns a snapshot of the current connections, keyed by
// device ID.
func (s *Service) Connections() map[string]api.Connection {
	connections := make(map[string]api.Connection, s.connections.Size())
	s.connections.Range(func(deviceID string, connection api.Connection) bool {
		connections[deviceID] = connection
		return true
	})
	return connections
}

func (s *Service) IsDeviceConnected(deviceID string) bool {
	_, ok := s.connections.Load(deviceID)
	return ok
}

// PinStatus returns the latest pin resolution state, keyed by folder ID
// and then by path.
func (s *Service) PinStatus() map[string]map[string]string {
	s.pinsMut.Lock()
	defer s.pinsMut.Unlock()
	status := make(map[string]map[string]string, len(s.pins))
	for folderID, paths := range s.pins {
		folderStatus := make(map[string]string, len(paths))
		for path, state := range paths {
			folderStatus[path] = state
		}
		status[folderID] = folderStatus
	}
	return status
}

func (*Service) String() string {
	return "status.Service"
}
