// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/huaixv/syncthingfuse/lib/config"
	"github.com/huaixv/syncthingfuse/lib/session"
	"github.com/huaixv/syncthingfuse/lib/status"
)

type watchCommand struct {
	Interval time.Duration `default:"10s" help:"Print interval"`
}

// Run polls the daemon under a supervisor and prints connection and pin
// state until interrupted.
func (c *watchCommand) Run(ctx Context) error {
	bg, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := ctx.clientFactory.getClient()
	if err != nil {
		return err
	}

	store := config.NewStore()
	session.Bootstrap(bg, client, store)

	svc := status.NewService(client)
	supervisor := suture.NewSimple("watch")
	supervisor.Add(svc)
	errs := supervisor.ServeBackground(bg)

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-bg.Done():
			return nil
		case err := <-errs:
			return err
		case <-ticker.C:
			printStatus(store, svc)
		}
	}
}

func printStatus(store *config.Store, svc *status.Service) {
	cfg := store.RawCopy()
	for _, device := range cfg.OtherDevices() {
		state := "disconnected"
		if svc.IsDeviceConnected(device.DeviceID) {
			state = "connected"
		}
		fmt.Printf("%s  %s  %s\n", device.DeviceID, cfg.DeviceName(device), state)
	}
	for folderID, paths := range svc.PinStatus() {
		for path, state := range paths {
			fmt.Printf("%s %s: %s\n", folderID, path, state)
		}
	}
}
