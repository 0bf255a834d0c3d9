// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"fmt"

	"github.com/huaixv/syncthingfuse/lib/config"
	"github.com/huaixv/syncthingfuse/lib/session"
)

type deviceCommand struct {
	List   deviceListCommand   `cmd:"" help:"List configured devices"`
	Add    deviceAddCommand    `cmd:"" help:"Add a device and share folders with it"`
	Edit   deviceEditCommand   `cmd:"" help:"Edit an existing device"`
	Remove deviceRemoveCommand `cmd:"" help:"Remove a device from the configuration and from all folders"`
}

type deviceListCommand struct{}

func (*deviceListCommand) Run(ctx Context) error {
	_, store, _, err := newSession(context.Background(), ctx.clientFactory)
	if err != nil {
		return err
	}
	cfg := store.RawCopy()
	for _, device := range cfg.Devices {
		marker := " "
		if device.DeviceID == cfg.MyID {
			marker = "*"
		}
		fmt.Printf("%s %s  %s\n", marker, device.DeviceID, cfg.DeviceName(device))
	}
	return nil
}

type deviceAddCommand struct {
	DeviceID    string   `arg:"" help:"Device ID"`
	Name        string   `help:"Display name"`
	Addresses   string   `default:"dynamic" help:"Comma separated address list"`
	Compression string   `default:"metadata" enum:"none,metadata,always" help:"Compression mode"`
	Introducer  bool     `help:"Device may introduce other devices"`
	Folder      []string `placeholder:"ID" help:"Folder to share with the device (repeatable)"`
}

func (c *deviceAddCommand) Run(ctx Context) error {
	bg := context.Background()
	sess, _, _, err := newSession(bg, ctx.clientFactory)
	if err != nil {
		return err
	}

	sess.BeginAddDevice()
	if err := sess.UpdateDevice(func(d *session.DeviceDraft) {
		d.Device.DeviceID = c.DeviceID
		d.Device.Name = c.Name
		d.Device.Compression = config.Compression(c.Compression)
		d.Device.Introducer = c.Introducer
		d.AddressesStr = c.Addresses
		for _, folderID := range c.Folder {
			d.SelectedFolders[folderID] = true
		}
	}); err != nil {
		return err
	}
	return sess.CommitDevice(bg)
}

type deviceEditCommand struct {
	DeviceID   string   `arg:"" help:"Device ID"`
	Name       *string  `help:"New display name"`
	Addresses  *string  `help:"New comma separated address list"`
	Introducer *bool    `help:"Device may introduce other devices"`
	Share      []string `placeholder:"ID" help:"Folder to start sharing with the device (repeatable)"`
	Unshare    []string `placeholder:"ID" help:"Folder to stop sharing with the device (repeatable)"`
}

func (c *deviceEditCommand) Run(ctx Context) error {
	bg := context.Background()
	sess, _, _, err := newSession(bg, ctx.clientFactory)
	if err != nil {
		return err
	}

	if _, err := sess.BeginEditDevice(c.DeviceID); err != nil {
		return err
	}
	if err := sess.UpdateDevice(func(d *session.DeviceDraft) {
		if c.Name != nil {
			d.Device.Name = *c.Name
		}
		if c.Addresses != nil {
			d.AddressesStr = *c.Addresses
		}
		if c.Introducer != nil {
			d.Device.Introducer = *c.Introducer
		}
		for _, folderID := range c.Share {
			d.SelectedFolders[folderID] = true
		}
		for _, folderID := range c.Unshare {
			d.SelectedFolders[folderID] = false
		}
	}); err != nil {
		return err
	}
	return sess.CommitDevice(bg)
}

type deviceRemoveCommand struct {
	DeviceID string `arg:"" help:"Device ID"`
}

func (c *deviceRemoveCommand) Run(ctx Context) error {
	bg := context.Background()
	sess, _, _, err := newSession(bg, ctx.clientFactory)
	if err != nil {
		return err
	}

	if _, err := sess.BeginEditDevice(c.DeviceID); err != nil {
		return err
	}
	return sess.DeleteDevice(bg)
}
