// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"fmt"

	"github.com/huaixv/syncthingfuse/lib/api"
	"github.com/huaixv/syncthingfuse/lib/session"
)

type folderCommand struct {
	List   folderListCommand   `cmd:"" help:"List configured folders"`
	Add    folderAddCommand    `cmd:"" help:"Add a folder"`
	Edit   folderEditCommand   `cmd:"" help:"Edit an existing folder"`
	Remove folderRemoveCommand `cmd:"" help:"Remove a folder from the configuration"`
}

type folderListCommand struct{}

func (*folderListCommand) Run(ctx Context) error {
	_, store, _, err := newSession(context.Background(), ctx.clientFactory)
	if err != nil {
		return err
	}
	cfg := store.RawCopy()
	for _, folder := range cfg.Folders {
		fmt.Printf("%s  cache %s  pins %d  shared with: %s\n", folder.ID, folder.CacheSize, len(folder.PinnedFiles), cfg.SharesFolder(folder))
	}
	return nil
}

type folderAddCommand struct {
	ID        string   `arg:"" help:"Folder ID"`
	Label     string   `help:"Display label"`
	CacheSize string   `default:"512 MiB" help:"Local cache size, e.g. \"512 MiB\""`
	Device    []string `placeholder:"ID" help:"Device to share the folder with (repeatable)"`
}

func (c *folderAddCommand) Run(ctx Context) error {
	bg := context.Background()
	sess, _, client, err := newSession(bg, ctx.clientFactory)
	if err != nil {
		return err
	}

	// Let the daemon validate the size string before we commit to it.
	if err := api.VerifyHumanSize(bg, client, c.CacheSize); err != nil {
		return fmt.Errorf("cache size %q: %w", c.CacheSize, err)
	}

	sess.BeginAddFolder()
	if err := sess.UpdateFolder(func(d *session.FolderDraft) {
		d.Folder.ID = c.ID
		d.Folder.Label = c.Label
		d.Folder.CacheSize = c.CacheSize
		for _, deviceID := range c.Device {
			d.SelectedDevices[deviceID] = true
		}
	}); err != nil {
		return err
	}
	return sess.CommitFolder(bg)
}

type folderEditCommand struct {
	ID        string   `arg:"" help:"Folder ID"`
	Label     *string  `help:"New display label"`
	CacheSize *string  `help:"New local cache size"`
	Device    []string `placeholder:"ID" help:"Complete new device membership (repeatable)"`
}

func (c *folderEditCommand) Run(ctx Context) error {
	bg := context.Background()
	sess, _, _, err := newSession(bg, ctx.clientFactory)
	if err != nil {
		return err
	}

	if _, err := sess.BeginEditFolder(c.ID); err != nil {
		return err
	}
	if err := sess.UpdateFolder(func(d *session.FolderDraft) {
		if c.Label != nil {
			d.Folder.Label = *c.Label
		}
		if c.CacheSize != nil {
			d.Folder.CacheSize = *c.CacheSize
		}
		if len(c.Device) > 0 {
			d.SelectedDevices = make(map[string]bool)
			for _, deviceID := range c.Device {
				d.SelectedDevices[deviceID] = true
			}
		}
	}); err != nil {
		return err
	}
	return sess.CommitFolder(bg)
}

type folderRemoveCommand struct {
	ID string `arg:"" help:"Folder ID"`
}

func (c *folderRemoveCommand) Run(ctx Context) error {
	bg := context.Background()
	sess, _, _, err := newSession(bg, ctx.clientFactory)
	if err != nil {
		return err
	}

	if _, err := sess.BeginEditFolder(c.ID); err != nil {
		return err
	}
	return sess.DeleteFolder(bg)
}
