// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"fmt"

	"github.com/huaixv/syncthingfuse/lib/status"
)

type pinCommand struct {
	List   pinListCommand   `cmd:"" help:"List pinned files in a folder"`
	Add    pinAddCommand    `cmd:"" help:"Pin a file in a folder"`
	Remove pinRemoveCommand `cmd:"" help:"Unpin a file in a folder"`
	Browse pinBrowseCommand `cmd:"" help:"List path completion candidates for a folder"`
}

type pinListCommand struct {
	FolderID string `arg:"" help:"Folder ID"`
}

func (c *pinListCommand) Run(ctx Context) error {
	_, store, _, err := newSession(context.Background(), ctx.clientFactory)
	if err != nil {
		return err
	}
	folder, ok := store.FindFolder(c.FolderID)
	if !ok {
		return fmt.Errorf("folder %q not found", c.FolderID)
	}
	for _, path := range folder.PinnedFiles {
		fmt.Println(path)
	}
	return nil
}

type pinAddCommand struct {
	FolderID string `arg:"" help:"Folder ID"`
	Path     string `arg:"" help:"Path to pin"`
}

func (c *pinAddCommand) Run(ctx Context) error {
	bg := context.Background()
	sess, _, _, err := newSession(bg, ctx.clientFactory)
	if err != nil {
		return err
	}
	if _, err := sess.BeginEditPins(c.FolderID); err != nil {
		return err
	}
	if err := sess.AddPin(c.Path); err != nil {
		return err
	}
	return sess.CommitPins(bg)
}

type pinRemoveCommand struct {
	FolderID string `arg:"" help:"Folder ID"`
	Path     string `arg:"" help:"Path to unpin"`
}

func (c *pinRemoveCommand) Run(ctx Context) error {
	bg := context.Background()
	sess, _, _, err := newSession(bg, ctx.clientFactory)
	if err != nil {
		return err
	}
	if _, err := sess.BeginEditPins(c.FolderID); err != nil {
		return err
	}
	if err := sess.RemovePin(c.Path); err != nil {
		return err
	}
	return sess.CommitPins(bg)
}

type pinBrowseCommand struct {
	FolderID   string `arg:"" help:"Folder ID"`
	PathPrefix string `arg:"" optional:"" help:"Path prefix to complete"`
}

func (c *pinBrowseCommand) Run(ctx Context) error {
	bg := context.Background()
	client, err := ctx.clientFactory.getClient()
	if err != nil {
		return err
	}
	completer := status.NewCompleter(client)
	if err := completer.Update(bg, c.FolderID, c.PathPrefix); err != nil {
		return err
	}
	for _, path := range completer.Suggestions() {
		fmt.Println(path)
	}
	return nil
}
