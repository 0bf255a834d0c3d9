// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package session

import (
	"context"

	"github.com/huaixv/syncthingfuse/lib/api"
	"github.com/huaixv/syncthingfuse/lib/config"
)

// Pusher is the single write path to the daemon.
type Pusher interface {
	Push(ctx context.Context, cfg config.Configuration) error
}

// Gateway pushes the full configuration to the daemon. A successful push
// clears the store's in-sync flag, as the daemon now has to re-converge
// on the new configuration. A failed push changes nothing locally: the
// optimistic local copy stays authoritative until the next fetch.
type Gateway struct {
	client api.APIClient
	store  *config.Store

	// Pushed, when set, is called after every successful push. The GUI
	// uses it to scroll back to the top of the page.
	Pushed func()
}

func NewGateway(client api.APIClient, store *config.Store) *Gateway {
	return &Gateway{client: client, store: store}
}

func (g *Gateway) Push(ctx context.Context, cfg config.Configuration) error {
	if err := api.PostConfig(ctx, g.client, cfg); err != nil {
		return err
	}
	g.store.SetInSync(false)
	if g.Pushed != nil {
		g.Pushed()
	}
	return nil
}
