// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package session

import (
	"context"
	"log/slog"

	"github.com/huaixv/syncthingfuse/lib/api"
	"github.com/huaixv/syncthingfuse/lib/config"
)

// Bootstrap performs the startup fetches: configuration and sync state.
// Either fetch may fail independently; the store then keeps its defaults
// and the session carries on with what it has.
func Bootstrap(ctx context.Context, client api.APIClient, store *config.Store) {
	if cfg, err := api.GetConfig(ctx, client); err != nil {
		slog.Warn("Fetching configuration", "error", err)
	} else {
		store.Set(cfg)
	}

	if insync, err := api.GetInSync(ctx, client); err != nil {
		slog.Debug("Fetching sync state", "error", err)
	} else {
		store.SetInSync(insync)
	}
}
