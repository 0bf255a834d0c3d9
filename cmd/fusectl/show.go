// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"context"

	"github.com/alecthomas/kong"
)

type showCommand struct {
	Config      struct{} `cmd:"" help:"Show the daemon configuration"`
	Insync      struct{} `cmd:"" help:"Show whether the daemon has caught up with the last pushed configuration"`
	Connections struct{} `cmd:"" help:"Show current connections to other devices"`
	Pins        struct{} `cmd:"" help:"Show pin resolution status"`
}

func (*showCommand) Run(ctx Context, kongCtx *kong.Context) error {
	f := ctx.clientFactory

	switch kongCtx.Selected().Name {
	case "config":
		return dumpOutput(context.Background(), f, "system/config")
	case "insync":
		return dumpOutput(context.Background(), f, "system/config/insync")
	case "connections":
		return dumpOutput(context.Background(), f, "system/connections")
	case "pins":
		return dumpOutput(context.Background(), f, "system/pins/status")
	}
	return nil
}
