// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"context"

	"github.com/huaixv/syncthingfuse/lib/session"
)

type settingsCommand struct {
	Name          *string `help:"New name for this device"`
	MountPoint    *string `help:"New mount point"`
	ListenAddress *string `help:"New comma separated listen address list"`
}

func (c *settingsCommand) Run(ctx Context) error {
	bg := context.Background()
	sess, _, _, err := newSession(bg, ctx.clientFactory)
	if err != nil {
		return err
	}

	if _, err := sess.BeginEditSettings(); err != nil {
		return err
	}
	if err := sess.UpdateSettings(func(d *session.SettingsDraft) {
		if c.Name != nil {
			d.Name = *c.Name
		}
		if c.MountPoint != nil {
			d.MountPoint = *c.MountPoint
		}
		if c.ListenAddress != nil {
			d.ListenAddressStr = *c.ListenAddress
		}
	}); err != nil {
		return err
	}
	return sess.CommitSettings(bg)
}
