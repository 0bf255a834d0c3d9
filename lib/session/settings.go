// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package session

import (
	"context"
	"strings"

	"github.com/huaixv/syncthingfuse/lib/config"
)

// SettingsDraft edits this device's name and the daemon wide options.
// It does not go through the device add/remove paths.
type SettingsDraft struct {
	Name             string
	MountPoint       string
	ListenAddressStr string

	dirty bool
}

func (*SettingsDraft) kind() Kind { return KindSettings }

func (d *SettingsDraft) Dirty() bool { return d.dirty }

func (s *Session) BeginEditSettings() (*SettingsDraft, error) {
	device, ok := s.store.ThisDevice()
	if !ok {
		return nil, ErrDeviceNotFound
	}
	cfg := s.store.RawCopy()
	d := &SettingsDraft{
		Name:             device.Name,
		MountPoint:       cfg.MountPoint,
		ListenAddressStr: strings.Join(cfg.Options.ListenAddress, ", "),
	}
	s.draft = d
	return d, nil
}

func (s *Session) SettingsDraft() (*SettingsDraft, error) {
	d, ok := s.draft.(*SettingsDraft)
	if !ok {
		return nil, ErrNoDraft
	}
	return d, nil
}

// UpdateSettings applies fn to the active settings draft and marks it
// dirty.
func (s *Session) UpdateSettings(fn func(*SettingsDraft)) error {
	d, err := s.SettingsDraft()
	if err != nil {
		return err
	}
	fn(d)
	d.dirty = true
	return nil
}

func (s *Session) CommitSettings(ctx context.Context) error {
	d, err := s.SettingsDraft()
	if err != nil {
		return err
	}

	s.store.Modify(func(cfg *config.Configuration) {
		for i := range cfg.Devices {
			if cfg.Devices[i].DeviceID == cfg.MyID {
				cfg.Devices[i].Name = d.Name
			}
		}
		cfg.MountPoint = d.MountPoint
		cfg.Options.ListenAddress = splitAddresses(d.ListenAddressStr)
	})

	s.draft = nil
	return s.pusher.Push(ctx, s.store.RawCopy())
}
