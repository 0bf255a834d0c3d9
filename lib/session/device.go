// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package session

import (
	"context"
	"sort"
	"strings"

	"github.com/huaixv/syncthingfuse/lib/config"
)

// DeviceDraft is a detached copy of a device under edit, plus the edit
// form of its addresses and its folder memberships.
type DeviceDraft struct {
	Device config.DeviceConfiguration

	// AddressesStr is the comma separated edit form of the address list.
	AddressesStr string

	// SelectedFolders maps folder ID to desired membership. A folder
	// absent from the map is left untouched on commit.
	SelectedFolders map[string]bool

	isNew bool
	dirty bool
}

func (*DeviceDraft) kind() Kind { return KindDevice }

func (d *DeviceDraft) IsNew() bool { return d.isNew }
func (d *DeviceDraft) Dirty() bool { return d.dirty }

// BeginAddDevice starts a draft for a new device with the defaults the
// GUI presents.
func (s *Session) BeginAddDevice() *DeviceDraft {
	d := &DeviceDraft{
		Device: config.DeviceConfiguration{
			Compression: config.CompressionMetadata,
		},
		AddressesStr:    "dynamic",
		SelectedFolders: make(map[string]bool),
		isNew:           true,
	}
	s.draft = d
	return d
}

// BeginEditDevice starts a draft for an existing device, pre-populated
// with its current folder memberships.
func (s *Session) BeginEditDevice(deviceID string) (*DeviceDraft, error) {
	device, ok := s.store.FindDevice(deviceID)
	if !ok {
		return nil, ErrDeviceNotFound
	}
	d := &DeviceDraft{
		Device:       device,
		AddressesStr: strings.Join(device.Addresses, ", "),
	}
	s.store.Modify(func(cfg *config.Configuration) {
		d.SelectedFolders = cfg.FoldersContainingDevice(deviceID)
	})
	s.draft = d
	return d, nil
}

// DeviceDraft returns the active device draft.
func (s *Session) DeviceDraft() (*DeviceDraft, error) {
	d, ok := s.draft.(*DeviceDraft)
	if !ok {
		return nil, ErrNoDraft
	}
	return d, nil
}

// UpdateDevice applies fn to the active device draft and marks it dirty.
func (s *Session) UpdateDevice(fn func(*DeviceDraft)) error {
	d, err := s.DeviceDraft()
	if err != nil {
		return err
	}
	fn(d)
	d.dirty = true
	return nil
}

// CommitDevice folds the draft back into the store and pushes the
// configuration. A draft for a device that was removed in the meantime
// fails with ErrDeviceNotFound and mutates nothing.
func (s *Session) CommitDevice(ctx context.Context) error {
	d, err := s.DeviceDraft()
	if err != nil {
		return err
	}

	device := d.Device.Copy()
	device.Addresses = splitAddresses(d.AddressesStr)

	var commitErr error
	s.store.Modify(func(cfg *config.Configuration) {
		if d.isNew {
			cfg.Devices = append(cfg.Devices, device)
			sort.Sort(config.DeviceConfigurationList(cfg.Devices))
		} else {
			idx, matches := -1, 0
			for i := range cfg.Devices {
				if cfg.Devices[i].DeviceID == device.DeviceID {
					idx = i
					matches++
				}
			}
			if matches != 1 {
				commitErr = ErrDeviceNotFound
				return
			}
			cfg.Devices[idx] = device
		}
		cfg.ApplyDeviceFolderSelection(device.DeviceID, d.SelectedFolders)
	})
	if commitErr != nil {
		return commitErr
	}

	s.draft = nil
	return s.pusher.Push(ctx, s.store.RawCopy())
}

// DeleteDevice removes the drafted device from the device list and from
// every folder, then pushes. There is no undo.
func (s *Session) DeleteDevice(ctx context.Context) error {
	d, err := s.DeviceDraft()
	if err != nil {
		return err
	}

	s.store.Modify(func(cfg *config.Configuration) {
		cfg.RemoveDeviceEverywhere(d.Device.DeviceID)
	})

	s.draft = nil
	return s.pusher.Push(ctx, s.store.RawCopy())
}
