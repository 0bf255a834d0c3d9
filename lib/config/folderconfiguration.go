// Copyright (C) 2016 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import "sort"

type FolderDeviceConfiguration struct {
	DeviceID string `json:"deviceID"`
}

type FolderConfiguration struct {
	ID          string                      `json:"id"`
	Label       string                      `json:"label"`
	CacheSize   string                      `json:"cacheSize"`
	PinnedFiles []string                    `json:"pinnedFiles"`
	Devices     []FolderDeviceConfiguration `json:"devices"`
}

func (f FolderConfiguration) Copy() FolderConfiguration {
	c := f
	c.PinnedFiles = make([]string, len(f.PinnedFiles))
	copy(c.PinnedFiles, f.PinnedFiles)
	c.Devices = make([]FolderDeviceConfiguration, len(f.Devices))
	copy(c.Devices, f.Devices)
	return c
}

// HasDevice reports whether the device is a member of this folder.
func (f *FolderConfiguration) HasDevice(deviceID string) bool {
	for _, device := range f.Devices {
		if device.DeviceID == deviceID {
			return true
		}
	}
	return false
}

func (f *FolderConfiguration) prepare() {
	if f.PinnedFiles == nil {
		f.PinnedFiles = []string{}
	}
	if f.Devices == nil {
		f.Devices = []FolderDeviceConfiguration{}
	}
	sort.Strings(f.PinnedFiles)
}

type FolderConfigurationList []FolderConfiguration

func (l FolderConfigurationList) Less(a, b int) bool {
	return l[a].ID < l[b].ID
}

func (l FolderConfigurationList) Swap(a, b int) {
	l[a], l[b] = l[b], l[a]
}

func (l FolderConfigurationList) Len() int {
	return len(l)
}
