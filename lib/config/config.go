// Copyright (C) 2016 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config implements the in-memory model of the daemon
// configuration: devices, folders, pinned files and global options, plus
// the device/folder membership bookkeeping.
package config

import (
	"encoding/json"
	"sort"
	"strings"
)

type Configuration struct {
	MyID       string                `json:"myID"`
	Devices    []DeviceConfiguration `json:"devices"`
	Folders    []FolderConfiguration `json:"folders"`
	MountPoint string                `json:"mountPoint"`
	Options    OptionsConfiguration  `json:"options"`
}

type OptionsConfiguration struct {
	ListenAddress []string `json:"listenAddress"`
}

// Parse reads a wire format configuration and returns it in canonical
// form, with devices sorted by device ID and folders sorted by folder ID.
func Parse(bs []byte) (Configuration, error) {
	var cfg Configuration
	if err := json.Unmarshal(bs, &cfg); err != nil {
		return Configuration{}, err
	}
	cfg.prepare()
	return cfg, nil
}

func (cfg Configuration) Copy() Configuration {
	newCfg := cfg

	newCfg.Devices = make([]DeviceConfiguration, len(cfg.Devices))
	for i := range newCfg.Devices {
		newCfg.Devices[i] = cfg.Devices[i].Copy()
	}

	newCfg.Folders = make([]FolderConfiguration, len(cfg.Folders))
	for i := range newCfg.Folders {
		newCfg.Folders[i] = cfg.Folders[i].Copy()
	}

	newCfg.Options = cfg.Options.Copy()

	return newCfg
}

func (cfg *Configuration) prepare() {
	if cfg.Devices == nil {
		cfg.Devices = []DeviceConfiguration{}
	}
	if cfg.Folders == nil {
		cfg.Folders = []FolderConfiguration{}
	}
	if cfg.Options.ListenAddress == nil {
		cfg.Options.ListenAddress = []string{}
	}
	for i := range cfg.Folders {
		cfg.Folders[i].prepare()
	}

	sort.Sort(DeviceConfigurationList(cfg.Devices))
	sort.Sort(FolderConfigurationList(cfg.Folders))
}

// DeviceName returns the display name for a device: the configured name
// when one is set, otherwise a short form of the device ID.
func (cfg *Configuration) DeviceName(device DeviceConfiguration) string {
	if device.Name != "" {
		return device.Name
	}
	if len(device.DeviceID) > 6 {
		return device.DeviceID[:6]
	}
	return device.DeviceID
}

// SharesFolder returns the names of the folder's members other than this
// device, sorted and comma separated, for display.
func (cfg *Configuration) SharesFolder(folder FolderConfiguration) string {
	var names []string
	for _, member := range folder.Devices {
		if member.DeviceID == cfg.MyID {
			continue
		}
		if device, ok := cfg.FindDevice(member.DeviceID); ok {
			names = append(names, cfg.DeviceName(device))
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// FindDevice returns the device with the given ID. A device is only
// found if exactly one entry matches; duplicate IDs indicate a corrupt
// configuration and are reported as absent.
func (cfg *Configuration) FindDevice(deviceID string) (DeviceConfiguration, bool) {
	var found DeviceConfiguration
	matches := 0
	for _, device := range cfg.Devices {
		if device.DeviceID == deviceID {
			found = device
			matches++
		}
	}
	if matches != 1 {
		return DeviceConfiguration{}, false
	}
	return found, true
}

// ThisDevice returns the device entry for the daemon itself.
func (cfg *Configuration) ThisDevice() (DeviceConfiguration, bool) {
	for _, device := range cfg.Devices {
		if device.DeviceID == cfg.MyID {
			return device, true
		}
	}
	return DeviceConfiguration{}, false
}

// OtherDevices returns all devices except the daemon's own, in store
// order.
func (cfg *Configuration) OtherDevices() []DeviceConfiguration {
	devices := make([]DeviceConfiguration, 0, len(cfg.Devices))
	for _, device := range cfg.Devices {
		if device.DeviceID != cfg.MyID {
			devices = append(devices, device)
		}
	}
	return devices
}

func (o OptionsConfiguration) Copy() OptionsConfiguration {
	c := o
	c.ListenAddress = make([]string, len(o.ListenAddress))
	copy(c.ListenAddress, o.ListenAddress)
	return c
}
