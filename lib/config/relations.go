// Copyright (C) 2016 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package config

// The device/folder relationship is owned by the folder side: each folder
// lists its member device IDs. Editing happens from both sides, so the
// reverse view is derived on demand and selections are folded back into
// the folder lists here.

// FoldersContainingDevice returns the IDs of the folders that list the
// device as a member.
func (cfg *Configuration) FoldersContainingDevice(deviceID string) map[string]bool {
	selected := make(map[string]bool)
	for i := range cfg.Folders {
		if cfg.Folders[i].HasDevice(deviceID) {
			selected[cfg.Folders[i].ID] = true
		}
	}
	return selected
}

// ApplyDeviceFolderSelection patches folder memberships for a single
// device. A folder marked true gains the device, a folder marked
// explicitly false loses it, and a folder not present in the selection is
// left alone. The daemon's own device is never removed.
func (cfg *Configuration) ApplyDeviceFolderSelection(deviceID string, selectedFolders map[string]bool) {
	if deviceID == cfg.MyID {
		return
	}
	for i := range cfg.Folders {
		folder := &cfg.Folders[i]
		selected, mentioned := selectedFolders[folder.ID]

		switch {
		case selected && !folder.HasDevice(deviceID):
			folder.Devices = append(folder.Devices, FolderDeviceConfiguration{DeviceID: deviceID})
		case mentioned && !selected && folder.HasDevice(deviceID):
			folder.removeDevice(deviceID)
		}
	}
}

func (f *FolderConfiguration) removeDevice(deviceID string) {
	for i, device := range f.Devices {
		if device.DeviceID == deviceID {
			f.Devices = append(f.Devices[:i], f.Devices[i+1:]...)
			return
		}
	}
}

// DevicesOfFolder returns the IDs of the folder's member devices.
func (cfg *Configuration) DevicesOfFolder(folder FolderConfiguration) map[string]bool {
	selected := make(map[string]bool)
	for _, device := range folder.Devices {
		selected[device.DeviceID] = true
	}
	return selected
}

// ApplyFolderDeviceSelection rebuilds a folder's member list from a
// complete selection: the daemon's own device first, then every selected
// device in store order.
func (cfg *Configuration) ApplyFolderDeviceSelection(selectedDevices map[string]bool) []FolderDeviceConfiguration {
	devices := []FolderDeviceConfiguration{{DeviceID: cfg.MyID}}
	for _, device := range cfg.Devices {
		if device.DeviceID == cfg.MyID {
			continue
		}
		if selectedDevices[device.DeviceID] {
			devices = append(devices, FolderDeviceConfiguration{DeviceID: device.DeviceID})
		}
	}
	return devices
}

// RemoveDeviceEverywhere strips the device from every folder's member
// list and then from the device list itself.
func (cfg *Configuration) RemoveDeviceEverywhere(deviceID string) {
	for i := range cfg.Folders {
		cfg.Folders[i].removeDevice(deviceID)
	}
	for i, device := range cfg.Devices {
		if device.DeviceID == deviceID {
			cfg.Devices = append(cfg.Devices[:i], cfg.Devices[i+1:]...)
			return
		}
	}
}
