// Copyright (C) 2016 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestParseSortsDevicesAndFolders(t *testing.T) {
	bs := []byte(`{
		"myID": "A",
		"devices": [{"deviceID": "B"}, {"deviceID": "A"}],
		"folders": [{"id": "photos"}, {"id": "music"}]
	}`)

	cfg, err := Parse(bs)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Devices[0].DeviceID != "A" || cfg.Devices[1].DeviceID != "B" {
		t.Errorf("devices not sorted by ID: %v", cfg.Devices)
	}
	if cfg.Folders[0].ID != "music" || cfg.Folders[1].ID != "photos" {
		t.Errorf("folders not sorted by ID: %v", cfg.Folders)
	}
}

func TestParseNormalizesNilSlices(t *testing.T) {
	cfg, err := Parse([]byte(`{"myID": "A", "devices": [], "folders": [{"id": "f"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Folders[0].PinnedFiles == nil {
		t.Error("PinnedFiles should not be nil after parse")
	}
	if cfg.Folders[0].Devices == nil {
		t.Error("Devices should not be nil after parse")
	}
	if cfg.Options.ListenAddress == nil {
		t.Error("ListenAddress should not be nil after parse")
	}
}

func TestParseSortsPinnedFiles(t *testing.T) {
	cfg, err := Parse([]byte(`{"folders": [{"id": "f", "pinnedFiles": ["/b", "/a"]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"/a", "/b"}
	if diff, equal := messagediff.PrettyDiff(expected, cfg.Folders[0].PinnedFiles); !equal {
		t.Errorf("pinned files differ. Diff:\n%s", diff)
	}
}

func TestFindDevice(t *testing.T) {
	cfg := Configuration{
		Devices: []DeviceConfiguration{
			{DeviceID: "A"},
			{DeviceID: "B"},
			{DeviceID: "B"},
		},
	}

	if _, ok := cfg.FindDevice("A"); !ok {
		t.Error("A should be found")
	}
	if _, ok := cfg.FindDevice("B"); ok {
		t.Error("duplicate B must be reported as absent")
	}
	if _, ok := cfg.FindDevice("C"); ok {
		t.Error("C should not be found")
	}
}

func TestThisAndOtherDevices(t *testing.T) {
	cfg := Configuration{
		MyID: "B",
		Devices: []DeviceConfiguration{
			{DeviceID: "A"},
			{DeviceID: "B", Name: "me"},
			{DeviceID: "C"},
		},
	}

	device, ok := cfg.ThisDevice()
	if !ok || device.Name != "me" {
		t.Errorf("unexpected this device: %v %v", device, ok)
	}

	others := cfg.OtherDevices()
	if len(others) != 2 || others[0].DeviceID != "A" || others[1].DeviceID != "C" {
		t.Errorf("unexpected other devices: %v", others)
	}
}

func TestDeviceName(t *testing.T) {
	cfg := Configuration{}
	cases := []struct {
		device   DeviceConfiguration
		expected string
	}{
		{DeviceConfiguration{DeviceID: "AIR6LPZ", Name: "nas"}, "nas"},
		{DeviceConfiguration{DeviceID: "AIR6LPZ"}, "AIR6LP"},
		{DeviceConfiguration{DeviceID: "AB"}, "AB"},
	}
	for _, tc := range cases {
		if name := cfg.DeviceName(tc.device); name != tc.expected {
			t.Errorf("DeviceName(%v) == %q, expected %q", tc.device, name, tc.expected)
		}
	}
}

func TestSharesFolder(t *testing.T) {
	cfg := Configuration{
		MyID: "ME",
		Devices: []DeviceConfiguration{
			{DeviceID: "ME", Name: "me"},
			{DeviceID: "X", Name: "xavier"},
			{DeviceID: "Y", Name: "yves"},
		},
	}
	folder := FolderConfiguration{
		ID: "f",
		Devices: []FolderDeviceConfiguration{
			{DeviceID: "Y"},
			{DeviceID: "ME"},
			{DeviceID: "X"},
		},
	}

	if names := cfg.SharesFolder(folder); names != "xavier, yves" {
		t.Errorf("unexpected share list %q", names)
	}
}

func TestStoreLoadKeepsPreviousOnError(t *testing.T) {
	store := NewStore()
	if err := store.Load([]byte(`{"myID": "A", "devices": [{"deviceID": "A"}]}`)); err != nil {
		t.Fatal(err)
	}

	if err := store.Load([]byte(`{invalid`)); err == nil {
		t.Fatal("expected parse error")
	}

	cfg := store.RawCopy()
	if cfg.MyID != "A" || len(cfg.Devices) != 1 {
		t.Errorf("previous configuration lost after failed load: %+v", cfg)
	}
}

func TestStoreInSync(t *testing.T) {
	store := NewStore()
	if !store.InSync() {
		t.Error("new store should start in sync")
	}
	store.SetInSync(false)
	if store.InSync() {
		t.Error("flag did not stick")
	}
}

func TestConfigurationCopyIsDeep(t *testing.T) {
	cfg := Configuration{
		Devices: []DeviceConfiguration{{DeviceID: "A", Addresses: []string{"dynamic"}}},
		Folders: []FolderConfiguration{{ID: "f", PinnedFiles: []string{"/a"}, Devices: []FolderDeviceConfiguration{{DeviceID: "A"}}}},
		Options: OptionsConfiguration{ListenAddress: []string{"tcp://:22000"}},
	}

	copied := cfg.Copy()
	copied.Devices[0].Addresses[0] = "changed"
	copied.Folders[0].PinnedFiles[0] = "/changed"
	copied.Options.ListenAddress[0] = "changed"

	if cfg.Devices[0].Addresses[0] != "dynamic" {
		t.Error("device addresses shared between copies")
	}
	if cfg.Folders[0].PinnedFiles[0] != "/a" {
		t.Error("pinned files shared between copies")
	}
	if cfg.Options.ListenAddress[0] != "tcp://:22000" {
		t.Error("listen addresses shared between copies")
	}
}
