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

func relationsFixture() Configuration {
	return Configuration{
		MyID: "ME",
		Devices: []DeviceConfiguration{
			{DeviceID: "ME"},
			{DeviceID: "X"},
			{DeviceID: "Y"},
		},
		Folders: []FolderConfiguration{
			{ID: "docs", Devices: []FolderDeviceConfiguration{{DeviceID: "ME"}, {DeviceID: "X"}}},
			{ID: "music", Devices: []FolderDeviceConfiguration{{DeviceID: "ME"}}},
			{ID: "photos", Devices: []FolderDeviceConfiguration{{DeviceID: "ME"}, {DeviceID: "X"}, {DeviceID: "Y"}}},
		},
	}
}

func TestFoldersContainingDevice(t *testing.T) {
	cfg := relationsFixture()

	expected := map[string]bool{"docs": true, "photos": true}
	if diff, equal := messagediff.PrettyDiff(expected, cfg.FoldersContainingDevice("X")); !equal {
		t.Errorf("folder set differs. Diff:\n%s", diff)
	}

	if selected := cfg.FoldersContainingDevice("nobody"); len(selected) != 0 {
		t.Errorf("unexpected folders for unknown device: %v", selected)
	}
}

func TestApplyDeviceFolderSelection(t *testing.T) {
	cfg := relationsFixture()

	// music marked true, docs marked explicitly false, photos not
	// mentioned at all.
	cfg.ApplyDeviceFolderSelection("X", map[string]bool{
		"music": true,
		"docs":  false,
	})

	if !cfg.Folders[1].HasDevice("X") {
		t.Error("X should have been added to music")
	}
	if cfg.Folders[0].HasDevice("X") {
		t.Error("X should have been removed from docs")
	}
	if !cfg.Folders[2].HasDevice("X") {
		t.Error("photos was not mentioned and must be untouched")
	}
}

func TestApplyDeviceFolderSelectionNeverRemovesSelf(t *testing.T) {
	cfg := relationsFixture()

	cfg.ApplyDeviceFolderSelection("ME", map[string]bool{
		"docs":   false,
		"music":  false,
		"photos": false,
	})

	for _, folder := range cfg.Folders {
		if !folder.HasDevice("ME") {
			t.Errorf("own device removed from %s", folder.ID)
		}
	}
}

func TestApplyFolderDeviceSelection(t *testing.T) {
	cfg := relationsFixture()

	devices := cfg.ApplyFolderDeviceSelection(map[string]bool{"X": true})
	expected := []FolderDeviceConfiguration{{DeviceID: "ME"}, {DeviceID: "X"}}
	if diff, equal := messagediff.PrettyDiff(expected, devices); !equal {
		t.Errorf("membership differs. Diff:\n%s", diff)
	}

	// Idempotent: the same selection yields the same list.
	again := cfg.ApplyFolderDeviceSelection(map[string]bool{"X": true})
	if diff, equal := messagediff.PrettyDiff(devices, again); !equal {
		t.Errorf("not idempotent. Diff:\n%s", diff)
	}
}

func TestApplyFolderDeviceSelectionEmpty(t *testing.T) {
	cfg := relationsFixture()

	devices := cfg.ApplyFolderDeviceSelection(nil)
	expected := []FolderDeviceConfiguration{{DeviceID: "ME"}}
	if diff, equal := messagediff.PrettyDiff(expected, devices); !equal {
		t.Errorf("membership differs. Diff:\n%s", diff)
	}
}

func TestRemoveDeviceEverywhere(t *testing.T) {
	cfg := relationsFixture()
	pinned := []string{"/a", "/b"}
	cfg.Folders[0].PinnedFiles = pinned

	cfg.RemoveDeviceEverywhere("X")

	if _, ok := cfg.FindDevice("X"); ok {
		t.Error("X should be gone from the device list")
	}
	for _, folder := range cfg.Folders {
		if folder.HasDevice("X") {
			t.Errorf("X still member of %s", folder.ID)
		}
		if !folder.HasDevice("ME") {
			t.Errorf("own device lost from %s", folder.ID)
		}
	}
	if diff, equal := messagediff.PrettyDiff(pinned, cfg.Folders[0].PinnedFiles); !equal {
		t.Errorf("pinned files must not change. Diff:\n%s", diff)
	}
}
