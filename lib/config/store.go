// Copyright (C) 2016 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import "sync"

// Store holds the canonical configuration for the session, plus the
// in-sync flag reported by the daemon. All mutation goes through Modify
// so readers never observe partial updates.
type Store struct {
	mut    sync.Mutex
	cfg    Configuration
	insync bool
}

func NewStore() *Store {
	return &Store{
		cfg: Configuration{
			Devices: []DeviceConfiguration{},
			Folders: []FolderConfiguration{},
		},
		insync: true,
	}
}

// Load replaces the configuration with a parsed wire payload. On parse
// failure the previous configuration is retained and the error returned.
func (s *Store) Load(bs []byte) error {
	cfg, err := Parse(bs)
	if err != nil {
		return err
	}
	s.mut.Lock()
	s.cfg = cfg
	s.mut.Unlock()
	return nil
}

func (s *Store) Set(cfg Configuration) {
	cfg.prepare()
	s.mut.Lock()
	s.cfg = cfg
	s.mut.Unlock()
}

// RawCopy returns a deep copy of the current configuration.
func (s *Store) RawCopy() Configuration {
	s.mut.Lock()
	defer s.mut.Unlock()
	return s.cfg.Copy()
}

// Modify runs fn on the configuration under the store lock. The
// mutation is atomic with respect to all other store accesses.
func (s *Store) Modify(fn func(*Configuration)) {
	s.mut.Lock()
	defer s.mut.Unlock()
	fn(&s.cfg)
}

func (s *Store) InSync() bool {
	s.mut.Lock()
	defer s.mut.Unlock()
	return s.insync
}

func (s *Store) SetInSync(insync bool) {
	s.mut.Lock()
	s.insync = insync
	s.mut.Unlock()
}

func (s *Store) MyID() string {
	s.mut.Lock()
	defer s.mut.Unlock()
	return s.cfg.MyID
}

func (s *Store) FindDevice(deviceID string) (DeviceConfiguration, bool) {
	s.mut.Lock()
	defer s.mut.Unlock()
	device, ok := s.cfg.FindDevice(deviceID)
	if !ok {
		return DeviceConfiguration{}, false
	}
	return device.Copy(), true
}

func (s *Store) ThisDevice() (DeviceConfiguration, bool) {
	s.mut.Lock()
	defer s.mut.Unlock()
	device, ok := s.cfg.ThisDevice()
	if !ok {
		return DeviceConfiguration{}, false
	}
	return device.Copy(), true
}

func (s *Store) OtherDevices() []DeviceConfiguration {
	s.mut.Lock()
	defer s.mut.Unlock()
	devices := s.cfg.OtherDevices()
	for i := range devices {
		devices[i] = devices[i].Copy()
	}
	return devices
}

func (s *Store) FindFolder(folderID string) (FolderConfiguration, bool) {
	s.mut.Lock()
	defer s.mut.Unlock()
	for _, folder := range s.cfg.Folders {
		if folder.ID == folderID {
			return folder.Copy(), true
		}
	}
	return FolderConfiguration{}, false
}
