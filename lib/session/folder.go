// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package session

import (
	"context"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/huaixv/syncthingfuse/lib/config"
)

const defaultCacheSize = "512 MiB"

// FolderDraft is a detached copy of a folder under edit, plus its
// desired device memberships.
type FolderDraft struct {
	Folder config.FolderConfiguration

	// SelectedDevices maps device ID to desired membership. Unlike the
	// device draft's folder selection this is the complete desired
	// membership; the member list is rebuilt from it on commit.
	SelectedDevices map[string]bool

	isNew bool
	dirty bool
}

func (*FolderDraft) kind() Kind { return KindFolder }

func (d *FolderDraft) IsNew() bool { return d.isNew }
func (d *FolderDraft) Dirty() bool { return d.dirty }

func (s *Session) BeginAddFolder() *FolderDraft {
	d := &FolderDraft{
		Folder: config.FolderConfiguration{
			CacheSize: defaultCacheSize,
		},
		SelectedDevices: make(map[string]bool),
		isNew:           true,
	}
	s.draft = d
	return d
}

func (s *Session) BeginEditFolder(folderID string) (*FolderDraft, error) {
	folder, ok := s.store.FindFolder(folderID)
	if !ok {
		return nil, ErrFolderNotFound
	}
	d := &FolderDraft{Folder: folder}
	s.store.Modify(func(cfg *config.Configuration) {
		d.SelectedDevices = cfg.DevicesOfFolder(folder)
	})
	s.draft = d
	return d, nil
}

func (s *Session) FolderDraft() (*FolderDraft, error) {
	d, ok := s.draft.(*FolderDraft)
	if !ok {
		return nil, ErrNoDraft
	}
	return d, nil
}

// UpdateFolder applies fn to the active folder draft and marks it dirty.
func (s *Session) UpdateFolder(fn func(*FolderDraft)) error {
	d, err := s.FolderDraft()
	if err != nil {
		return err
	}
	fn(d)
	d.dirty = true
	return nil
}

// CommitFolder rebuilds the folder's member list from the selection,
// replaces any previous folder with the same ID and pushes. The edited
// folder goes first, every other folder follows, and the list is
// re-sorted, so the net effect is a same-identity replace.
func (s *Session) CommitFolder(ctx context.Context) error {
	d, err := s.FolderDraft()
	if err != nil {
		return err
	}
	if _, err := humanize.ParseBytes(d.Folder.CacheSize); err != nil {
		return fmt.Errorf("cache size %q: %w", d.Folder.CacheSize, err)
	}

	folder := d.Folder.Copy()

	s.store.Modify(func(cfg *config.Configuration) {
		folder.Devices = cfg.ApplyFolderDeviceSelection(d.SelectedDevices)

		folders := []config.FolderConfiguration{folder}
		for i := range cfg.Folders {
			if cfg.Folders[i].ID != folder.ID {
				folders = append(folders, cfg.Folders[i])
			}
		}
		sort.Sort(config.FolderConfigurationList(folders))
		cfg.Folders = folders
	})

	s.draft = nil
	return s.pusher.Push(ctx, s.store.RawCopy())
}

// DeleteFolder removes the drafted folder from the configuration and
// pushes.
func (s *Session) DeleteFolder(ctx context.Context) error {
	d, err := s.FolderDraft()
	if err != nil {
		return err
	}

	var commitErr error
	s.store.Modify(func(cfg *config.Configuration) {
		for i := range cfg.Folders {
			if cfg.Folders[i].ID == d.Folder.ID {
				cfg.Folders = append(cfg.Folders[:i], cfg.Folders[i+1:]...)
				s.draft = nil
				return
			}
		}
		commitErr = ErrFolderNotFound
	})
	if commitErr != nil {
		return commitErr
	}

	return s.pusher.Push(ctx, s.store.RawCopy())
}
