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

// PinDraft is an editable copy of one folder's pinned file list.
type PinDraft struct {
	FolderID    string
	PinnedFiles []string

	dirty bool
}

func (*PinDraft) kind() Kind { return KindPins }

func (d *PinDraft) Dirty() bool { return d.dirty }

func (s *Session) BeginEditPins(folderID string) (*PinDraft, error) {
	folder, ok := s.store.FindFolder(folderID)
	if !ok {
		return nil, ErrFolderNotFound
	}
	d := &PinDraft{
		FolderID:    folderID,
		PinnedFiles: folder.PinnedFiles,
	}
	s.draft = d
	return d, nil
}

func (s *Session) PinDraft() (*PinDraft, error) {
	d, ok := s.draft.(*PinDraft)
	if !ok {
		return nil, ErrNoDraft
	}
	return d, nil
}

// AddPin adds a path to the draft, keeping the list sorted. The path is
// trimmed first; adding a path that is already pinned is a no-op.
func (s *Session) AddPin(path string) error {
	d, err := s.PinDraft()
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	for _, pinned := range d.PinnedFiles {
		if pinned == path {
			return nil
		}
	}
	d.PinnedFiles = append(d.PinnedFiles, path)
	sort.Strings(d.PinnedFiles)
	d.dirty = true
	return nil
}

// RemovePin removes a path from the draft. Removing a path that is not
// pinned is a no-op.
func (s *Session) RemovePin(path string) error {
	d, err := s.PinDraft()
	if err != nil {
		return err
	}
	for i, pinned := range d.PinnedFiles {
		if pinned == path {
			d.PinnedFiles = append(d.PinnedFiles[:i], d.PinnedFiles[i+1:]...)
			d.dirty = true
			return nil
		}
	}
	return nil
}

// CommitPins writes the edited pin list back onto the matching folder,
// leaving all other folder attributes untouched, and pushes.
func (s *Session) CommitPins(ctx context.Context) error {
	d, err := s.PinDraft()
	if err != nil {
		return err
	}

	s.store.Modify(func(cfg *config.Configuration) {
		for i := range cfg.Folders {
			if cfg.Folders[i].ID == d.FolderID {
				cfg.Folders[i].PinnedFiles = d.PinnedFiles
			}
		}
	})

	s.draft = nil
	return s.pusher.Push(ctx, s.store.RawCopy())
}
