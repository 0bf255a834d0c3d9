// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package session implements the edit cycle of the configuration: a
// single in-progress draft of a device, folder, settings or pin set,
// detached from the store, folded back in on commit and pushed to the
// daemon through the gateway.
package session

import (
	"errors"
	"strings"

	"github.com/huaixv/syncthingfuse/lib/config"
)

var (
	ErrNoDraft        = errors.New("no draft of this kind in progress")
	ErrDeviceNotFound = errors.New("device not found")
	ErrFolderNotFound = errors.New("folder not found")
)

// Kind identifies the entity a draft shadows.
type Kind int

const (
	KindNone Kind = iota
	KindDevice
	KindFolder
	KindSettings
	KindPins
)

func (k Kind) String() string {
	switch k {
	case KindDevice:
		return "device"
	case KindFolder:
		return "folder"
	case KindSettings:
		return "settings"
	case KindPins:
		return "pins"
	default:
		return "none"
	}
}

type draft interface {
	kind() Kind
}

// Session holds at most one draft at a time. Beginning a new edit while
// another draft is active silently discards the old draft; last open
// wins.
type Session struct {
	store  *config.Store
	pusher Pusher
	draft  draft
}

func New(store *config.Store, pusher Pusher) *Session {
	return &Session{store: store, pusher: pusher}
}

// Kind returns the kind of the active draft, KindNone when there is no
// draft.
func (s *Session) Kind() Kind {
	if s.draft == nil {
		return KindNone
	}
	return s.draft.kind()
}

// DiscardDraft drops the active draft, whatever its kind, without
// touching the store.
func (s *Session) DiscardDraft() {
	s.draft = nil
}

// splitAddresses turns a comma separated address string into the final
// address list. Segments are trimmed but empty segments are kept, as the
// daemon is the authority on address validity.
func splitAddresses(s string) []string {
	parts := strings.Split(s, ",")
	addresses := make([]string, len(parts))
	for i, part := range parts {
		addresses[i] = strings.TrimSpace(part)
	}
	return addresses
}
