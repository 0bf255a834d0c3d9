// Copyright (C) 2019 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package status

import (
	"context"
	"sync"

	"github.com/huaixv/syncthingfuse/lib/api"
)

// Completer fetches path completion candidates for the pin editor. Every
// Update issues a fresh request; responses are sequence numbered so that
// a slow response cannot overwrite the result of a later request.
type Completer struct {
	client api.APIClient

	mut         sync.Mutex
	seq         int
	suggestions []string
}

func NewCompleter(client api.APIClient) *Completer {
	return &Completer{client: client}
}

// Update fetches candidates for pathPrefix in the folder and replaces
// the suggestion list on success. On failure, or when a newer request
// has been issued in the meantime, the previous suggestions remain.
func (c *Completer) Update(ctx context.Context, folderID, pathPrefix string) error {
	c.mut.Lock()
	c.seq++
	seq := c.seq
	c.mut.Unlock()

	paths, err := api.Browse(ctx, c.client, folderID, pathPrefix)
	if err != nil {
		return err
	}

	c.mut.Lock()
	defer c.mut.Unlock()
	if seq != c.seq {
		// A newer request was issued while this one was in flight.
		return nil
	}
	c.suggestions = paths
	return nil
}

func (c *Completer) Suggestions() []string {
	c.mut.Lock()
	defer c.mut.Unlock()
	suggestions := make([]string, len(c.suggestions))
	copy(suggestions, c.suggestions)
	return suggestions
}
