// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"errors"

	"github.com/huaixv/syncthingfuse/lib/api"
)

type apiClientFactory struct {
	address string
	apikey  string
}

func (f *apiClientFactory) getClient() (api.APIClient, error) {
	if f.address == "" {
		return nil, errors.New("--address must be specified")
	}
	return api.NewClient(f.address, f.apikey), nil
}
