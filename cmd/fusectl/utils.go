// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/huaixv/syncthingfuse/lib/api"
	"github.com/huaixv/syncthingfuse/lib/config"
	"github.com/huaixv/syncthingfuse/lib/session"
)

func responseToBArray(response *http.Response) ([]byte, error) {
	bs, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	return bs, response.Body.Close()
}

func dumpOutput(ctx context.Context, f *apiClientFactory, url string) error {
	client, err := f.getClient()
	if err != nil {
		return err
	}
	response, err := client.Get(ctx, url)
	if err != nil {
		return err
	}
	return prettyPrintResponse(response)
}

func prettyPrintJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func prettyPrintResponse(response *http.Response) error {
	bs, err := responseToBArray(response)
	if err != nil {
		return err
	}
	var data interface{}
	if err := json.Unmarshal(bs, &data); err != nil {
		return err
	}
	return prettyPrintJSON(data)
}

// newSession fetches the daemon configuration into a fresh store and
// returns an edit session pushing through the gateway. CLI edits, unlike
// the GUI, refuse to run without the authoritative configuration.
func newSession(ctx context.Context, f *apiClientFactory) (*session.Session, *config.Store, api.APIClient, error) {
	client, err := f.getClient()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := api.GetConfig(ctx, client)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("getting config: %w", err)
	}
	store := config.NewStore()
	store.Set(cfg)
	gateway := session.NewGateway(client, store)
	return session.New(store, gateway), store, client, nil
}
