// Copyright (C) 2019 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package api

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/huaixv/syncthingfuse/lib/config"
)

// Connection is the live connection state for one device, as reported by
// the daemon. Field names follow the daemon's wire format.
type Connection struct {
	DeviceID      string    `json:"DeviceID"`
	Address       string    `json:"Address"`
	ClientVersion string    `json:"ClientVersion"`
	At            time.Time `json:"At"`
}

func GetConfig(ctx context.Context, client APIClient) (config.Configuration, error) {
	response, err := client.Get(ctx, "system/config")
	if err != nil {
		return config.Configuration{}, err
	}
	bs, err := responseToBArray(response)
	if err != nil {
		return config.Configuration{}, err
	}
	return config.Parse(bs)
}

func GetInSync(ctx context.Context, client APIClient) (bool, error) {
	response, err := client.Get(ctx, "system/config/insync")
	if err != nil {
		return false, err
	}
	bs, err := responseToBArray(response)
	if err != nil {
		return false, err
	}
	var insync bool
	if err := json.Unmarshal(bs, &insync); err != nil {
		return false, err
	}
	return insync, nil
}

func PostConfig(ctx context.Context, client APIClient, cfg config.Configuration) error {
	bs, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = client.Post(ctx, "system/config", string(bs))
	return err
}

func GetConnections(ctx context.Context, client APIClient) ([]Connection, error) {
	response, err := client.Get(ctx, "system/connections")
	if err != nil {
		return nil, err
	}
	bs, err := responseToBArray(response)
	if err != nil {
		return nil, err
	}
	var connections []Connection
	if err := json.Unmarshal(bs, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}

// GetPinStatus returns the resolution state of pinned files, keyed by
// folder ID and then by path.
func GetPinStatus(ctx context.Context, client APIClient) (map[string]map[string]string, error) {
	response, err := client.Get(ctx, "system/pins/status")
	if err != nil {
		return nil, err
	}
	bs, err := responseToBArray(response)
	if err != nil {
		return nil, err
	}
	var status map[string]map[string]string
	if err := json.Unmarshal(bs, &status); err != nil {
		return nil, err
	}
	return status, nil
}

// Browse returns path completion candidates below pathPrefix in the
// given folder.
func Browse(ctx context.Context, client APIClient, folderID, pathPrefix string) ([]string, error) {
	qs := url.Values{}
	qs.Set("folderID", folderID)
	qs.Set("pathPrefix", pathPrefix)
	response, err := client.Get(ctx, "db/browse?"+qs.Encode())
	if err != nil {
		return nil, err
	}
	bs, err := responseToBArray(response)
	if err != nil {
		return nil, err
	}
	var paths []string
	if err := json.Unmarshal(bs, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// VerifyHumanSize asks the daemon whether it accepts a human readable
// size string such as "512 MiB".
func VerifyHumanSize(ctx context.Context, client APIClient, size string) error {
	_, err := client.Post(ctx, "verify/humansize", size)
	return err
}
