// Copyright (C) 2016 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package config

type Compression string

const (
	CompressionNone     Compression = "none"
	CompressionMetadata Compression = "metadata"
	CompressionAlways   Compression = "always"
)

type DeviceConfiguration struct {
	DeviceID    string      `json:"deviceID"`
	Name        string      `json:"name"`
	Addresses   []string    `json:"addresses"`
	Compression Compression `json:"compression"`
	Introducer  bool        `json:"introducer"`
}

func (cfg DeviceConfiguration) Copy() DeviceConfiguration {
	c := cfg
	c.Addresses = make([]string, len(cfg.Addresses))
	copy(c.Addresses, cfg.Addresses)
	return c
}

type DeviceConfigurationList []DeviceConfiguration

func (l DeviceConfigurationList) Less(a, b int) bool {
	return l[a].DeviceID < l[b].DeviceID
}

func (l DeviceConfigurationList) Swap(a, b int) {
	l[a], l[b] = l[b], l[a]
}

func (l DeviceConfigurationList) Len() int {
	return len(l)
}
