// Copyright (C) 2019 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestGetConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/system/config" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"myID": "ME", "devices": [{"deviceID": "B"}, {"deviceID": "A"}], "folders": []}`))
	}))
	defer srv.Close()

	cfg, err := GetConfig(context.Background(), NewClient(srv.URL, ""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MyID != "ME" {
		t.Errorf("unexpected myID %q", cfg.MyID)
	}
	if cfg.Devices[0].DeviceID != "A" || cfg.Devices[1].DeviceID != "B" {
		t.Errorf("devices not in canonical order: %v", cfg.Devices)
	}
}

func TestGetInSync(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("true"))
	}))
	defer srv.Close()

	insync, err := GetInSync(context.Background(), NewClient(srv.URL, ""))
	if err != nil {
		t.Fatal(err)
	}
	if !insync {
		t.Error("expected in sync")
	}
}

func TestGetConnections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"DeviceID": "A", "Address": "192.0.2.1:22000"}]`))
	}))
	defer srv.Close()

	connections, err := GetConnections(context.Background(), NewClient(srv.URL, ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(connections) != 1 || connections[0].DeviceID != "A" {
		t.Errorf("unexpected connections %v", connections)
	}
}

func TestBrowseQueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		qs := r.URL.Query()
		if qs.Get("folderID") != "docs" || qs.Get("pathPrefix") != "/a" {
			t.Errorf("unexpected query %v", qs)
		}
		w.Write([]byte(`["/a/b", "/a/c"]`))
	}))
	defer srv.Close()

	paths, err := Browse(context.Background(), NewClient(srv.URL, ""), "docs", "/a")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"/a/b", "/a/c"}
	if diff, equal := messagediff.PrettyDiff(expected, paths); !equal {
		t.Errorf("paths differ. Diff:\n%s", diff)
	}
}

func TestAPIKeyHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "secret" {
			t.Errorf("missing api key header")
		}
		w.Write([]byte("false"))
	}))
	defer srv.Close()

	if _, err := GetInSync(context.Background(), NewClient(srv.URL, "secret")); err != nil {
		t.Fatal(err)
	}
}

func TestCheckResponseStatuses(t *testing.T) {
	cases := []struct {
		status int
		ok     bool
	}{
		{http.StatusOK, true},
		{http.StatusNotFound, false},
		{http.StatusUnauthorized, false},
		{http.StatusInternalServerError, false},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte("[]"))
		}))
		client := NewClient(srv.URL, "")
		_, err := client.Get(context.Background(), "system/connections")
		if tc.ok && err != nil {
			t.Errorf("status %d: unexpected error %v", tc.status, err)
		} else if !tc.ok && err == nil {
			t.Errorf("status %d: expected an error", tc.status)
		}
		srv.Close()
	}
}
