// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli"
)

// apiCommand exposes the rest api directly, for endpoints the structured
// commands do not cover.
type apiCommand struct {
	Args []string `arg:"" optional:"" passthrough:""`
}

func (a *apiCommand) Run(ctx Context) error {
	app := cli.NewApp()
	app.Name = "api"
	app.Usage = "Directly interact with the rest api"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "method",
			Usage: "HTTP request method",
			Value: "GET",
		},
		cli.StringFlag{
			Name:  "data",
			Usage: "JSON data to post to the api",
		},
	}
	app.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("expected 1 argument, got %d", c.NArg())
		}
		client, err := ctx.clientFactory.getClient()
		if err != nil {
			return err
		}
		endpoint := c.Args().Get(0)

		var response *http.Response
		switch c.String("method") {
		case "GET":
			response, err = client.Get(context.Background(), endpoint)
		case "POST":
			response, err = client.Post(context.Background(), endpoint, c.String("data"))
		default:
			return fmt.Errorf("unsupported method %q", c.String("method"))
		}
		if err != nil {
			return err
		}
		return prettyPrintResponse(response)
	}
	return app.Run(append([]string{app.Name}, a.Args...))
}
