// Copyright (C) 2021 The SyncthingFuse Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Command fusectl views and edits the configuration of a running
// syncthingfuse daemon over its REST API.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"

	"github.com/alecthomas/kong"
	"github.com/kballard/go-shellquote"
)

type CLI struct {
	Address string `name:"address" env:"FUSECTL_ADDRESS" default:"127.0.0.1:8384" help:"Daemon API address"`
	APIKey  string `name:"api-key" env:"FUSECTL_APIKEY" help:"Daemon API key, if the daemon requires one"`

	Show     showCommand     `cmd:"" help:"Show command group"`
	Device   deviceCommand   `cmd:"" help:"Device command group"`
	Folder   folderCommand   `cmd:"" help:"Folder command group"`
	Pin      pinCommand      `cmd:"" help:"Pinned file command group"`
	Settings settingsCommand `cmd:"" help:"Edit daemon settings"`
	Watch    watchCommand    `cmd:"" help:"Watch connection and pin status"`
	API      apiCommand      `cmd:"" passthrough:"" help:"Directly interact with the rest api"`
	Stdin    stdinCommand    `cmd:"" name:"-" help:"Read commands from stdin"`
}

type Context struct {
	clientFactory *apiClientFactory
}

func (cli CLI) AfterApply(kongCtx *kong.Context) error {
	clientFactory := &apiClientFactory{
		address: cli.Address,
		apikey:  cli.APIKey,
	}

	context := Context{
		clientFactory: clientFactory,
	}

	kongCtx.Bind(context)
	return nil
}

type stdinCommand struct{}

func (*stdinCommand) Run() error {
	// Drop the `-` not to recurse into self.
	args := make([]string, len(os.Args)-1)
	copy(args, os.Args)

	fmt.Println("Reading commands from stdin...", args)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input, err := shellquote.Split(scanner.Text())
		if err != nil {
			return fmt.Errorf("parsing input: %w", err)
		}
		if len(input) == 0 {
			continue
		}
		cmd := exec.Command(os.Args[0], append(args[1:], input...)...)
		out, err := cmd.CombinedOutput()
		fmt.Print(string(out))
		if err != nil {
			if _, ok := err.(*exec.ExitError); ok {
				// we will continue loop no matter the command succeeds or not
				continue
			} else {
				return err
			}
		}
	}
	return scanner.Err()
}

func main() {
	var cli CLI
	kongCtx := kong.Parse(&cli,
		kong.Name("fusectl"),
		kong.Description("syncthingfuse configuration client"),
	)
	kongCtx.FatalIfErrorf(kongCtx.Run())
}
