// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gardener/novactl/pkg/openstack"
	"github.com/gardener/novactl/pkg/utils/ptr"
)

// NewServerCommand returns the command for interfacing with servers.
func NewServerCommand() *cli.Command {
	cmd := &cli.Command{
		Name:    "server",
		Usage:   "server operations",
		Aliases: []string{"srv"},
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "list servers",
				Aliases: []string{"ls"},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-detail",
						Usage: "request the brief listing, if set",
					},
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "print the raw response body, if set",
					},
				},
				Action: func(ctx *cli.Context) error {
					client, err := getClient(ctx)
					if err != nil {
						return err
					}

					opts := openstack.ListOpts{}
					if ctx.Bool("no-detail") {
						opts.Detail = ptr.To(false)
					}

					body, err := client.ListServers(ctx.Context, opts)
					if err != nil {
						return err
					}

					if ctx.Bool("raw") {
						fmt.Println(body)

						return nil
					}

					return tabulateServers(os.Stdout, body)
				},
			},
			{
				Name:      "get",
				Usage:     "get server details",
				Aliases:   []string{"g"},
				ArgsUsage: "<server-id>",
				Action: func(ctx *cli.Context) error {
					client, err := getClient(ctx)
					if err != nil {
						return err
					}

					body, err := client.GetServer(ctx.Context, ctx.Args().First())
					if err != nil {
						return err
					}

					fmt.Println(body)

					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create a new server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "name of the new server",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "flavor",
						Usage:    "flavor to create the server with",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "image",
						Usage:    "image to create the server from",
						Required: true,
					},
				},
				Action: func(ctx *cli.Context) error {
					client, err := getClient(ctx)
					if err != nil {
						return err
					}

					req := openstack.CreateServerRequest{
						Name:   ctx.String("name"),
						Flavor: ctx.String("flavor"),
						Image:  ctx.String("image"),
					}

					body, err := client.CreateServer(ctx.Context, req)
					if err != nil {
						return err
					}

					fmt.Println(body)

					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a server",
				Aliases:   []string{"rm"},
				ArgsUsage: "<server-id>",
				Action: func(ctx *cli.Context) error {
					client, err := getClient(ctx)
					if err != nil {
						return err
					}

					serverID := ctx.Args().First()
					ok, err := client.DeleteServer(ctx.Context, serverID)
					if err != nil {
						return err
					}

					if !ok {
						return fmt.Errorf("failed to delete server %s", serverID)
					}

					return nil
				},
			},
		},
	}

	return cmd
}

// tabulateServers renders a summary table from the raw body of a server
// listing.
func tabulateServers(w io.Writer, body string) error {
	var result struct {
		Servers []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"servers"`
	}

	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return fmt.Errorf("cannot parse server listing: %w", err)
	}

	if len(result.Servers) == 0 {
		return nil
	}

	table := newTableWriter(w, []string{"ID", "NAME", "STATUS"})
	for _, item := range result.Servers {
		status := item.Status
		if status == "" {
			status = na
		}

		table.Append([]string{item.ID, item.Name, status})
	}

	table.Render()

	return nil
}
