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

// NewImageCommand returns the command for interfacing with images.
func NewImageCommand() *cli.Command {
	cmd := &cli.Command{
		Name:    "image",
		Usage:   "image operations",
		Aliases: []string{"img"},
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "list images",
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

					body, err := client.ListImages(ctx.Context, opts)
					if err != nil {
						return err
					}

					if ctx.Bool("raw") {
						fmt.Println(body)

						return nil
					}

					return tabulateImages(os.Stdout, body)
				},
			},
			{
				Name:      "get",
				Usage:     "get image details",
				Aliases:   []string{"g"},
				ArgsUsage: "<image-id>",
				Action: func(ctx *cli.Context) error {
					client, err := getClient(ctx)
					if err != nil {
						return err
					}

					body, err := client.GetImage(ctx.Context, ctx.Args().First())
					if err != nil {
						return err
					}

					fmt.Println(body)

					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create a new image from a server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "name of the new image",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "server",
						Usage:    "id of the server to create the image from",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "metadata",
						Usage: "metadata to associate with the image as key=value items",
					},
				},
				Action: func(ctx *cli.Context) error {
					client, err := getClient(ctx)
					if err != nil {
						return err
					}

					metadata, err := parseMetadata(ctx.StringSlice("metadata"))
					if err != nil {
						return err
					}

					req := openstack.CreateImageRequest{
						Name:     ctx.String("name"),
						ServerID: ctx.String("server"),
						Metadata: metadata,
					}

					body, err := client.CreateImage(ctx.Context, req)
					if err != nil {
						return err
					}

					fmt.Println(body)

					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete an image",
				Aliases:   []string{"rm"},
				ArgsUsage: "<image-id>",
				Action: func(ctx *cli.Context) error {
					client, err := getClient(ctx)
					if err != nil {
						return err
					}

					imageID := ctx.Args().First()
					ok, err := client.DeleteImage(ctx.Context, imageID)
					if err != nil {
						return err
					}

					if !ok {
						return fmt.Errorf("failed to delete image %s", imageID)
					}

					return nil
				},
			},
		},
	}

	return cmd
}

// tabulateImages renders a summary table from the raw body of an image
// listing.
func tabulateImages(w io.Writer, body string) error {
	var result struct {
		Images []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"images"`
	}

	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return fmt.Errorf("cannot parse image listing: %w", err)
	}

	if len(result.Images) == 0 {
		return nil
	}

	table := newTableWriter(w, []string{"ID", "NAME", "STATUS"})
	for _, item := range result.Images {
		status := item.Status
		if status == "" {
			status = na
		}

		table.Append([]string{item.ID, item.Name, status})
	}

	table.Render()

	return nil
}
