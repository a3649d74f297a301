// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/urfave/cli/v2"

	openstackclients "github.com/gardener/novactl/pkg/clients/openstack"
	"github.com/gardener/novactl/pkg/openstack"
)

// NewCredentialsCommand returns the command for interfacing with the
// configured named credentials.
func NewCredentialsCommand() *cli.Command {
	cmd := &cli.Command{
		Name:    "credentials",
		Usage:   "credentials operations",
		Aliases: []string{"creds"},
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "list configured credentials",
				Aliases: []string{"ls"},
				Action: func(ctx *cli.Context) error {
					conf := getConfig(ctx)

					if openstackclients.ComputeClientset.Length() == 0 {
						return nil
					}

					table := newTableWriter(os.Stdout, []string{"NAME", "PROJECT", "REGION", "DEFAULT"})
					err := openstackclients.ComputeClientset.Range(func(name string, c openstackclients.Client[*openstack.Client]) error {
						region := c.Region
						if region == "" {
							region = na
						}

						isDefault := ""
						if name == conf.OpenStack.DefaultCredentials {
							isDefault = "*"
						}

						table.Append([]string{name, c.Project, region, isDefault})

						return nil
					})
					if err != nil {
						return err
					}

					table.Render()

					return nil
				},
			},
		},
	}

	return cmd
}
