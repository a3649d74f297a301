// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	openstackclients "github.com/gardener/novactl/pkg/clients/openstack"
	"github.com/gardener/novactl/pkg/core/config"
	"github.com/gardener/novactl/pkg/openstack"
	"github.com/gardener/novactl/pkg/version"
)

// na is the value printed in tables for missing data.
const na = "N/A"

var errNoAuthEndpoint = errors.New("no auth endpoint specified")
var errNoUsername = errors.New("no username specified")
var errNoPassword = errors.New("no password or password file specified")
var errNoProject = errors.New("no project specified")
var errNoDefaultCredentials = errors.New("no default credentials specified")
var errUnknownNamedCredentials = errors.New("unknown named credentials")
var errInvalidMetadata = errors.New("invalid metadata item")

// configKey is the context key under which the parsed configuration is
// stored.
type configKey struct{}

// getConfig returns the parsed configuration from the context.
func getConfig(ctx *cli.Context) *config.Config {
	return ctx.Context.Value(configKey{}).(*config.Config)
}

// validateOpenStackConfig validates the OpenStack configuration settings.
func validateOpenStackConfig(conf *config.Config) error {
	for name, creds := range conf.OpenStack.Credentials {
		if creds.AuthEndpoint == "" {
			return fmt.Errorf("openstack: %w: credentials %s", errNoAuthEndpoint, name)
		}

		if creds.Username == "" {
			return fmt.Errorf("openstack: %w: credentials %s", errNoUsername, name)
		}

		if creds.Password == "" && creds.PasswordFile == "" {
			return fmt.Errorf("openstack: %w: credentials %s", errNoPassword, name)
		}

		if creds.Project == "" {
			return fmt.Errorf("openstack: %w: credentials %s", errNoProject, name)
		}
	}

	name := conf.OpenStack.DefaultCredentials
	if name == "" {
		return fmt.Errorf("openstack: %w", errNoDefaultCredentials)
	}

	if _, ok := conf.OpenStack.Credentials[name]; !ok {
		return fmt.Errorf("openstack: %w: %s", errUnknownNamedCredentials, name)
	}

	return nil
}

// configureOpenStackClients creates the OpenStack Compute API clients from
// the specified configuration and registers them with the compute clientset.
func configureOpenStackClients(conf *config.Config) error {
	for name, creds := range conf.OpenStack.Credentials {
		password := creds.Password
		if creds.PasswordFile != "" {
			data, err := os.ReadFile(creds.PasswordFile)
			if err != nil {
				return fmt.Errorf("openstack: cannot read password file for %s: %w", name, err)
			}
			password = strings.TrimSpace(string(data))
		}

		client, err := openstack.New(
			openstack.Credentials{
				AuthEndpoint: creds.AuthEndpoint,
				Username:     creds.Username,
				Password:     password,
				Project:      creds.Project,
				Domain:       creds.Domain,
				Region:       creds.Region,
			},
			openstack.WithUserAgent("novactl/"+version.Version),
		)
		if err != nil {
			return fmt.Errorf("openstack: cannot create client for %s: %w", name, err)
		}

		wrapped := openstackclients.Client[*openstack.Client]{
			ClientScope: openstackclients.ClientScope{
				NamedCredentials: name,
				Project:          creds.Project,
				Region:           creds.Region,
			},
			Client: client,
		}

		if err := openstackclients.ComputeClientset.Register(name, wrapped); err != nil {
			return err
		}
	}

	return nil
}

// getClient returns the compute client for the configured default
// credentials.
func getClient(ctx *cli.Context) (*openstack.Client, error) {
	conf := getConfig(ctx)
	name := conf.OpenStack.DefaultCredentials

	c, ok := openstackclients.ComputeClientset.Get(name)
	if !ok {
		return nil, fmt.Errorf("openstack: %w: %s", errUnknownNamedCredentials, name)
	}

	return c.Client, nil
}

// parseMetadata parses key=value items into a metadata mapping.
func parseMetadata(items []string) (map[string]string, error) {
	metadata := make(map[string]string)
	for _, item := range items {
		key, value, found := strings.Cut(item, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %s", errInvalidMetadata, item)
		}
		metadata[key] = value
	}

	return metadata, nil
}

// newTableWriter creates a new table with the given headers. The returned
// table can be further customized, if needed, and rendered.
func newTableWriter(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(w)
	table.Header(headers)

	return table
}
