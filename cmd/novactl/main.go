// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gardener/novactl/pkg/core/config"
	slogutils "github.com/gardener/novactl/pkg/utils/slog"
	"github.com/gardener/novactl/pkg/version"
)

func main() {
	app := &cli.App{
		Name:                 "novactl",
		Version:              version.Version,
		EnableBashCompletion: true,
		Usage:                "command-line tool for interfacing with the OpenStack Compute API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enables debug mode, if set",
				Value: false,
			},
			&cli.StringFlag{
				Name:     "config",
				Usage:    "path to config file",
				Required: true,
				Aliases:  []string{"file"},
				EnvVars:  []string{"NOVACTL_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "credentials",
				Usage:   "name of the credentials to use",
				Aliases: []string{"creds"},
				EnvVars: []string{"NOVACTL_CREDENTIALS"},
			},
		},
		Before: func(ctx *cli.Context) error {
			configFile := ctx.String("config")
			conf, err := config.Parse(configFile)
			if err != nil {
				return fmt.Errorf("Cannot parse config: %w", err)
			}

			// Overrides from flags/options
			if ctx.IsSet("debug") {
				conf.Debug = ctx.Bool("debug")
			}

			if ctx.IsSet("credentials") {
				conf.OpenStack.DefaultCredentials = ctx.String("credentials")
			}

			if conf.Debug {
				conf.Logging.Level = string(slogutils.LevelDebug)
			}

			if err := validateOpenStackConfig(conf); err != nil {
				return err
			}

			logger, err := slogutils.NewFromConfig(os.Stderr, conf.Logging)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			if err := configureOpenStackClients(conf); err != nil {
				return err
			}

			ctx.Context = context.WithValue(ctx.Context, configKey{}, conf)

			return nil
		},
		Commands: []*cli.Command{
			NewServerCommand(),
			NewImageCommand(),
			NewCredentialsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
