// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("Cannot write config file: %v", err)
	}

	return path
}

func TestParse(t *testing.T) {
	data := `---
version: v1alpha1
debug: true
logging:
  level: debug
  format: json
openstack:
  default_credentials: dev
  credentials:
    dev:
      auth_endpoint: http://keystone.local/v2.0/tokens
      username: demo
      password: secret
      project: demo-project
      region: RegionOne
`
	conf, err := Parse(writeConfigFile(t, data))
	if err != nil {
		t.Fatalf("Parsing a valid config should not error out: %v", err)
	}

	if !conf.Debug {
		t.Fatalf("Debug setting was not parsed")
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "json" {
		t.Fatalf("Logging settings were not parsed: %+v", conf.Logging)
	}

	if conf.OpenStack.DefaultCredentials != "dev" {
		t.Fatalf("Default credentials are %q, expected %q", conf.OpenStack.DefaultCredentials, "dev")
	}

	creds, ok := conf.OpenStack.Credentials["dev"]
	if !ok {
		t.Fatalf("Named credentials %q not found in parsed config", "dev")
	}

	if creds.Username != "demo" || creds.Project != "demo-project" || creds.Region != "RegionOne" {
		t.Fatalf("Credentials were not parsed: %+v", creds)
	}
}

func TestParseNoVersion(t *testing.T) {
	data := `---
debug: true
`
	_, err := Parse(writeConfigFile(t, data))
	if !errors.Is(err, ErrNoConfigVersion) {
		t.Fatalf("Parse returned %v, expected %v", err, ErrNoConfigVersion)
	}
}

func TestParseUnsupportedVersion(t *testing.T) {
	data := `---
version: v1beta42
`
	_, err := Parse(writeConfigFile(t, data))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("Parse returned %v, expected %v", err, ErrUnsupportedVersion)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Parsing a missing config file should error out")
	}
}
