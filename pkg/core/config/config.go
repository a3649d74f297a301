// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoConfigVersion error is returned when the configuration does not specify
// config format version.
var ErrNoConfigVersion = errors.New("config format version not specified")

// ErrUnsupportedVersion is an error, which is returned when the config file
// uses an incompatible version format.
var ErrUnsupportedVersion = errors.New("unsupported config format version")

// ConfigFormatVersion represents the supported config format version.
const ConfigFormatVersion = "v1alpha1"

// Config represents the novactl configuration.
type Config struct {
	// Version is the version of the config file.
	Version string `yaml:"version"`

	// Debug configures debug mode, if set to true.
	Debug bool `yaml:"debug"`

	// Logging provides the logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// OpenStack provides the OpenStack specific configuration.
	OpenStack OpenStackConfig `yaml:"openstack"`
}

// LoggingConfig provides logging specific configuration settings.
type LoggingConfig struct {
	// Level specifies the log level to use.
	Level string `yaml:"level"`

	// Format specifies the log format to use - text or json.
	Format string `yaml:"format"`

	// AddSource specifies whether to include source code position of the
	// log statement in log events.
	AddSource bool `yaml:"add_source"`

	// Attributes specifies additional attributes to include with each log
	// event.
	Attributes map[string]string `yaml:"attributes"`
}

// OpenStackConfig provides the OpenStack specific configuration settings.
type OpenStackConfig struct {
	// DefaultCredentials is the name of the credentials to use, unless
	// explicitly requested otherwise.
	DefaultCredentials string `yaml:"default_credentials"`

	// Credentials provides the named credentials.
	Credentials map[string]OpenStackCredentialsConfig `yaml:"credentials"`
}

// OpenStackCredentialsConfig represents a named set of credentials for
// authenticating against the OpenStack identity service.
type OpenStackCredentialsConfig struct {
	// AuthEndpoint is the token endpoint of the identity service.
	AuthEndpoint string `yaml:"auth_endpoint"`

	// Username to authenticate with.
	Username string `yaml:"username"`

	// Password to authenticate with. Ignored when PasswordFile is set.
	Password string `yaml:"password"`

	// PasswordFile is a path to a file containing the password.
	PasswordFile string `yaml:"password_file"`

	// Project is the project (tenant) to use.
	Project string `yaml:"project"`

	// Domain is the domain associated with the credentials.
	Domain string `yaml:"domain"`

	// Region is the region for which to resolve the compute service
	// endpoint. When empty, the first compute endpoint from the service
	// catalog is used.
	Region string `yaml:"region"`
}

// Parse parses the config from the given path.
func Parse(path string) (*Config, error) {
	var conf Config
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}

	if conf.Version == "" {
		return nil, ErrNoConfigVersion
	}

	if conf.Version != ConfigFormatVersion {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, conf.Version)
	}

	return &conf, nil
}

// MustParse parses the config from the given path, or panics in case of errors.
func MustParse(path string) *Config {
	config, err := Parse(path)
	if err != nil {
		panic(err)
	}

	return config
}
