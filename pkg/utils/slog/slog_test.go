// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package slog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gardener/novactl/pkg/core/config"
)

func TestNewFromConfigDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewFromConfig(&buf, config.LoggingConfig{})
	if err != nil {
		t.Fatalf("NewFromConfig with empty config should not error out: %v", err)
	}

	logger.Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("Default logger did not emit text format: %q", buf.String())
	}
}

func TestNewFromConfigJSON(t *testing.T) {
	var buf bytes.Buffer
	conf := config.LoggingConfig{
		Level:  "debug",
		Format: "json",
	}

	logger, err := NewFromConfig(&buf, conf)
	if err != nil {
		t.Fatalf("NewFromConfig should not error out: %v", err)
	}

	logger.Debug("hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Fatalf("JSON logger did not emit JSON format: %q", buf.String())
	}
}

func TestNewFromConfigInvalidSettings(t *testing.T) {
	var buf bytes.Buffer

	if _, err := NewFromConfig(&buf, config.LoggingConfig{Level: "nope"}); !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("NewFromConfig returned %v, expected %v", err, ErrInvalidLogLevel)
	}

	if _, err := NewFromConfig(&buf, config.LoggingConfig{Format: "nope"}); !errors.Is(err, ErrInvalidLogFormat) {
		t.Fatalf("NewFromConfig returned %v, expected %v", err, ErrInvalidLogFormat)
	}
}
