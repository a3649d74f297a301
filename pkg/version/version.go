// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package version provides version information.
package version

// Version is the novactl version. It is meant to be set during build time
// using -ldflags.
var Version = "v0.1.0-dev"
