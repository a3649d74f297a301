// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"github.com/gardener/novactl/pkg/core/registry"
	"github.com/gardener/novactl/pkg/openstack"
)

// ComputeClientset provides the registry of OpenStack Compute API clients,
// keyed by the name of the credentials the clients were created with.
var ComputeClientset = registry.New[string, Client[*openstack.Client]]()
