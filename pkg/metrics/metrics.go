// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// APIRequestsTotal is a metric, which tracks the number of completed
	// Compute API exchanges, partitioned by operation and HTTP status
	// code.
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openstack_api_requests_total",
			Help: "Total number of OpenStack Compute API requests",
		},
		[]string{"operation", "code"},
	)

	// AuthRequestsTotal is a metric, which tracks the number of completed
	// identity token exchanges, partitioned by HTTP status code.
	AuthRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openstack_auth_requests_total",
			Help: "Total number of OpenStack identity token requests",
		},
		[]string{"code"},
	)
)

func init() {
	prometheus.MustRegister(
		APIRequestsTotal,
		AuthRequestsTotal,
	)
}
