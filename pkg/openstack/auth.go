// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gardener/novactl/pkg/metrics"
)

// ErrNoToken is returned when the identity service response does not contain
// an auth token.
var ErrNoToken = errors.New("no token found in identity response")

// ErrNoComputeEndpoint is returned when the service catalog does not contain
// a compute endpoint for the requested region.
var ErrNoComputeEndpoint = errors.New("no compute endpoint found in service catalog")

// serviceTypeCompute is the service catalog entry type of the compute
// service.
const serviceTypeCompute = "compute"

// passwordCredentials represents the password credentials of the identity
// token request.
type passwordCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authRequest represents the payload of the identity token request.
type authRequest struct {
	Auth struct {
		PasswordCredentials passwordCredentials `json:"passwordCredentials"`
		TenantName          string              `json:"tenantName"`
	} `json:"auth"`
}

// serviceEndpoint represents an endpoint of a service catalog entry.
type serviceEndpoint struct {
	Region    string `json:"region"`
	PublicURL string `json:"publicURL"`
}

// catalogEntry represents an entry from the service catalog.
type catalogEntry struct {
	Type      string            `json:"type"`
	Name      string            `json:"name"`
	Endpoints []serviceEndpoint `json:"endpoints"`
}

// authResponse represents the payload of the identity token response. Only
// the token and the service catalog are of interest here, everything else is
// ignored.
type authResponse struct {
	Access struct {
		Token struct {
			ID string `json:"id"`
		} `json:"token"`
		ServiceCatalog []catalogEntry `json:"serviceCatalog"`
	} `json:"access"`
}

// Authenticate resolves the auth token and the compute service endpoint by
// performing a token exchange against the identity service. The resolution
// happens at most once per client - subsequent calls return the memoized
// outcome. Callers which share a client between goroutines may invoke
// Authenticate eagerly before concurrent use, although this is not required
// for correctness.
func (c *Client) Authenticate(ctx context.Context) error {
	c.authOnce.Do(func() {
		c.authErr = c.authenticate(ctx)
	})

	return c.authErr
}

// authenticate performs the identity token exchange and extracts the auth
// token and the region-matched compute service endpoint from the response.
func (c *Client) authenticate(ctx context.Context) error {
	var payload authRequest
	payload.Auth.PasswordCredentials = passwordCredentials{
		Username: c.creds.Username,
		Password: c.creds.Password,
	}
	payload.Auth.TenantName = c.creds.Project

	data, err := json.Marshal(&payload)
	if err != nil {
		return &AuthError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.creds.AuthEndpoint, bytes.NewReader(data))
	if err != nil {
		return &AuthError{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &AuthError{Err: err}
	}
	defer resp.Body.Close()

	metrics.AuthRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &AuthError{StatusCode: resp.StatusCode, Err: err}
	}

	if !success(resp) {
		return &AuthError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("identity service returned %s", resp.Status),
		}
	}

	var result authResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return &AuthError{StatusCode: resp.StatusCode, Err: err}
	}

	if result.Access.Token.ID == "" {
		return &AuthError{StatusCode: resp.StatusCode, Err: ErrNoToken}
	}

	endpoint, err := selectComputeEndpoint(result.Access.ServiceCatalog, c.creds.Region)
	if err != nil {
		return &AuthError{StatusCode: resp.StatusCode, Err: err}
	}

	c.token = result.Access.Token.ID
	c.endpoint = trimTrailingSlash(endpoint)

	c.logger.Debug(
		"resolved compute endpoint",
		"endpoint", c.endpoint,
		"region", c.creds.Region,
		"project", c.creds.Project,
	)

	return nil
}

// selectComputeEndpoint returns the public URL of the compute service
// endpoint matching the given region. With an empty region the first compute
// endpoint from the catalog is returned.
func selectComputeEndpoint(catalog []catalogEntry, region string) (string, error) {
	for _, entry := range catalog {
		if entry.Type != serviceTypeCompute {
			continue
		}

		for _, endpoint := range entry.Endpoints {
			if region == "" || endpoint.Region == region {
				return endpoint.PublicURL, nil
			}
		}
	}

	return "", fmt.Errorf("%w: region %q", ErrNoComputeEndpoint, region)
}
