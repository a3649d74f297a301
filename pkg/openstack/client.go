// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package openstack provides a thin client for the OpenStack Compute API.
//
// The client performs a single identity token exchange on first use and
// issues plain HTTP requests against the resolved compute service endpoint.
// Response bodies are returned to callers verbatim, without any parsing or
// schema validation.
package openstack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gardener/novactl/pkg/metrics"
)

// DefaultUserAgent is the User-Agent header value sent with each request,
// unless configured otherwise.
const DefaultUserAgent = "novactl"

var (
	// ErrNoAuthEndpoint is returned when no identity token endpoint was
	// specified.
	ErrNoAuthEndpoint = errors.New("no auth endpoint specified")

	// ErrNoUsername is returned when no username was specified.
	ErrNoUsername = errors.New("no username specified")

	// ErrNoPassword is returned when no password was specified.
	ErrNoPassword = errors.New("no password specified")

	// ErrNoProject is returned when no project was specified.
	ErrNoProject = errors.New("no project specified")
)

// AuthError is an error, which is returned when the identity token exchange
// fails. Once the exchange has failed, every subsequent API call returns the
// same [AuthError].
type AuthError struct {
	// StatusCode is the HTTP status code returned by the identity
	// service. It is zero when no response was received at all.
	StatusCode int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("auth failed: %v", e.Err)
}

// Unwrap returns the wrapped error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// APIError is an error, which is returned when the Compute API responds with
// a non-2xx status code. The raw response body is carried as-is, without any
// interpretation.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Status is the HTTP status line of the response.
	Status string

	// Body is the raw response body.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api call failed: %s", e.Status)
}

// Credentials represents the credentials used for authenticating against the
// identity service. Credentials are immutable once the client is created.
type Credentials struct {
	// AuthEndpoint is the token endpoint of the identity service, e.g.
	// https://keystone.local/v2.0/tokens. The endpoint is used as-is.
	AuthEndpoint string

	// Username to authenticate with.
	Username string

	// Password to authenticate with.
	Password string

	// Project is the project (tenant) to use.
	Project string

	// Domain is the domain associated with the credentials.
	Domain string

	// Region is the region for which to resolve the compute service
	// endpoint. When empty, the first compute endpoint from the service
	// catalog is used.
	Region string
}

// Option is a function which configures the [Client].
type Option func(c *Client)

// WithHTTPClient configures the client to use the given [http.Client].
func WithHTTPClient(httpClient *http.Client) Option {
	opt := func(c *Client) {
		c.httpClient = httpClient
	}

	return opt
}

// WithLogger configures the client to use the given [slog.Logger].
func WithLogger(logger *slog.Logger) Option {
	opt := func(c *Client) {
		c.logger = logger
	}

	return opt
}

// WithUserAgent configures the User-Agent header value to send with each
// request.
func WithUserAgent(userAgent string) Option {
	opt := func(c *Client) {
		c.userAgent = userAgent
	}

	return opt
}

// Client is an API client for the OpenStack Compute service.
//
// The auth token and the compute service endpoint are resolved lazily on
// first use and are then reused for the lifetime of the client. There is no
// token refresh. The resolution is guarded by a one-time-initialization
// primitive, which makes a client safe for use by concurrent callers - the
// identity exchange happens exactly once and its outcome, success or
// failure, is observed by everyone.
type Client struct {
	creds      Credentials
	httpClient *http.Client
	logger     *slog.Logger
	userAgent  string

	authOnce sync.Once
	authErr  error

	// Resolved auth state. Written once from within authOnce, read-only
	// afterwards.
	token    string
	endpoint string
}

// New creates a new [Client] with the given credentials.
func New(creds Credentials, opts ...Option) (*Client, error) {
	if creds.AuthEndpoint == "" {
		return nil, ErrNoAuthEndpoint
	}

	if creds.Username == "" {
		return nil, ErrNoUsername
	}

	if creds.Password == "" {
		return nil, ErrNoPassword
	}

	if creds.Project == "" {
		return nil, ErrNoProject
	}

	c := &Client{
		creds:      creds,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Region returns the region the client was configured with.
func (c *Client) Region() string {
	return c.creds.Region
}

// Project returns the project the client was configured with.
func (c *Client) Project() string {
	return c.creds.Project
}

// success returns a boolean indicating whether the response status code is
// in the 2xx range.
func success(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// do resolves the auth state, if needed, then issues a single request
// against the compute service endpoint and returns the response along with
// the raw response body.
func (c *Client) do(ctx context.Context, operation string, method string, path string, body io.Reader) (*http.Response, string, error) {
	if err := c.Authenticate(ctx); err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return nil, "", err
	}

	req.Header.Set("X-Auth-Token", c.token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	c.logger.Debug(
		"api request",
		"operation", operation,
		"method", method,
		"path", path,
		"status_code", resp.StatusCode,
		"duration", time.Since(start),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return resp, string(data), nil
}

// get issues a GET request against the given path and returns the raw
// response body. A non-2xx response is returned as [APIError].
func (c *Client) get(ctx context.Context, operation string, path string) (string, error) {
	resp, body, err := c.do(ctx, operation, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}

	if !success(resp) {
		return "", &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}
	}

	return body, nil
}

// post issues a POST request with the given JSON payload against the given
// path and returns the raw response body. A non-2xx response is returned as
// [APIError].
func (c *Client) post(ctx context.Context, operation string, path string, payload []byte) (string, error) {
	resp, body, err := c.do(ctx, operation, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}

	if !success(resp) {
		return "", &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}
	}

	return body, nil
}

// delete issues a DELETE request against the given path and returns a
// boolean indicating whether the service responded with a 2xx status code.
// The response body is not inspected.
func (c *Client) delete(ctx context.Context, operation string, path string) (bool, error) {
	resp, _, err := c.do(ctx, operation, http.MethodDelete, path, nil)
	if err != nil {
		return false, err
	}

	return success(resp), nil
}

// trimTrailingSlash normalizes an endpoint URL, so that request paths can be
// appended directly.
func trimTrailingSlash(endpoint string) string {
	return strings.TrimSuffix(endpoint, "/")
}
