// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gardener/novactl/pkg/utils/ptr"
)

var (
	// ErrNoServerID is returned when no server id was specified.
	ErrNoServerID = errors.New("no server id specified")

	// ErrNoServerName is returned when no server name was specified.
	ErrNoServerName = errors.New("no server name specified")

	// ErrNoFlavor is returned when no flavor was specified.
	ErrNoFlavor = errors.New("no flavor specified")

	// ErrNoImage is returned when no image was specified.
	ErrNoImage = errors.New("no image specified")
)

// ListOpts specifies the options for listing resources.
type ListOpts struct {
	// Detail specifies whether to request the detailed listing. When nil
	// it defaults to true.
	Detail *bool
}

// CreateServerRequest is the request for creating a new server.
type CreateServerRequest struct {
	// Name is the name of the new server.
	Name string

	// Flavor is the flavor reference to create the server with.
	Flavor string

	// Image is the image reference to create the server from.
	Image string
}

// serverCreatePayload is the wire representation of a create server request.
type serverCreatePayload struct {
	Server struct {
		Name      string `json:"name"`
		ImageRef  string `json:"imageRef"`
		FlavorRef string `json:"flavorRef"`
	} `json:"server"`
}

// ListServers returns the raw body of the server listing. By default the
// detailed listing is requested.
func (c *Client) ListServers(ctx context.Context, opts ListOpts) (string, error) {
	path := "/servers"
	if ptr.Value(opts.Detail, true) {
		path += "/detail"
	}

	return c.get(ctx, "list_servers", path)
}

// GetServer returns the raw body with the details of the given server.
func (c *Client) GetServer(ctx context.Context, serverID string) (string, error) {
	if serverID == "" {
		return "", ErrNoServerID
	}

	return c.get(ctx, "get_server", "/servers/"+serverID)
}

// CreateServer creates a new server and returns the raw response body.
func (c *Client) CreateServer(ctx context.Context, req CreateServerRequest) (string, error) {
	if req.Name == "" {
		return "", ErrNoServerName
	}

	if req.Flavor == "" {
		return "", ErrNoFlavor
	}

	if req.Image == "" {
		return "", ErrNoImage
	}

	var payload serverCreatePayload
	payload.Server.Name = req.Name
	payload.Server.ImageRef = req.Image
	payload.Server.FlavorRef = req.Flavor

	data, err := json.Marshal(&payload)
	if err != nil {
		return "", err
	}

	return c.post(ctx, "create_server", "/servers", data)
}

// DeleteServer deletes the given server. The returned boolean indicates
// whether the service acknowledged the deletion with a 2xx status code.
func (c *Client) DeleteServer(ctx context.Context, serverID string) (bool, error) {
	if serverID == "" {
		return false, ErrNoServerID
	}

	return c.delete(ctx, "delete_server", "/servers/"+serverID)
}
