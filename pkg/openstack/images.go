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
	// ErrNoImageID is returned when no image id was specified.
	ErrNoImageID = errors.New("no image id specified")

	// ErrNoImageName is returned when no image name was specified.
	ErrNoImageName = errors.New("no image name specified")
)

// CreateImageRequest is the request for creating an image from an existing
// server.
type CreateImageRequest struct {
	// Name is the name of the new image.
	Name string

	// ServerID is the id of the server from which to create the image.
	ServerID string

	// Metadata is an optional string-keyed mapping to associate with the
	// image. A nil mapping is sent as an empty one.
	Metadata map[string]string
}

// imageCreatePayload is the wire representation of a create image request.
type imageCreatePayload struct {
	CreateImage struct {
		Name     string            `json:"name"`
		Metadata map[string]string `json:"metadata"`
	} `json:"createImage"`
}

// ListImages returns the raw body of the image listing. By default the
// detailed listing is requested.
func (c *Client) ListImages(ctx context.Context, opts ListOpts) (string, error) {
	path := "/images"
	if ptr.Value(opts.Detail, true) {
		path += "/detail"
	}

	return c.get(ctx, "list_images", path)
}

// GetImage returns the raw body with the details of the given image.
func (c *Client) GetImage(ctx context.Context, imageID string) (string, error) {
	if imageID == "" {
		return "", ErrNoImageID
	}

	return c.get(ctx, "get_image", "/images/"+imageID)
}

// CreateImage creates a new image from an existing server and returns the
// raw response body.
func (c *Client) CreateImage(ctx context.Context, req CreateImageRequest) (string, error) {
	if req.Name == "" {
		return "", ErrNoImageName
	}

	if req.ServerID == "" {
		return "", ErrNoServerID
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = make(map[string]string)
	}

	var payload imageCreatePayload
	payload.CreateImage.Name = req.Name
	payload.CreateImage.Metadata = metadata

	data, err := json.Marshal(&payload)
	if err != nil {
		return "", err
	}

	return c.post(ctx, "create_image", "/servers/"+req.ServerID+"/action", data)
}

// DeleteImage deletes the given image. The returned boolean indicates
// whether the service acknowledged the deletion with a 2xx status code.
func (c *Client) DeleteImage(ctx context.Context, imageID string) (bool, error) {
	if imageID == "" {
		return false, ErrNoImageID
	}

	return c.delete(ctx, "delete_image", "/images/"+imageID)
}
