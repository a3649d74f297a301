// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package openstack

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gardener/novactl/pkg/utils/ptr"
)

func TestListImagesDetail(t *testing.T) {
	testCases := []struct {
		desc   string
		detail *bool
		wanted string
	}{
		{
			desc:   "default requests detailed listing",
			detail: nil,
			wanted: "/region-a/images/detail",
		},
		{
			desc:   "brief listing",
			detail: ptr.To(false),
			wanted: "/region-a/images",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			fc := newFakeCloud(t)
			client := newTestClient(t, fc, "region-a")

			body, err := client.ListImages(context.Background(), ListOpts{Detail: tc.detail})
			if err != nil {
				t.Fatalf("ListImages should not error out: %v", err)
			}

			if body != fc.body {
				t.Fatalf("ListImages returned %q, expected the raw body %q", body, fc.body)
			}

			req := fc.requests[0]
			if req.Method != http.MethodGet || req.Path != tc.wanted {
				t.Fatalf("Request is %s %s, expected GET %s", req.Method, req.Path, tc.wanted)
			}
		})
	}
}

func TestGetImage(t *testing.T) {
	fc := newFakeCloud(t)
	client := newTestClient(t, fc, "region-a")

	body, err := client.GetImage(context.Background(), "img-1")
	if err != nil {
		t.Fatalf("GetImage should not error out: %v", err)
	}

	if body != fc.body {
		t.Fatalf("GetImage returned %q, expected the raw body %q", body, fc.body)
	}

	req := fc.requests[0]
	if req.Method != http.MethodGet || req.Path != "/region-a/images/img-1" {
		t.Fatalf("Request is %s %s, expected GET /region-a/images/img-1", req.Method, req.Path)
	}
}

func TestGetImageValidation(t *testing.T) {
	fc := newFakeCloud(t)
	client := newTestClient(t, fc, "region-a")

	_, err := client.GetImage(context.Background(), "")
	if !errors.Is(err, ErrNoImageID) {
		t.Fatalf("GetImage returned %v, expected %v", err, ErrNoImageID)
	}

	if fc.authCalls != 0 || len(fc.requests) != 0 {
		t.Fatalf("Validation failure resulted in network calls: auth=%d compute=%d", fc.authCalls, len(fc.requests))
	}
}

func TestCreateImageDefaultMetadata(t *testing.T) {
	fc := newFakeCloud(t)
	client := newTestClient(t, fc, "region-a")

	req := CreateImageRequest{
		Name:     "img1",
		ServerID: "42",
	}

	body, err := client.CreateImage(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateImage should not error out: %v", err)
	}

	if body != fc.body {
		t.Fatalf("CreateImage returned %q, expected the raw body %q", body, fc.body)
	}

	recorded := fc.requests[0]
	if recorded.Method != http.MethodPost || recorded.Path != "/region-a/servers/42/action" {
		t.Fatalf("Request is %s %s, expected POST /region-a/servers/42/action", recorded.Method, recorded.Path)
	}

	wanted := `{"createImage":{"name":"img1","metadata":{}}}`
	if recorded.Body != wanted {
		t.Fatalf("Request body is %s, expected %s", recorded.Body, wanted)
	}
}

func TestCreateImageWithMetadata(t *testing.T) {
	fc := newFakeCloud(t)
	client := newTestClient(t, fc, "region-a")

	req := CreateImageRequest{
		Name:     "img1",
		ServerID: "42",
		Metadata: map[string]string{"purpose": "backup"},
	}

	if _, err := client.CreateImage(context.Background(), req); err != nil {
		t.Fatalf("CreateImage should not error out: %v", err)
	}

	wanted := `{"createImage":{"name":"img1","metadata":{"purpose":"backup"}}}`
	if recorded := fc.requests[0]; recorded.Body != wanted {
		t.Fatalf("Request body is %s, expected %s", recorded.Body, wanted)
	}
}

func TestCreateImageValidation(t *testing.T) {
	testCases := []struct {
		desc    string
		req     CreateImageRequest
		wantErr error
	}{
		{
			desc:    "missing name",
			req:     CreateImageRequest{ServerID: "42"},
			wantErr: ErrNoImageName,
		},
		{
			desc:    "missing server id",
			req:     CreateImageRequest{Name: "img1"},
			wantErr: ErrNoServerID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			fc := newFakeCloud(t)
			client := newTestClient(t, fc, "region-a")

			_, err := client.CreateImage(context.Background(), tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CreateImage returned %v, expected %v", err, tc.wantErr)
			}

			if fc.authCalls != 0 || len(fc.requests) != 0 {
				t.Fatalf("Validation failure resulted in network calls: auth=%d compute=%d", fc.authCalls, len(fc.requests))
			}
		})
	}
}

func TestDeleteImage(t *testing.T) {
	testCases := []struct {
		desc   string
		status int
		wanted bool
	}{
		{
			desc:   "accepted",
			status: http.StatusAccepted,
			wanted: true,
		},
		{
			desc:   "conflict",
			status: http.StatusConflict,
			wanted: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			fc := newFakeCloud(t)
			fc.status = tc.status
			client := newTestClient(t, fc, "region-a")

			ok, err := client.DeleteImage(context.Background(), "img-1")
			if err != nil {
				t.Fatalf("DeleteImage should not error out: %v", err)
			}

			if ok != tc.wanted {
				t.Fatalf("DeleteImage returned %v for status %d, expected %v", ok, tc.status, tc.wanted)
			}

			recorded := fc.requests[0]
			if recorded.Method != http.MethodDelete || recorded.Path != "/region-a/images/img-1" {
				t.Fatalf("Request is %s %s, expected DELETE /region-a/images/img-1", recorded.Method, recorded.Path)
			}
		})
	}
}

func TestDeleteImageValidation(t *testing.T) {
	fc := newFakeCloud(t)
	client := newTestClient(t, fc, "region-a")

	_, err := client.DeleteImage(context.Background(), "")
	if !errors.Is(err, ErrNoImageID) {
		t.Fatalf("DeleteImage returned %v, expected %v", err, ErrNoImageID)
	}

	if fc.authCalls != 0 || len(fc.requests) != 0 {
		t.Fatalf("Validation failure resulted in network calls: auth=%d compute=%d", fc.authCalls, len(fc.requests))
	}
}
