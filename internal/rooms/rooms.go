// Package rooms provisions video-conference rooms through an external
// service. The handler-facing surface is the RoomProvisioner interface so
// timeout or retry policy changes never touch request handling.
package rooms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUpstream is returned when the provisioning service responds with a
// non-200 status.
var ErrUpstream = errors.New("room service returned an error")

// RoomProvisioner provisions a room and returns its registration link.
type RoomProvisioner interface {
	Provision(ctx context.Context, name, password string) (string, error)
}

// HTTPProvisioner calls the room service over HTTP.
type HTTPProvisioner struct {
	url    string
	client *http.Client
}

// NewHTTPProvisioner creates a provisioner for the given endpoint.
func NewHTTPProvisioner(url string) *HTTPProvisioner {
	return &HTTPProvisioner{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Provision POSTs {name, password} and expects {"uri": <link>} on 200.
func (p *HTTPProvisioner) Provision(ctx context.Context, name, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"name":     name,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode room request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build room request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("room service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var body struct {
		URI string `json:"uri"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode room response: %w", err)
	}
	if body.URI == "" {
		return "", fmt.Errorf("%w: empty uri in response", ErrUpstream)
	}

	return body.URI, nil
}
