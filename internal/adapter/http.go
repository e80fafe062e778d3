// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-auth-shell/internal/config"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/utils"
	"github.com/MKhiriev/go-auth-shell/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Post implements [ServerAdapter]. A 2xx body that is not a JSON message is
// passed through as the message text.
func (h *httpServerAdapter) Post(ctx context.Context, path string, body any) (models.MessageResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("request did not get a response")
		return models.MessageResponse{}, mapTransportError(resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("server rejected request")
		return models.MessageResponse{}, err
	}

	var msg models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &msg); err != nil {
		msg = models.MessageResponse{Message: strings.TrimSpace(string(resp.Body()))}
	}

	h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("request succeeded")
	return msg, nil
}
