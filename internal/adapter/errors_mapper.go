// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-shell/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for a 2xx reply and a *RequestError carrying the
// status and the server message otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &RequestError{
		Response: &ResponseInfo{
			Status:  resp.StatusCode(),
			Message: replyMessage(resp.StatusCode(), resp.Body()),
			Body:    resp.Body(),
		},
		Request: requestInfo(resp),
	}
}

// mapTransportError builds the *RequestError for a call that produced no
// reply. resty returns a nil response only when a request middleware failed,
// which happens before anything is sent.
func mapTransportError(resp *resty.Response, err error) error {
	reqErr := &RequestError{Message: err.Error(), Err: err}
	if resp != nil {
		reqErr.Request = requestInfo(resp)
	}
	return reqErr
}

func requestInfo(resp *resty.Response) *RequestInfo {
	if resp.Request == nil {
		return &RequestInfo{}
	}
	return &RequestInfo{Method: resp.Request.Method, URL: resp.Request.URL}
}

// replyMessage picks the text of a failed reply: the JSON message, the
// flattened field errors, the raw body, then the status text.
func replyMessage(status int, body []byte) string {
	var msg models.MessageResponse
	if err := json.Unmarshal(body, &msg); err == nil {
		if msg.Message != "" {
			return msg.Message
		}
		if text := msg.ErrorsText(); text != "" {
			return text
		}
	}

	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}

	return http.StatusText(status)
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// Classify converts the result of a [ServerAdapter] call into the outcome
// shown to the user. Errors that are not a *RequestError are treated as
// failures before dispatch.
func Classify(resp models.MessageResponse, err error) models.AuthOutcome {
	if err == nil {
		return models.Ok(resp.Message)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return models.RequestSetupError(err.Error())
	}

	switch {
	case reqErr.Response != nil:
		return models.RejectedByServer(reqErr.Response.Status, reqErr.Response.Message)
	case reqErr.Request != nil:
		return models.NoResponse()
	default:
		return models.RequestSetupError(reqErr.Message)
	}
}
