// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"errors"
	"net/http"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order; the first sentinel err wraps decides
// the status.
var errorStatuses = []errorStatus{
	{ErrControllerNotFound, http.StatusNotFound},
	{ErrResourceNotFound, http.StatusNotFound},
	{ErrActionNotFound, http.StatusMethodNotAllowed},
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{ErrBadRequest, http.StatusBadRequest},
	{ErrConflict, http.StatusConflict},
	{ErrControllerNotResolved, http.StatusInternalServerError},
	{ErrControllerTypeMismatch, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// HTTPError is the body written for failed requests.
type HTTPError struct {
	Message       string `json:"Message"`
	MessageDetail string `json:"MessageDetail,omitempty"`
}

const (
	msgInternalServerError = "An error has occurred."
	msgNoResourceFound     = "No HTTP resource was found that matches the request URI."
	msgMethodNotSupported  = "The requested resource does not support this http method."
)

// newHTTPError builds the public error body for err. Server-side failures
// never leak the underlying error text.
func newHTTPError(status int, err error) HTTPError {
	switch status {
	case http.StatusInternalServerError:
		return HTTPError{Message: msgInternalServerError}
	case http.StatusMethodNotAllowed:
		return HTTPError{Message: msgMethodNotSupported}
	}

	if errors.Is(err, ErrControllerNotFound) {
		return HTTPError{Message: msgNoResourceFound, MessageDetail: err.Error()}
	}

	return HTTPError{Message: err.Error()}
}
