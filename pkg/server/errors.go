// Copyright (c) 2026, The gtpower Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	gterrors "github.com/gtnh/gtpower/pkg/errors"
	"github.com/gtnh/gtpower/pkg/serializer"
)

// ErrorResponse is the JSON body of every error returned by the API.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HTTPStatusFromCode maps an error code to an HTTP status.
// Unknown codes map to 500.
func HTTPStatusFromCode(code gterrors.ErrorCode) int {
	switch code {
	case gterrors.ErrCodeInvalidRequest,
		gterrors.ErrCodeOutOfRange,
		gterrors.ErrCodeInvalidRecipeCost,
		gterrors.ErrCodeDuplicateMetadataKey:
		return http.StatusBadRequest
	case gterrors.ErrCodeNotFound:
		return http.StatusNotFound
	case gterrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case gterrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case gterrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case gterrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may retry a request that
// failed with code. Data errors are never retryable.
func retryableFromCode(code gterrors.ErrorCode) bool {
	switch code {
	case gterrors.ErrCodeTimeout,
		gterrors.ErrCodeUnavailable,
		gterrors.ErrCodeRateLimitExceeded,
		gterrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// WriteError writes an ErrorResponse with the request ID from context.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code gterrors.ErrorCode, message string, retryable bool, details map[string]any) {

	apiErrors.WithLabelValues(string(code)).Inc()

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err, using its structured code and context when
// present. Other errors are reported as INTERNAL with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *gterrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, nil)
	if err != nil {
		details = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, gterrors.ErrCodeInternal,
		fallbackMessage, retryableFromCode(gterrors.ErrCodeInternal), details)
}

// mergeDetails returns a new map with the entries of a and b, b winning on
// conflicts. It returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
