// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package rest

import "fmt"

// ErrorCode represents transport-level error classifications
type ErrorCode string

const (
	ErrorCodeNone             ErrorCode = "NONE"
	ErrorCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrorCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrorCodePaymentRequired  ErrorCode = "PAYMENT_REQUIRED"
	ErrorCodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	ErrorCodeThrottling       ErrorCode = "THROTTLING"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
	ErrorCodeUnknown          ErrorCode = "UNKNOWN"
)

// Error represents a transport layer error with classification
type Error struct {
	Code       ErrorCode
	Message    string
	HTTPCode   int
	Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// ClassifyHTTPStatus maps HTTP status codes to error codes
func ClassifyHTTPStatus(statusCode int) ErrorCode {
	switch statusCode {
	case 200, 201, 204:
		return ErrorCodeNone
	case 400:
		return ErrorCodeInvalidInput
	case 401, 403:
		return ErrorCodeUnauthorized
	case 402:
		return ErrorCodePaymentRequired
	case 404:
		return ErrorCodeResourceNotFound
	case 429:
		return ErrorCodeThrottling
	case 500, 502, 503:
		return ErrorCodeInternalError
	default:
		if statusCode >= 200 && statusCode < 300 {
			return ErrorCodeNone
		}
		return ErrorCodeUnknown
	}
}

// NewError creates a new transport error
func NewError(code ErrorCode, message string, underlying error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: underlying,
	}
}
