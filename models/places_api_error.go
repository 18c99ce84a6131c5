package models

import (
	"errors"
	"fmt"
	"net/http"
)

type PlacesAPIErrorType string

const (
	InvalidRequest     PlacesAPIErrorType = "INVALID_REQUEST"
	AuthError          PlacesAPIErrorType = "AUTH_ERROR"
	RateLimit          PlacesAPIErrorType = "RATE_LIMIT"
	NetworkError       PlacesAPIErrorType = "NETWORK_ERROR"
	ServiceUnavailable PlacesAPIErrorType = "SERVICE_UNAVAILABLE"
)

// PlacesAPIError is the error every search path reports to callers.
type PlacesAPIError struct {
	Type    PlacesAPIErrorType `json:"type"`
	Message string             `json:"message"`
}

func NewPlacesAPIError(errorType PlacesAPIErrorType, message string) *PlacesAPIError {
	return &PlacesAPIError{Type: errorType, Message: message}
}

func (e *PlacesAPIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// HTTPStatus is the status a handler answers with for this error.
func (e *PlacesAPIError) HTTPStatus() int {
	switch e.Type {
	case InvalidRequest:
		return http.StatusBadRequest
	case AuthError:
		return http.StatusUnauthorized
	case RateLimit:
		return http.StatusTooManyRequests
	case NetworkError:
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}

// ErrorTypeForStatus classifies an upstream HTTP status.
func ErrorTypeForStatus(status int) PlacesAPIErrorType {
	switch status {
	case http.StatusBadRequest:
		return InvalidRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return AuthError
	case http.StatusTooManyRequests:
		return RateLimit
	default:
		return ServiceUnavailable
	}
}

// AsPlacesAPIError unwraps err into a *PlacesAPIError, if it holds one.
func AsPlacesAPIError(err error) (*PlacesAPIError, bool) {
	var apiErr *PlacesAPIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
