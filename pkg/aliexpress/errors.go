package aliexpress

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call.
type Kind int

// Failure kinds, in the order a call can fail.
const (
	KindUnknown Kind = iota
	KindValidation
	KindNetwork
	KindHTTP
	KindDecode
	KindPlatform
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrValidation = errors.New("validation error")
	ErrNetwork    = errors.New("network error")
	ErrHTTP       = errors.New("http error")
	ErrDecode     = errors.New("decode error")
	ErrPlatform   = errors.New("platform error")
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	case KindPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindNetwork:
		return ErrNetwork
	case KindHTTP:
		return ErrHTTP
	case KindDecode:
		return ErrDecode
	case KindPlatform:
		return ErrPlatform
	default:
		return nil
	}
}

// ErrorResponse is the platform's error envelope, found under the
// top-level error_response key.
type ErrorResponse struct {
	// Type is SYSTEM (gateway), ISV (business data) or ISP (backend service).
	Type      string `json:"type,omitempty"`
	Code      string `json:"code,omitempty"`
	Msg       string `json:"msg,omitempty"`
	SubCode   string `json:"sub_code,omitempty"`
	SubMsg    string `json:"sub_msg,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Error is returned by every failed operation.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	RequestID  string
	Response   *ErrorResponse
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel (ErrNetwork, ErrPlatform, ...).
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewValidationError wraps a request validation failure.
func NewValidationError(err error) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("invalid request: %v", err),
		Err:     err,
	}
}

// NewDecodeError wraps a failure to interpret a response body.
func NewDecodeError(what string, err error) *Error {
	msg := what
	if err != nil {
		msg = fmt.Sprintf("%s: %v", what, err)
	}
	return &Error{
		Kind:    KindDecode,
		Message: msg,
		Err:     err,
	}
}

// NewPlatformError converts a platform error envelope into an *Error.
func NewPlatformError(resp *ErrorResponse, statusCode int) *Error {
	msg := "bad request"
	switch {
	case resp.Code != "" && resp.Msg != "":
		msg = fmt.Sprintf("platform error (code %s): %s", resp.Code, resp.Msg)
	case resp.Code != "":
		msg = fmt.Sprintf("platform error (code %s): bad request", resp.Code)
	case resp.Msg != "":
		msg = "platform error: " + resp.Msg
	}
	if resp.SubMsg != "" {
		msg += " (" + resp.SubMsg + ")"
	}
	return &Error{
		Kind:       KindPlatform,
		Message:    msg,
		StatusCode: statusCode,
		RequestID:  resp.RequestID,
		Response:   resp,
	}
}

func networkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("network error: %v", err),
		Err:     err,
	}
}

func httpError(code int, reason string) *Error {
	return &Error{
		Kind:       KindHTTP,
		Message:    fmt.Sprintf("HTTP error: %d %s", code, reason),
		StatusCode: code,
	}
}

// RequestIDOf returns the platform request id carried by err, or "".
func RequestIDOf(err error) string {
	var aeErr *Error
	if errors.As(err, &aeErr) {
		return aeErr.RequestID
	}
	return ""
}

// KindOf returns the failure kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var aeErr *Error
	if errors.As(err, &aeErr) {
		return aeErr.Kind
	}
	return KindUnknown
}
