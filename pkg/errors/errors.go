package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	// CodeValidation covers malformed or invariant-violating tier/catalog
	// input: missing fields, min >= max, rates out of range, overlaps.
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeInvalidInput covers calculation input problems: non-positive
	// amounts or unrecognized currency codes.
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	// CodeNoMatchingTier is reported when no active tier range contains the
	// requested amount. Distinct from CodeNotFound so callers can tell a bad
	// id apart from a gap in the rate configuration.
	CodeNoMatchingTier Code = "NO_MATCHING_TIER"
	CodeConflict       Code = "CONFLICT"
	// CodeInconsistentConfig flags a data-integrity violation: two active
	// tiers both matched an amount. Never resolved silently.
	CodeInconsistentConfig Code = "INCONSISTENT_CONFIGURATION"
	CodeInternal           Code = "INTERNAL_ERROR"
	CodeDependency         Code = "DEPENDENCY_ERROR"
)

type Metadata struct {
	HTTPStatus     int
	ErrNo          int
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		HTTPStatus:     http.StatusPreconditionFailed,
		ErrNo:          1412,
		Retryable:      false,
		PublicMessage:  "validation failed",
		DetailsAllowed: true,
	},
	CodeInvalidInput: {
		HTTPStatus:     http.StatusBadRequest,
		ErrNo:          1400,
		Retryable:      false,
		PublicMessage:  "invalid input",
		DetailsAllowed: true,
	},
	CodeNotFound: {
		HTTPStatus:     http.StatusNotFound,
		ErrNo:          1404,
		Retryable:      false,
		PublicMessage:  "resource not found",
		DetailsAllowed: false,
	},
	CodeNoMatchingTier: {
		HTTPStatus:     http.StatusNotFound,
		ErrNo:          1405,
		Retryable:      false,
		PublicMessage:  "no tier matches the requested amount",
		DetailsAllowed: true,
	},
	CodeConflict: {
		HTTPStatus:     http.StatusConflict,
		ErrNo:          1409,
		Retryable:      false,
		PublicMessage:  "conflict detected",
		DetailsAllowed: false,
	},
	CodeInconsistentConfig: {
		HTTPStatus:     http.StatusInternalServerError,
		ErrNo:          1500,
		Retryable:      false,
		PublicMessage:  "tier configuration is inconsistent",
		DetailsAllowed: false,
	},
	CodeInternal: {
		HTTPStatus:     http.StatusInternalServerError,
		ErrNo:          1501,
		Retryable:      true,
		PublicMessage:  "internal server error",
		DetailsAllowed: false,
	},
	// Repository failures surface as plain 500s; the distinct errNo keeps
	// them tellable apart from internal errors without implying the client
	// should retry against a different status class.
	CodeDependency: {
		HTTPStatus:     http.StatusInternalServerError,
		ErrNo:          1503,
		Retryable:      false,
		PublicMessage:  "dependency failure",
		DetailsAllowed: true,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
