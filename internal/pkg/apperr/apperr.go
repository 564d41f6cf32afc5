package apperr

import (
	stderrors "errors"
	"net/http"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindForbidden  Kind = "FORBIDDEN"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindInfra      Kind = "INFRA"
	KindInvariant  Kind = "INVARIANT"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Msg != "" {
		return string(e.Kind) + ": " + e.Msg
	}

	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Msg: msg}
}

func Invariant(msg string) error {
	return &Error{Kind: KindInvariant, Msg: msg, Err: errors.New(string(KindInvariant) + ": " + msg)}
}

// Infra keeps an already classified error as is.
func Infra(err error, msg string) error {
	if err == nil {
		return nil
	}

	var ae *Error
	if stderrors.As(err, &ae) {
		return err
	}

	return &Error{Kind: KindInfra, Msg: msg, Err: errors.Wrap(err, msg)}
}

// KindOf treats unclassified errors as infrastructure failures.
func KindOf(err error) Kind {
	var ae *Error
	if stderrors.As(err, &ae) {
		return ae.Kind
	}

	return KindInfra
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
