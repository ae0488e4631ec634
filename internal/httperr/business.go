package httperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation Kind = "validation_error"
	KindConflict   Kind = "conflict_error"
	KindNotFound   Kind = "not_found"
)

type BusinessError struct {
	Kind   Kind
	Code   string
	Detail string
}

func (e BusinessError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Code + ": " + e.Detail
}

func Validation(code, detail string) error {
	return BusinessError{Kind: KindValidation, Code: code, Detail: detail}
}

func Validationf(code, format string, args ...any) error {
	return BusinessError{Kind: KindValidation, Code: code, Detail: fmt.Sprintf(format, args...)}
}

func Conflict(code, detail string) error {
	return BusinessError{Kind: KindConflict, Code: code, Detail: detail}
}

func NotFoundErr(code, detail string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Detail: detail}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
