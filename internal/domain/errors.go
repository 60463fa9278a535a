package domain

import (
	"errors"
	"fmt"
)

// Kind classifies recoverable errors returned by the core.
type Kind string

const (
	KindNotFound               Kind = "NOT_FOUND"
	KindInvalidTransition      Kind = "INVALID_TRANSITION"
	KindInsufficientInventory  Kind = "INSUFFICIENT_INVENTORY"
	KindValidation             Kind = "VALIDATION"
	KindConcurrentModification Kind = "CONCURRENT_MODIFICATION"
)

// Sentinels for errors.Is; any *Error of the same kind matches.
var (
	ErrNotFound               = &Error{Kind: KindNotFound}
	ErrInvalidTransition      = &Error{Kind: KindInvalidTransition}
	ErrInsufficientInventory  = &Error{Kind: KindInsufficientInventory}
	ErrValidation             = &Error{Kind: KindValidation}
	ErrConcurrentModification = &Error{Kind: KindConcurrentModification}
)

type Error struct {
	Kind Kind
	Msg  string

	// InvalidTransition
	From Status
	To   Status

	// InsufficientInventory
	Available int
	Required  int
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return e.Msg
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of a core error, or "" for anything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func ConcurrentModificationf(format string, args ...any) error {
	return &Error{Kind: KindConcurrentModification, Msg: fmt.Sprintf(format, args...)}
}

func InvalidTransitionf(from, to Status, format string, args ...any) error {
	return &Error{Kind: KindInvalidTransition, Msg: fmt.Sprintf(format, args...), From: from, To: to}
}

func InsufficientInventory(hospitalID string, group BloodGroup, available, required int) error {
	return &Error{
		Kind:      KindInsufficientInventory,
		Msg:       fmt.Sprintf("hospital %s has %d units of %s available, %d required", hospitalID, available, group, required),
		Available: available,
		Required:  required,
	}
}
