package generics

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by every error caused by handing the engine
// input that breaks an operation's contract
var ErrPrecondition = errors.New("generics: precondition violated")

// ErrBrokenHierarchy is wrapped by errors where the type graph claims a subtype
// relationship it cannot supply a path for
var ErrBrokenHierarchy = errors.New("generics: broken type hierarchy")

// HierarchyError reports a subtype that does not have a next hop toward the
// supertype it supposedly extends
type HierarchyError struct {
	From   string
	Toward string
}

func (e *HierarchyError) Error() string {
	return fmt.Sprintf("the type %s seems not to normally extend %s", e.From, e.Toward)
}

func (e *HierarchyError) Unwrap() error {
	return ErrBrokenHierarchy
}

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}
