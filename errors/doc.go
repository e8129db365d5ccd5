// Package errors provides standardized error handling for the container
// library.
//
// # Error taxonomy
//
// Every capacity or size precondition violation in the containers wraps the
// ErrOutOfRange sentinel. Specific conditions (ErrFull, ErrEmpty,
// ErrIndexOutOfRange, ErrInsufficientSpace, ErrInsufficientItems) wrap it so
// callers can match either the broad class or the exact condition:
//
//	if errors.Is(err, cerrors.ErrOutOfRange) { ... }
//	if errors.Is(err, cerrors.ErrFull) { ... }
//
// # Classification
//
// Errors carry a class (out_of_range, invalid, fatal) via ClassifiedError,
// with component and operation context attached by the Wrap helpers:
//
//	return errors.WrapOutOfRange(errors.ErrFull, "Fifo", "Push", "enqueue element")
//
// Use IsOutOfRange, IsInvalid, and IsFatal to branch on the class without
// inspecting message text.
//
// # Detection before mutation
//
// Container operations classify and return these errors before touching any
// state, so a failed operation never leaves a partial mutation behind. Bulk
// operations in particular are all-or-nothing: the precondition check happens
// before the first element is copied.
package errors
