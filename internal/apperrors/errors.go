// Package apperrors defines the error kinds shared by the storage, service and
// HTTP layers. Every error that crosses a layer boundary resolves to exactly one
// Kind, so callers branch on a closed set instead of inspecting driver errors.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the purpose of deciding how to surface it.
type Kind int

const (
	// KindInternal is any unexpected failure (persistence, transaction, programming error).
	KindInternal Kind = iota
	// KindNotFound means an entity identifier did not resolve.
	KindNotFound
	// KindValidation means the input was malformed or violated a cardinality rule.
	KindValidation
	// KindConflict means the store rejected the write because of a constraint.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Base kind sentinels. Concrete errors wrap one of these.
var (
	// ErrNotFound is the root of every "entity does not exist" error.
	ErrNotFound = errors.New("not found")

	// ErrValidation is the root of every input validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is the root of every constraint violation reported by the store.
	ErrConflict = errors.New("conflict")
)

// Entity names used in NotFoundError messages.
const (
	EntityTrade = "Trade"
	EntityGroup = "Group"
)

// Domain entity errors.
var (
	// ErrTradeNotFound indicates that a trade with the given UUID does not exist.
	ErrTradeNotFound = fmt.Errorf("trade %w", ErrNotFound)

	// ErrGroupNotFound indicates that a group with the given UUID does not exist.
	ErrGroupNotFound = fmt.Errorf("group %w", ErrNotFound)
)

// Business logic errors.
var (
	// ErrEmptyGroup is returned by the group calculator when called without members.
	// Callers must guarantee at least one member; seeing this error is a bug.
	ErrEmptyGroup = errors.New("group must have at least one trade")

	// ErrTradesNotFound indicates that some of the referenced trade UUIDs do not exist.
	ErrTradesNotFound = errors.New("one or more trade UUIDs not found")
)

// Operation failure errors, used as the top-level message of 500 responses.
var (
	ErrFailedToRetrieveTrades = errors.New("failed to retrieve trades")
	ErrFailedToRetrieveTrade  = errors.New("failed to retrieve trade")
	ErrFailedToCreateTrade    = errors.New("failed to create trade")
	ErrFailedToUpdateTrade    = errors.New("failed to update trade")
	ErrFailedToDeleteTrade    = errors.New("failed to delete trade")

	ErrFailedToRetrieveGroups = errors.New("failed to retrieve groups")
	ErrFailedToRetrieveGroup  = errors.New("failed to retrieve group")
	ErrFailedToCreateGroup    = errors.New("failed to create group")
	ErrFailedToUpdateGroup    = errors.New("failed to update group")
	ErrFailedToDeleteGroup    = errors.New("failed to delete group")

	ErrFailedToCreateStrategy = errors.New("failed to create strategy")

	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)

// NotFoundError reports that an entity identifier did not resolve.
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFound returns a NotFoundError for the given entity and identifier.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with UUID '%s' not found", e.Entity, e.ID)
}

// Is lets errors.Is match both ErrNotFound and the entity specific sentinel.
func (e *NotFoundError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return true
	case ErrTradeNotFound:
		return e.Entity == EntityTrade
	case ErrGroupNotFound:
		return e.Entity == EntityGroup
	}
	return false
}

// ConflictError wraps a store constraint failure.
type ConflictError struct {
	Op  string
	Err error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConflictError) Unwrap() []error {
	return []error{ErrConflict, e.Err}
}

// KindOf resolves err to its Kind. A nil error is reported as KindInternal;
// callers are expected to check for nil first.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}
