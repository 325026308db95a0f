package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Categories. Every error returned by the store, the repositories and the services
// wraps exactly one of them so callers can pick a 400, 404 or 409 style answer.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrIntegrity    = errors.New("integrity violation")
	ErrStoreCorrupt = errors.New("store corrupt")
)

// Storage layer
var (
	ErrElementNotFound        = fmt.Errorf("element %w", ErrNotFound)
	ErrAlreadyExists          = fmt.Errorf("%w: element already exists", ErrConflict)
	ErrConcurrentModification = fmt.Errorf("%w: data file was modified by another writer", ErrConflict)
	ErrUnknownKind            = fmt.Errorf("%w: unknown element kind", ErrValidation)
	ErrMissingID              = fmt.Errorf("%w: element has no id attribute", ErrValidation)
)

// Users
var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrUserAlreadyExists  = fmt.Errorf("%w: user id already taken", ErrConflict)
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrInvalidUser        = fmt.Errorf("%w: invalid user", ErrValidation)
)

// Contacts
var (
	ErrContactNotFound      = fmt.Errorf("contact %w", ErrNotFound)
	ErrContactAlreadyExists = fmt.Errorf("%w: contact already exists", ErrConflict)
	ErrSelfContact          = fmt.Errorf("%w: a user cannot add themselves as contact", ErrValidation)
	ErrInvalidContact       = fmt.Errorf("%w: invalid contact", ErrValidation)
)

// Groups
var (
	ErrGroupNotFound        = fmt.Errorf("group %w", ErrNotFound)
	ErrGroupAlreadyExists   = fmt.Errorf("%w: group id already taken", ErrConflict)
	ErrInvalidGroup         = fmt.Errorf("%w: invalid group", ErrValidation)
	ErrMemberNotFound       = fmt.Errorf("group member %w", ErrNotFound)
	ErrMemberAlreadyInGroup = fmt.Errorf("%w: user is already a member of the group", ErrConflict)
	ErrNotGroupAdmin        = fmt.Errorf("%w: only a group admin can do this", ErrIntegrity)
	ErrLastGroupMember      = fmt.Errorf("%w: a group must keep at least one member", ErrIntegrity)
	ErrLastGroupAdmin       = fmt.Errorf("%w: a group with members must keep an admin", ErrIntegrity)
)

// Messages
var (
	ErrMessageNotFound         = fmt.Errorf("message %w", ErrNotFound)
	ErrSenderNotFound          = fmt.Errorf("sender %w", ErrNotFound)
	ErrRecipientNotFound       = fmt.Errorf("recipient %w", ErrNotFound)
	ErrMissingContact          = fmt.Errorf("%w: sender and recipient are not contacts", ErrIntegrity)
	ErrNotGroupMember          = fmt.Errorf("%w: user is not a member of the group", ErrIntegrity)
	ErrNotAddressee            = fmt.Errorf("%w: message is not addressed to this user", ErrIntegrity)
	ErrNotSender               = fmt.Errorf("%w: only the sender can do this", ErrIntegrity)
	ErrEmptyContent            = fmt.Errorf("%w: message content is empty", ErrValidation)
	ErrContentTooLong          = fmt.Errorf("%w: message content is too long", ErrValidation)
	ErrUnstorableContent       = fmt.Errorf("%w: message content holds characters that cannot be stored in XML", ErrValidation)
	ErrInvalidMessageType      = fmt.Errorf("%w: unknown message type", ErrValidation)
	ErrInvalidStatusTransition = fmt.Errorf("%w: illegal message status transition", ErrConflict)
	ErrEmptyQuery              = fmt.Errorf("%w: search query is empty", ErrValidation)
)

// Moderation
var (
	ErrEmptyWords = fmt.Errorf("no words have been found")
)

// StoreCorruptError reports a data file that exists but cannot be used: either it is
// not well-formed XML or it already violates the schema. It is never repaired.
type StoreCorruptError struct {
	Path string
	Err  error
}

func (e *StoreCorruptError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreCorrupt, e.Path, e.Err)
}

func (e *StoreCorruptError) Unwrap() error { return e.Err }

func (e *StoreCorruptError) Is(target error) bool { return target == ErrStoreCorrupt }

// SchemaError lists every schema violation found in a document.
// Error() only surfaces the first one.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	switch len(e.Violations) {
	case 0:
		return "schema validation failed"
	case 1:
		return "schema validation failed: " + e.Violations[0]
	default:
		return fmt.Sprintf("schema validation failed: %s (and %d more)", e.Violations[0], len(e.Violations)-1)
	}
}

func (e *SchemaError) Is(target error) bool { return target == ErrValidation }

// Summary joins all violations, one per line.
func (e *SchemaError) Summary() string {
	return strings.Join(e.Violations, "\n")
}
