package errors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrHoldingNotFound indicates that a holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrCryptoHoldingNotFound indicates that a crypto holding with the given ID does not exist.
	ErrCryptoHoldingNotFound = errors.New("crypto holding not found")

	// ErrSnapshotNotFound indicates that a snapshot group with the given ID does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSnapshotItemNotFound indicates that a snapshot item with the given ID does not exist.
	ErrSnapshotItemNotFound = errors.New("snapshot item not found")

	// ErrLabelNotFound indicates that a label with the given ID does not exist.
	ErrLabelNotFound = errors.New("label not found")

	// ErrRateProviderNotConfigured indicates that no exchange-rate provider
	// settings have been stored yet.
	ErrRateProviderNotConfigured = errors.New("rate provider not configured")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrLabelInUse indicates that a label cannot be removed because at least
	// one holding still references it.
	ErrLabelInUse = errors.New("label is referenced by existing holdings")

	// ErrDuplicateLabel indicates that a label with the same name (compared
	// case-insensitively) already exists in the vocabulary.
	ErrDuplicateLabel = errors.New("label already exists")

	// ErrInvalidLabelKind indicates that the requested vocabulary does not exist.
	ErrInvalidLabelKind = errors.New("invalid label kind")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrEmptySnapshot indicates an attempt to register a snapshot with no items.
	ErrEmptySnapshot = errors.New("snapshot must contain at least one item")
)

// Data integrity errors.
var (
	// ErrDuplicationFailed indicates that duplicating a snapshot group failed
	// after the new group row was created; the compensation delete has run and
	// the whole operation must be treated as failed.
	ErrDuplicationFailed = errors.New("snapshot duplication failed")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)
