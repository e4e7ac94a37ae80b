package entities

import "errors"

// Error taxonomy shared by the repositories and the use cases.
var (
	ErrInvalidOrderType   = errors.New("invalid order type")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrNotFound           = errors.New("not found")
	ErrOwnershipViolation = errors.New("entity belongs to another user")

	// ErrAllocationFailure means the sequence counter could not commit. Nothing was written.
	ErrAllocationFailure = errors.New("could not generate order number")
	// ErrOrderIDConflict means a freshly formatted display ID already exists as a
	// document key, i.e. the counter and the stored orders are out of sync.
	ErrOrderIDConflict = errors.New("order id generation conflict")
	// ErrWriteFailure means a document write failed after a successful allocation.
	// The allocated sequence number is not reclaimed.
	ErrWriteFailure = errors.New("could not save document")
	// ErrQueryFailed is returned by list reads instead of collapsing failures into
	// an empty result.
	ErrQueryFailed = errors.New("query failed")
	// ErrReservedKey means a per-user key falls in the category counter namespace.
	ErrReservedKey = errors.New("key is reserved")
)
