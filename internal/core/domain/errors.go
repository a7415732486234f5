package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input,
	// such as an empty query name or a malformed dataset row.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPhone indicates a phone number from which no valid
	// Irish number could be extracted. Callers leave the phone field
	// empty rather than aborting the record.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrUnsupportedType indicates an unknown input file type.
	// Only csv and xlsx inputs are supported.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrMissingNameColumn indicates the input file has no column
	// holding pharmacy trading names.
	ErrMissingNameColumn = errors.New("no trading name column found")

	// Register Errors.

	// ErrRegisterUnavailable indicates the register site could not be
	// reached or did not render its search page.
	ErrRegisterUnavailable = errors.New("register unavailable")

	// ErrRateLimited indicates a search could not run within its
	// politeness budget.
	ErrRateLimited = errors.New("rate limited")

	// ErrRegisterClosed indicates an operation on a closed register client.
	ErrRegisterClosed = errors.New("register client closed")
)
