package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// circulation preconditions, first failure wins
	ErrStudentNotEligible  = errors.New("student is not eligible to borrow")
	ErrCopyNotAvailable    = errors.New("book copy is not available")
	ErrLoanLimitExceeded   = errors.New("loan limit exceeded")
	ErrNoActiveLoanForCopy = errors.New("no active loan for this copy")

	// state-machine misuse
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyInState    = errors.New("already in requested state")
	ErrInvalidState      = errors.New("fine is already settled")

	ErrRejectReason = errors.New("rejection reason is required")
)
