package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrWalletNotFound indicates that a wallet expected to exist for a valid
// owner has not been provisioned yet.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedType indicates an unknown travel or trip type.
var ErrUnsupportedType = errors.New("unsupported type")

// ErrInsufficientFunds indicates that a wallet capacity or balance check
// failed. Recoverable: the caller can top up and retry.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidState indicates an operation attempted on a booking that is not
// in the required status.
var ErrInvalidState = errors.New("invalid state for operation")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller's role does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure after which any partial
// effects have been rolled back.
var ErrInternal = errors.New("internal error")
