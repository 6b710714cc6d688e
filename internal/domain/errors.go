package domain

import "errors"

// Errors shared by repositories and services. Service packages define the
// rest of their own failures next to the code that returns them.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyProcessed  = errors.New("already processed")
	ErrItemNotOwned      = errors.New("item not owned")
	ErrInvalidAmount     = errors.New("invalid amount")
)
