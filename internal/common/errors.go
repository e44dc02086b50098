// Package common defines sentinel errors shared by the store, services and
// presentation layers of StockKeeper. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateName     = errors.New("item name already exists")

	// Service-level errors.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Validation errors raised at the input boundary.
	ErrEmptyInput   = errors.New("empty input")
	ErrInvalidInput = errors.New("invalid input")

	// Notification errors.
	ErrEmptyDestination = errors.New("empty destination")
	ErrTransport        = errors.New("transport error")
)
