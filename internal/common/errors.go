// Package common defines shared sentinel errors used across the agenda
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrLoginTaken = errors.New("login already taken")

	// Authentication errors. Both mean "no user" to the operator, but the
	// audit log records them differently.
	ErrUnknownLogin  = errors.New("unknown login")
	ErrWrongPassword = errors.New("wrong password")
)
