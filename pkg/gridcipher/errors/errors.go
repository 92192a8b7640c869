package errors

import "errors"

var (
	// Key errors 🔑
	ErrInvalidDimension = errors.New("❌ invalid grid dimension")

	// Block errors 🧱
	ErrMalformedBlock = errors.New("❌ malformed block")

	// Chain errors ⛓️
	ErrUnknownOperation = errors.New("❌ unknown operation")
	ErrNotReversible    = errors.New("❌ operation is not reversible")
	ErrChainTooLong     = errors.New("❌ operation chain too long")
)
