// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
)

var (
	// ErrUnknownFunction is returned when calling a runtime API the runtime does not export.
	ErrUnknownFunction = errors.New("unknown runtime function")
	// ErrNilStorage is returned when calling the runtime before setting its context storage.
	ErrNilStorage = errors.New("runtime context storage is not set")
	// ErrUnknownPallet is returned when dispatching a call to a pallet not in the runtime.
	ErrUnknownPallet = errors.New("unknown pallet")
	// ErrUnknownMethod is returned when dispatching a call to a method the pallet does not have.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrBlockNotInitialised is returned when applying or finalising before initialising a block.
	ErrBlockNotInitialised = errors.New("block is not initialised")
	// ErrMultipleSeals is returned when executing a block carrying more than one seal.
	ErrMultipleSeals = errors.New("block has multiple seals")
	// ErrExtrinsicsRootMismatch is returned when the executed extrinsics root differs from the header.
	ErrExtrinsicsRootMismatch = errors.New("extrinsics root mismatch")
	// ErrStateRootMismatch is returned when the executed state root differs from the header.
	ErrStateRootMismatch = errors.New("state root mismatch")
)

// InherentError is the error of an inherent check or of a failed mandatory
// inherent dispatch. A fatal inherent error makes the block invalid.
type InherentError struct {
	Identifier types.InherentIdentifier
	Fatal      bool
	Err        error
}

// NewFatalInherentError returns a fatal inherent error
func NewFatalInherentError(id types.InherentIdentifier, err error) *InherentError {
	return &InherentError{Identifier: id, Fatal: true, Err: err}
}

func (e *InherentError) Error() string {
	kind := "non fatal"
	if e.Fatal {
		kind = "fatal"
	}
	return fmt.Sprintf("%s inherent error for %s: %s", kind, e.Identifier, e.Err)
}

// Unwrap returns the wrapped error
func (e *InherentError) Unwrap() error {
	return e.Err
}

// IsFatalInherentError returns true if the error chain contains a fatal inherent error.
func IsFatalInherentError(err error) bool {
	var inherentErr *InherentError
	return errors.As(err, &inherentErr) && inherentErr.Fatal
}

// DispatchError is the error of a call dispatch
type DispatchError struct {
	Pallet string
	Method string
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatching %s.%s: %s", e.Pallet, e.Method, e.Err)
}

// Unwrap returns the wrapped error
func (e *DispatchError) Unwrap() error {
	return e.Err
}
