// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrEmptyStack             = EmptyError("cannot pop from empty stack")
	ErrEmptyTree              = EmptyError("cannot find extremity of an empty tree")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidValueType       = InvalidError("value type must be int or string")
	ErrKeyRangeTooSmall       = InvalidError("key range must be positive")
	ErrMissingReporter        = InvalidError("reporter is required")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrNotFoundOperation      = NotFoundError("operation is not recognised")
	ErrNotFoundTraverseOrder  = NotFoundError("traverse order is not recognised")
	ErrOperationCountTooSmall = InvalidError("operation count must be positive")
	ErrOperationMismatch      = ProcessError("tree does not match the reference multiset")
	ErrRequiredConfigFile     = InvalidError("config file is required")
	ErrWorkerCountTooSmall    = InvalidError("worker count must be positive")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
