// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ResourceError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailure     = ResourceError("node allocation failed")
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationFile     = InvalidError("configuration file is invalid")
	ErrCountMismatch         = InvalidError("node count does not match tree count")
	ErrDatabaseOpenFailed    = ProcessError("database open failed")
	ErrHeightMismatch        = InvalidError("cached height is incorrect")
	ErrInvalidKey            = InvalidError("key cannot be parsed")
	ErrInvalidKeyType        = InvalidError("key type is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidOperation      = InvalidError("operation is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingComparator     = InvalidError("comparator is required for keys without natural ordering")
	ErrMissingKey            = InvalidError("operation requires a key")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrOrderViolation        = InvalidError("search tree order violated")
	ErrRandomRangeTooSmall   = InvalidError("random range is smaller than random count")
	ErrUnbalanced            = InvalidError("balance factor out of range")
	ErrUnsupportedSourceType = InvalidError("leveldb source requires bytes keys")
	ErrWorkloadCheckFailed   = ProcessError("tree check failed during workload")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e ResourceError) Error() string { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrResource(e error) bool { var t ResourceError; return errors.As(e, &t) }
