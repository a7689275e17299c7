// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrInvalidCharacter     = InvalidError("invalid character")
	ErrInvalidLength        = InvalidError("invalid length")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrNotInitialised       = ProcessError("not initialised")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string { return string(e) }
func (e ProcessError) Error() string { return string(e) }
