// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type NotFoundError GenericError
type OverflowError GenericError
type PrecisionError GenericError
type ProcessError GenericError
type RecordError GenericError
type ValidationError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrAmountOverflow           = OverflowError("amount exceeds 64 bit range")
	ErrAmountPrecision          = PrecisionError("amount has more than 8 decimal places")
	ErrBroadcastFailed          = ProcessError("broadcast failed")
	ErrCodecMismatch            = ValidationError("value type does not match field codec")
	ErrDuplicateField           = ValidationError("duplicate field")
	ErrEmptyAmount              = ValidationError("amount is empty")
	ErrFractionalAmount         = ValidationError("fractional amount for indivisible property")
	ErrInvalidAction            = ValidationError("invalid distributed exchange action")
	ErrInvalidAddress           = ValidationError("invalid address")
	ErrInvalidAmount            = ValidationError("invalid amount")
	ErrInvalidBonus             = ValidationError("bonus percentage must not be negative")
	ErrInvalidBool              = RecordError("boolean byte is not 0 or 1")
	ErrInvalidChain             = ValidationError("invalid chain")
	ErrInvalidCodec             = ValidationError("invalid codec")
	ErrInvalidConfiguration     = ValidationError("configuration file must return a table")
	ErrInvalidDeadline          = ValidationError("deadline must not be negative")
	ErrInvalidDirectory         = ValidationError("path is not a directory")
	ErrInvalidEcosystem         = ValidationError("invalid ecosystem")
	ErrInvalidHex               = RecordError("invalid hex payload")
	ErrInvalidHost              = ValidationError("invalid host name or IP address")
	ErrInvalidKind              = ValidationError("invalid transaction kind")
	ErrInvalidLoggerChannel     = ProcessError("invalid logger channel")
	ErrInvalidPaymentWindow     = ValidationError("payment window must be at least one block")
	ErrInvalidPortNumber        = ValidationError("invalid port number")
	ErrInvalidPropertyId        = ValidationError("property identifier must be positive")
	ErrInvalidPropertyType      = ValidationError("invalid property type")
	ErrInvalidRateLimit         = ValidationError("rate limit must be positive")
	ErrInvalidStructPointer     = ValidationError("configuration must be a pointer to a struct")
	ErrInvalidTransactionId     = ProcessError("invalid transaction id from server")
	ErrMismatchedEcosystem      = ValidationError("properties are in different ecosystems")
	ErrMissingConnection        = NotFoundError("no rpc connection configured")
	ErrMissingField             = ValidationError("missing field value")
	ErrNegativeAmount           = ValidationError("amount must not be negative")
	ErrRateLimiting             = ProcessError("rate limiting")
	ErrSameProperty             = ValidationError("property for sale and property desired are the same")
	ErrStringContainsNul        = ValidationError("string contains NUL")
	ErrStringInvalidUTF8        = ValidationError("string is not valid UTF-8")
	ErrStringMissingTerminator  = RecordError("string is missing NUL terminator")
	ErrStringTooLong            = ValidationError("string is too long")
	ErrTrailingData             = RecordError("payload has trailing data")
	ErrTruncatedPayload         = RecordError("payload is truncated")
	ErrUnexpectedField          = ValidationError("value for a field not in schema")
	ErrUnknownMessageType       = RecordError("unknown version and message type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e OverflowError) Error() string   { return string(e) }
func (e PrecisionError) Error() string  { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }
func (e ValidationError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool   { _, ok := e.(OverflowError); return ok }
func IsErrPrecision(e error) bool  { _, ok := e.(PrecisionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
func IsErrValidation(e error) bool { _, ok := e.(ValidationError); return ok }
