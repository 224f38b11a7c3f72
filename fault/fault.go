// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressMismatch            = InvalidError("slot address does not match derived address")
	ErrAddressOnCurve             = InvalidError("derived address is a valid curve point")
	ErrAllocationFailed           = ProcessError("allocation failed")
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrBalanceOverflow            = ProcessError("balance overflow")
	ErrCannotDecodeAddress        = InvalidError("cannot decode address")
	ErrCertificateExpired         = InvalidError("certificate has expired")
	ErrCertificateMismatch        = InvalidError("certificate fingerprint does not match")
	ErrCertificateFileExists      = ExistsError("certificate file already exists")
	ErrConfigurationNotTable      = InvalidError("configuration did not return a table")
	ErrDatabaseVersion            = InvalidError("database version is not supported")
	ErrDerivationExhausted        = ProcessError("no valid discriminant for derived address")
	ErrDuplicateSlot              = InvalidError("same slot supplied twice")
	ErrEmptyTransaction           = ProcessError("no transaction in progress")
	ErrExternalWithdrawalDisabled = InvalidError("external withdrawal is disabled")
	ErrInsufficientFunds          = ProcessError("insufficient funds")
	ErrInvalidAddressLength       = LengthError("invalid address length")
	ErrInvalidCertificate         = InvalidError("invalid certificate")
	ErrInvalidChain               = InvalidError("invalid chain")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidCursor              = InvalidError("invalid cursor")
	ErrInvalidDerivationProof     = InvalidError("invalid derivation proof")
	ErrInvalidInstruction         = InvalidError("invalid instruction")
	ErrInvalidIPAddress           = InvalidError("invalid IP address")
	ErrInvalidInstructionSet      = InvalidError("invalid instruction set")
	ErrInvalidKeyFile             = InvalidError("invalid key file")
	ErrInvalidKeyLength           = LengthError("invalid key length")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidModeChange          = InvalidError("invalid mode change")
	ErrInvalidRent                = InvalidError("rent parameters out of range")
	ErrInvalidSignature           = InvalidError("invalid signature")
	ErrInvalidSlotSize            = InvalidError("invalid slot size")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrJournalNotFound            = NotFoundError("journal entry not found")
	ErrKeyFileExists              = ExistsError("key file already exists")
	ErrMalformedRecord            = RecordError("malformed record")
	ErrMalformedSlot              = RecordError("malformed slot")
	ErrMalformedJournal           = RecordError("malformed journal entry")
	ErrMissingParameters          = InvalidError("missing parameters")
	ErrMissingSignature           = InvalidError("missing required signature")
	ErrNonceAlreadyUsed           = InvalidError("nonce already used by signer")
	ErrNotAvailableOnLive         = InvalidError("not available on live chain")
	ErrNotEnoughAccounts          = InvalidError("not enough accounts supplied")
	ErrNotInitialised             = NotFoundError("not initialised")
	ErrRateLimiting               = InvalidError("rate limiting")
	ErrSeedTooLong                = LengthError("derivation seed too long")
	ErrServiceNotReady            = ProcessError("service is not ready")
	ErrSignatureCount             = InvalidError("signature and signer counts differ")
	ErrSlotAlreadyInUse           = ExistsError("slot already in use")
	ErrSlotNotFound               = NotFoundError("slot not found")
	ErrSlotTooSmall               = LengthError("slot too small")
	ErrTooManySeeds               = LengthError("too many derivation seeds")
	ErrTransactionInUse           = ProcessError("transaction already in use")
	ErrUnauthorizedOwner          = InvalidError("slot not owned by authority")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
