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
type LimitError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AccountAlreadyExists         = ExistsError("account already exists")
	AccountNotFound              = NotFoundError("account does not exist")
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadyListed                = ExistsError("that account is already for sale")
	AlreadyVoted                 = ExistsError("you have already voted for this account")
	AmountOverflow               = ProcessError("amount overflow")
	BidNotAccepted               = InvalidError("the bid has not been accepted")
	BidTooHigh                   = InvalidError("you must bid lower than the sale price")
	BidTooLow                    = InvalidError("you must bid higher than the last bidder")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DeferredNotFound             = NotFoundError("deferred action not found")
	DelegationNotFound           = NotFoundError("delegation not found")
	InsufficientDelegation       = ProcessError("insufficient delegated resources")
	InsufficientFunds            = ProcessError("insufficient funds")
	InvalidAmount                = InvalidError("amount is not valid")
	InvalidAuthority             = InvalidError("authority is not valid")
	InvalidCertificate           = InvalidError("invalid certificate")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKey                   = InvalidError("public key is not valid")
	InvalidLoan                  = InvalidError("loan quantities are not valid")
	InvalidPayee                 = InvalidError("the payment account is not valid")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrice                 = InvalidError("sale price is not valid")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidResource              = InvalidError("account name is not valid")
	InvalidScreening             = InvalidError("malformed screening data")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidSuffix                = InvalidError("that is not a valid suffix")
	InvalidSuffixLength          = InvalidError("incorrect custom name length")
	InvalidSymbol                = InvalidError("wrong currency symbol")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	LoanNotFound                 = NotFoundError("no loan to that account")
	LoanRateLimited              = LimitError("loan was refused by the rate limit")
	MalformedMemo                = InvalidError("malformed buy string")
	MessageTooLong               = InvalidError("the message must be <= 100 characters")
	MissingParameters            = InvalidError("missing parameters")
	NoBid                        = InvalidError("there are no bids to accept or reject")
	NotAcceptedBidder            = PermissionError("only the accepted bidder can purchase at the bid price")
	NotAvailableInReadOnlyMode   = ProcessError("not available in read-only mode")
	NotDirectToContract          = InvalidError("transfer must be direct to contract")
	NotInitialised               = NotFoundError("not initialised")
	NotListed                    = NotFoundError("that account is not for sale")
	NotRecord                    = RecordError("not a valid record")
	NotScreened                  = PermissionError("the account has not yet passed screening")
	PermissionNotFound           = NotFoundError("permission does not exist")
	RateLimiting                 = LimitError("rate limiting")
	ReferrerAlreadyExists        = ExistsError("referrer already registered")
	RecordTruncated              = RecordError("record is truncated")
	ScreeningRejected            = PermissionError("the account was rejected by screening")
	StatsNotInitialised          = NotFoundError("stats table is not initialised")
	SymbolMismatch               = ProcessError("amounts have different symbols")
	Unauthorized                 = PermissionError("missing required authority")
	WrongAmount                  = InvalidError("you have not transferred the correct amount")
)

// the error interface methods
func (e GenericError) Error() string    { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LimitError) Error() string      { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool      { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
