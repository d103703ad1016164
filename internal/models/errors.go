package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Resource errors that the database callbacks translate constraint
// violations into.
var (
	ErrCategoryNameNotUnique     = errors.New("the category name must be unique")
	ErrEnvelopeNameNotUnique     = errors.New("the envelope name must be unique per category")
	ErrAccountNameNotUnique      = errors.New("the account name must be unique")
	ErrTransactionAlreadySeen    = errors.New("this transaction has already been imported")
	ErrEnvelopeTargetNegative    = errors.New("the target amount of an envelope must not be negative")
	ErrTransferAmountNotPositive = errors.New("the amount of a transfer must be positive")
	ErrTransferSameEnvelope      = errors.New("a transfer needs two different envelopes")
	ErrMatchRuleMatchEmpty       = errors.New("the match of a match rule must not be empty")
)
