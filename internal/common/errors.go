package common

import (
	"database/sql"
	"errors"
)

var (
	ErrNoRows                = sql.ErrNoRows
	ErrNoRowsAffected        = errors.New("no rows affected")
	ErrValidation            = errors.New("validation failed")
	ErrDataNotFound          = errors.New("data not found")
	ErrInvalidFormatDate     = errors.New("invalid format date")
	ErrDataExist             = errors.New("data exist")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInvalidFingerprint    = errors.New("idempotency key cannot be reused for different requests payload")
	ErrRequestBeingProcessed = errors.New("request with same idempotency key is being processed")
	ErrMissingIdempotencyKey = errors.New("missing idempotency key. this operation requires idempotency key")
	ErrCSVRowIsEmpty         = errors.New("csv row is empty")
	ErrReadRequestBody       = errors.New("failed to read request body")

	ErrCustomerNotFound      = errors.New("customer not found")
	ErrPolicyNotFound        = errors.New("policy not found")
	ErrPolicyNotActive       = errors.New("policy is not active")
	ErrOrderAlreadyExists    = errors.New("order already exists")
	ErrCreditLimitExceeded   = errors.New("credit limit exceeded")
	ErrInvalidAdjustmentType = errors.New("invalid adjustment type")
	ErrInvalidFrequency      = errors.New("invalid policy frequency")
	ErrSettlementFileEmpty   = errors.New("settlement file has no rows")
	ErrSettlementNotFound    = errors.New("settlement file not found")
)
