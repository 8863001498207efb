package models

import (
	"errors"
)

var (
	ErrBankslipNotFound = errors.New("models: bankslip not found")
	ErrInvalidBankslip  = errors.New("models: invalid bankslip")
	ErrInvalidState     = errors.New("models: bankslip is in a terminal status")
	ErrMissingBody      = errors.New("models: request body not provided")
)
