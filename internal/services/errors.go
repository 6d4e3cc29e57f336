package services

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetExists        = errors.New("budget already exists for category")
	ErrUnknownAccount      = errors.New("transaction references an unknown account")
	ErrEmptyUpdate         = errors.New("update contains no fields")
	ErrInvalidQuery        = errors.New("invalid transaction query")
	ErrUserNotFound        = errors.New("user not found")
)
