package services

import "errors"

var (
	ErrAlertNotFound        = errors.New("alert not found")
	ErrFundNotFound         = errors.New("fund not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlreadyApplied       = errors.New("volunteer application already exists")
	ErrSignatureMismatch    = errors.New("payment signature mismatch")
)
