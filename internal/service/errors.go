package service

import "errors"

var (
	// ErrInvalidStatus is returned when a status transition names a value
	// outside the allowed alert lifecycle.
	ErrInvalidStatus = errors.New("status must be one of [active help_requested dismissed]")

	// ErrAlertNotFound is returned when the target alert does not exist.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrSMSUnavailable is returned when the messaging client was never initialized.
	ErrSMSUnavailable = errors.New("sms client not initialized")
)
