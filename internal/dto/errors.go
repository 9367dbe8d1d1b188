package dto

import "errors"

var (
	ErrNotAuthorized   = errors.New("not authorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("invalid request")
	ErrVotingDisabled  = errors.New("voting is not enabled for this party")
	ErrInternalFailure = errors.New("internal failure")
)
