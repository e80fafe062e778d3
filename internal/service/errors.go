package service

import "errors"

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrWrongPassword        = errors.New("wrong password")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")
	ErrTokenCreationFailed  = errors.New("token creation failed")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
