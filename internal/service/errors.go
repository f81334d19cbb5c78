package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidChallenge   = errors.New("invalid captcha")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrValidation         = errors.New("validation failed")
)
