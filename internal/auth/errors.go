package auth

import "errors"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrWeakSecret    = errors.New("token secret must be at least 32 characters")
	ErrPasswordMatch = errors.New("password does not match")
)
