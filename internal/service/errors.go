package service

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPlanetNotFound    = errors.New("planet not found")
	ErrCharacterNotFound = errors.New("character not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrEmailTaken        = errors.New("user with this email already exists")
	// ErrPasswordTooLong means the password exceeds bcrypt's 72-byte input limit
	ErrPasswordTooLong   = errors.New("password is longer than 72 bytes")
)
