package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidPlaceKind   = errors.New("invalid place kind")
	ErrPendingNotFound    = errors.New("pending action not found or expired")
	ErrUnsupportedAction  = errors.New("unsupported action")
	ErrMediaStorage       = errors.New("media storage error")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrTokenRevoked       = errors.New("token revoked")
)
