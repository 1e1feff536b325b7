package domain

import (
	"errors"
)

const (
	RoleUser = "user"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageServerError          = "Server error"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "token invalid or expired"
	MessageHealthy              = "Wine Diary API is running"

	ErrParseUUID            = errors.New("failed to parse UUID")
	ErrTokenNotFound        = errors.New("token not found")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrTokenExpired         = errors.New("token expired")
	ErrStorageNotConfigured = errors.New("object storage is not configured")
	ErrInvalidImageFormat   = errors.New("invalid image format")
)
