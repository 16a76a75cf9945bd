package entity

import "errors"

var (
	ErrPostNotFound        = errors.New("post not found")
	ErrDuplicateSlug       = errors.New("post slug already exists")
	ErrSelectionFailure    = errors.New("featured posts selection failed")
	ErrUnknownRepository   = errors.New("repository is not available for release downloads")
	ErrReleaseUnavailable  = errors.New("latest release is unavailable")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAdminLoginDisabled  = errors.New("admin login is not configured")
	ErrNotionNotConfigured = errors.New("notion integration is not configured")
)
