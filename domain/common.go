package domain

import (
	"errors"
	"fmt"
	"os"
)

const (
	RoleUser = "user"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID        = errors.New("failed to parse UUID")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrTokenNotFound    = errors.New("failed to token not found")
	ErrTokenInvalid     = errors.New("token invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// StoreError marks an unexpected persistence failure so handlers can map it
// to a 5xx response. Sentinel errors pass through services untouched.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
