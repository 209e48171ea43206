package utils

import (
	"context"
	"errors"
)

type ContextKey string

const (
	ClaimsKey    ContextKey = "claims"
	TenantIDKey  ContextKey = "tenant_id"
	UserIDKey    ContextKey = "user_id"
	RolesKey     ContextKey = "roles"
	RequestIDKey ContextKey = "request_id"
)

var (
	ErrNoUserInContext   = errors.New("no authenticated user found in context")
	ErrInvalidUserIDType = errors.New("user_id must be a string")
)

// GetUserIDFromContext returns the authenticated user's id copied from the
// gin keys by BaseHandler.RequestCtx.
func GetUserIDFromContext(c context.Context) (string, error) {
	value := c.Value(UserIDKey)
	if value == nil {
		return "", ErrNoUserInContext
	}
	userID, ok := value.(string)
	if !ok {
		return "", ErrInvalidUserIDType
	}
	if userID == "" {
		return "", ErrNoUserInContext
	}
	return userID, nil
}
