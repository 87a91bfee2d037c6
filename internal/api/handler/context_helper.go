package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jashmevada/skill-swap-platform/pkg/response"
)

// MustGetUserID extracts user_id from the gin context.
// Writes a 401 and returns false when the auth middleware did not run.
// Callers should return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts role from the gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetToken extracts the token's jti and expiry from the gin context.
func MustGetToken(c *gin.Context) (jti string, expiresAt time.Time, ok bool) {
	v, exists := c.Get("token_jti")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	jti, sok := v.(string)
	if !sok || jti == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}

	v, exists = c.Get("token_exp")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	expiresAt, tok := v.(time.Time)
	if !tok {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}

	return jti, expiresAt, true
}
