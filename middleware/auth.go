package middleware

import (
	"errors"
	"net/http"
	"strings"

	"ding-dong-api/models"
	"ding-dong-api/session"

	"github.com/gin-gonic/gin"
)

const userKey = "currentUser"

var (
	ErrMissingAuthHeader = errors.New("Missing authorization header.")
	ErrInvalidAuthHeader = errors.New("Invalid authorization header")
)

// ExtractBearer pulls the bearer token out of the Authorization header.
// The same header carries a session token on protected endpoints and an
// update token on the renew endpoint; both are opaque strings, so
// extraction is shared and validation is the caller's job.
func ExtractBearer(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

// RequireSession validates the bearer session token and stashes the
// authenticated user in the context. Failures are 401 with the bare
// {"error": msg} shape.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractBearer(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		user, ok := sessions.VerifySession(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token."})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// SessionUser returns the user stored by RequireSession.
func SessionUser(c *gin.Context) *models.User {
	val, _ := c.Get(userKey)
	user, _ := val.(*models.User)
	return user
}
