package handlers

import (
	"errors"
	"net/http"

	"ding-dong-api/middleware"
	"ding-dong-api/models"
	"ding-dong-api/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionTriple is the response shape shared by register, login and renew.
func sessionTriple(user *models.User) gin.H {
	return gin.H{
		"session_token":      user.SessionToken,
		"session_expiration": user.SessionExpiration,
		"update_token":       user.UpdateToken,
	}
}

// Register creates an account and returns its freshly issued session triple.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid name, username, email or password."})
		return
	}
	if req.Name == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid name, username, email or password."})
		return
	}

	user, err := h.Sessions.Register(req.Name, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists."})
			return
		}
		h.Log.Error("register failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user."})
		return
	}

	c.JSON(http.StatusOK, sessionTriple(user))
}

// Login verifies credentials and rotates the session so the caller always
// receives a live token pair.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password."})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password."})
		return
	}

	user, ok, err := h.Sessions.VerifyCredentials(req.Email, req.Password)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		h.Log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify credentials."})
		return
	}
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password."})
		return
	}

	if err := h.Sessions.StartSession(user); err != nil {
		h.Log.Error("session start failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session."})
		return
	}

	c.JSON(http.StatusOK, sessionTriple(user))
}

// RenewSession exchanges the bearer update token for a rotated triple.
func (h *Handler) RenewSession(c *gin.Context) {
	updateToken, err := middleware.ExtractBearer(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Sessions.Renew(updateToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid update token."})
			return
		}
		h.Log.Error("session renew failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to renew session."})
		return
	}

	c.JSON(http.StatusOK, sessionTriple(user))
}

// Secret is the session-protected smoke-test endpoint.
func (h *Handler) Secret(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You have successfully implemented sessions"})
}
