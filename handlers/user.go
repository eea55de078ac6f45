package handlers

import (
	"errors"
	"net/http"

	"ding-dong-api/dao"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BalanceRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// ListUsers returns every user with nested orders and reviews.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.GetAllUsers()
	if err != nil {
		h.Log.Error("list users failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to list users.")
		return
	}
	success(c, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.Store.GetUser(id)
	if err != nil {
		failure(c, http.StatusNotFound, "User not found.")
		return
	}
	success(c, user)
}

// AddToBalance tops up (or, with a negative amount, draws down) a balance.
// Session-protected.
func (h *Handler) AddToBalance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Missing amount.")
		return
	}
	user, err := h.Store.AddToBalance(id, *req.Amount)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "User not found.")
			return
		}
		h.Log.Error("balance update failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to update balance.")
		return
	}
	success(c, user)
}

// UpdateUser applies a merge-patch over username, balance and password
// digest. Session-protected.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch dao.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	user, err := h.Store.UpdateUser(id, patch)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "User not found.")
			return
		}
		h.Log.Error("user update failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to update user.")
		return
	}
	success(c, user)
}

// DeleteUser removes the account and returns its last serialized state.
// Session-protected.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.Store.DeleteUser(id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "User not found.")
			return
		}
		h.Log.Error("user delete failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to delete user.")
		return
	}
	success(c, user)
}
