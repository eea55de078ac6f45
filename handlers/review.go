package handlers

import (
	"errors"
	"net/http"

	"ding-dong-api/dao"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateReviewRequest struct {
	UserID  *uint  `json:"user_id" binding:"required"`
	Rating  *int   `json:"rating" binding:"required"`
	Content string `json:"content"`
}

func (h *Handler) GetReviewsByUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.Store.GetReviewsByUser(userID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "User does not exist.")
			return
		}
		h.Log.Error("list user reviews failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to list reviews.")
		return
	}
	success(c, reviews)
}

func (h *Handler) GetReviewsOfRestaurant(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.Store.GetReviewsOfRestaurant(restaurantID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Restaurant does not exist.")
			return
		}
		h.Log.Error("list restaurant reviews failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to list reviews.")
		return
	}
	success(c, reviews)
}

// CreateReview posts a review; the restaurant average moves with it.
func (h *Handler) CreateReview(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Missing user_id or rating.")
		return
	}
	review, err := h.Store.CreateReview(restaurantID, *req.UserID, *req.Rating, req.Content)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "User or restaurant not found.")
			return
		}
		h.Log.Error("review create failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to create review.")
		return
	}
	success(c, review)
}

func (h *Handler) GetReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.Store.GetReview(id)
	if err != nil {
		failure(c, http.StatusNotFound, "Review not found.")
		return
	}
	success(c, review)
}

func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch dao.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	review, err := h.Store.UpdateReview(id, patch)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Review not found.")
			return
		}
		h.Log.Error("review update failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to update review.")
		return
	}
	success(c, review)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.Store.DeleteReview(id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Review not found.")
			return
		}
		h.Log.Error("review delete failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to delete review.")
		return
	}
	success(c, review)
}
