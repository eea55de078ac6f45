package handlers

import (
	"errors"
	"net/http"

	"ding-dong-api/dao"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateRestaurantRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.Store.GetAllRestaurants()
	if err != nil {
		h.Log.Error("list restaurants failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to list restaurants.")
		return
	}
	success(c, restaurants)
}

func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Missing name.")
		return
	}
	restaurant, err := h.Store.CreateRestaurant(req.Name)
	if err != nil {
		h.Log.Error("restaurant create failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to create restaurant.")
		return
	}
	success(c, restaurant)
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.Store.GetRestaurant(id)
	if err != nil {
		failure(c, http.StatusNotFound, "Restaurant not found.")
		return
	}
	success(c, restaurant)
}

func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch dao.RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	restaurant, err := h.Store.UpdateRestaurant(id, patch)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Restaurant not found.")
			return
		}
		h.Log.Error("restaurant update failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to update restaurant.")
		return
	}
	success(c, restaurant)
}

// DeleteRestaurant cascades to the menu and reviews; see dao.
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.Store.DeleteRestaurant(id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Restaurant not found.")
			return
		}
		h.Log.Error("restaurant delete failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to delete restaurant.")
		return
	}
	success(c, restaurant)
}
