package handlers

import (
	"errors"
	"net/http"

	"ding-dong-api/dao"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateDishRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

func (h *Handler) ListDishes(c *gin.Context) {
	dishes, err := h.Store.GetAllDishes()
	if err != nil {
		h.Log.Error("list dishes failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to list dishes.")
		return
	}
	success(c, dishes)
}

func (h *Handler) CreateDish(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Missing name or price.")
		return
	}
	dish, err := h.Store.CreateDish(restaurantID, req.Name, *req.Price)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Restaurant not found.")
			return
		}
		h.Log.Error("dish create failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to create dish.")
		return
	}
	success(c, dish)
}

func (h *Handler) GetDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dish, err := h.Store.GetDish(id)
	if err != nil {
		failure(c, http.StatusNotFound, "Dish not found.")
		return
	}
	success(c, dish)
}

func (h *Handler) UpdateDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch dao.DishPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	dish, err := h.Store.UpdateDish(id, patch)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Dish not found.")
			return
		}
		h.Log.Error("dish update failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to update dish.")
		return
	}
	success(c, dish)
}

func (h *Handler) DeleteDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dish, err := h.Store.DeleteDish(id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Dish not found.")
			return
		}
		h.Log.Error("dish delete failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to delete dish.")
		return
	}
	success(c, dish)
}
