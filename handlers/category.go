package handlers

import (
	"errors"
	"net/http"

	"ding-dong-api/dao"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateCategoryRequest struct {
	Description string `json:"description" binding:"required"`
}

type AddRestaurantRequest struct {
	RestaurantID *uint `json:"restaurant_id" binding:"required"`
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Store.GetAllCategories()
	if err != nil {
		h.Log.Error("list categories failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to list categories.")
		return
	}
	success(c, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Missing description.")
		return
	}
	category, err := h.Store.CreateCategory(req.Description)
	if err != nil {
		h.Log.Error("category create failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to create category.")
		return
	}
	success(c, category)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.Store.GetCategory(id)
	if err != nil {
		failure(c, http.StatusNotFound, "Category not found.")
		return
	}
	success(c, category)
}

// AddRestaurantToCategory links a restaurant; relinking is a no-op.
func (h *Handler) AddRestaurantToCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AddRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Missing restaurant_id.")
		return
	}
	category, err := h.Store.AddRestaurantToCategory(categoryID, *req.RestaurantID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Category or restaurant not found.")
			return
		}
		h.Log.Error("category link failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to add restaurant to category.")
		return
	}
	success(c, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.Store.DeleteCategory(id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Category not found.")
			return
		}
		h.Log.Error("category delete failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to delete category.")
		return
	}
	success(c, category)
}
