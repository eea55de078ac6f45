package handlers

import (
	"errors"
	"net/http"

	"ding-dong-api/dao"
	"ding-dong-api/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateOrderRequest struct {
	DriverID *uint `json:"driver_id" binding:"required"`
}

type AddDishRequest struct {
	DishID *uint `json:"dish_id" binding:"required"`
}

func (h *Handler) GetOrdersOfUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	orders, err := h.Store.GetOrdersOfUser(userID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "User does not exist.")
			return
		}
		h.Log.Error("list orders failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to list orders.")
		return
	}
	success(c, orders)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	restaurantID, ok := pathID(c, "rid")
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Missing driver_id.")
		return
	}
	order, err := h.Store.CreateOrder(userID, restaurantID, *req.DriverID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "User or restaurant not found.")
			return
		}
		h.Log.Error("order create failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to create order.")
		return
	}
	success(c, order)
}

// AddDishToOrder attaches a dish; the total moves with the attachment.
func (h *Handler) AddDishToOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AddDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Missing dish_id.")
		return
	}
	order, err := h.Store.AddDishToOrder(orderID, *req.DishID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Order or dish not found.")
			return
		}
		h.Log.Error("dish attach failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to add dish to order.")
		return
	}
	success(c, order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.Store.GetOrder(id)
	if err != nil {
		failure(c, http.StatusNotFound, "Order not found.")
		return
	}
	success(c, order)
}

// UpdateOrder applies a merge-patch; a delivered order is immutable.
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch dao.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	order, err := h.Store.UpdateOrder(id, patch)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) || errors.Is(err, statemachine.ErrOrderDelivered) {
			failure(c, http.StatusNotFound, "Order not found or has been delivered.")
			return
		}
		h.Log.Error("order update failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to update order.")
		return
	}
	success(c, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.Store.DeleteOrder(id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Order not found.")
			return
		}
		h.Log.Error("order delete failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	success(c, order)
}
