package handlers

import (
	"errors"
	"net/http"

	"ding-dong-api/dao"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateDriverRequest struct {
	Name               string `json:"name" binding:"required"`
	LicensePlateNumber string `json:"license_plate_number" binding:"required"`
}

func (h *Handler) GetDriver(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	driver, err := h.Store.GetDriver(id)
	if err != nil {
		failure(c, http.StatusNotFound, "Driver does not exist.")
		return
	}
	success(c, driver)
}

func (h *Handler) GetDriverOfOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	driver, err := h.Store.GetDriverOfOrder(orderID)
	if err != nil {
		failure(c, http.StatusNotFound, "Order not found.")
		return
	}
	success(c, driver)
}

func (h *Handler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Missing name or license_plate_number.")
		return
	}
	driver, err := h.Store.CreateDriver(req.Name, req.LicensePlateNumber)
	if err != nil {
		h.Log.Error("driver create failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to create driver.")
		return
	}
	success(c, driver)
}

func (h *Handler) DeleteDriver(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	driver, err := h.Store.DeleteDriver(id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			failure(c, http.StatusNotFound, "Driver does not exist.")
			return
		}
		h.Log.Error("driver delete failed", zap.Error(err))
		failure(c, http.StatusInternalServerError, "Failed to delete driver.")
		return
	}
	success(c, driver)
}
