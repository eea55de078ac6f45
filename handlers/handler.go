package handlers

import (
	"net/http"
	"strconv"

	"ding-dong-api/dao"
	"ding-dong-api/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries the injected collaborators every endpoint needs. There is
// no ambient global state; main wires one of these into the router.
type Handler struct {
	Store    *dao.Store
	Sessions *session.Manager
	Log      *zap.Logger
}

func New(store *dao.Store, sessions *session.Manager, log *zap.Logger) *Handler {
	return &Handler{Store: store, Sessions: sessions, Log: log}
}

// success wraps data in the {"success": true, "data": ...} envelope.
func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// failure wraps an error message in the {"success": false, "error": ...}
// envelope. Not-found paths use 404, validation 400, store faults 500.
func failure(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// pathID parses a numeric path parameter, answering 400 on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		failure(c, http.StatusBadRequest, "Invalid "+name+" in path.")
		return 0, false
	}
	return uint(id), true
}
