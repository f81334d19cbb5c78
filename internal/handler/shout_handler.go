package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tradeboard/internal/middleware"
	"tradeboard/internal/service"
)

type ShoutHandler struct {
	svc *service.ShoutService
}

type CreateShoutReq struct {
	Message string `json:"message" binding:"required"`
}

func NewShoutHandler(svc *service.ShoutService) *ShoutHandler {
	return &ShoutHandler{svc: svc}
}

func (h *ShoutHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	shouts, err := h.svc.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shouts": shouts})
}

func (h *ShoutHandler) Create(c *gin.Context) {
	userIDAny, _ := c.Get(middleware.ContextUserIDKey)
	userID := userIDAny.(uint64)

	var req CreateShoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	shout, err := h.svc.Add(userID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "shout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": shout.ID})
}
