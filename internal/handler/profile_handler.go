package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeboard/internal/service"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Detail(c *gin.Context) {
	profile, err := h.svc.Detail(c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "profile failed"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
