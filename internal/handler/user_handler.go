package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradeboard/internal/middleware"
	"tradeboard/internal/service"
)

type UserHandler struct {
	svc     *service.UserService
	captcha *service.CaptchaService
}

type RegisterReq struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginReq struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	CaptchaID string `json:"captcha_id" binding:"required"`
	Captcha   string `json:"captcha" binding:"required"`
}

func NewUserHandler(svc *service.UserService, captcha *service.CaptchaService) *UserHandler {
	return &UserHandler{svc: svc, captcha: captcha}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Register(req.Username, req.Password, req.ConfirmPassword); err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "register failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Captcha issues a fresh challenge; the login form fetches one before every
// attempt.
func (h *UserHandler) Captcha(c *gin.Context) {
	ch, err := h.captcha.Issue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "captcha failed"})
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), req.Username, req.Password, req.CaptchaID, req.Captcha)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidChallenge), errors.Is(err, service.ErrInvalidCredentials):
			// Both failures consume the challenge; hand the client a
			// fresh one for the retry.
			h.failWithFreshChallenge(c, err.Error())
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *UserHandler) failWithFreshChallenge(c *gin.Context, msg string) {
	ch, err := h.captcha.Issue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "captcha failed"})
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{
		"msg":           msg,
		"captcha_id":    ch.ID,
		"captcha_image": ch.ImagePath,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}

	if err := h.svc.Logout(c.Request.Context(), userIDAny.(uint64)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *UserHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	pair, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pair)
}
