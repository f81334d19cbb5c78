package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tradeboard/internal/middleware"
	"tradeboard/internal/service"
)

type ListingHandler struct {
	listings *service.ListingService
	posts    *service.PostService
}

type CreateAnnouncementReq struct {
	Category string `json:"category" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
}

type CreateListingReq struct {
	Category    string `json:"category" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func NewListingHandler(listings *service.ListingService, posts *service.PostService) *ListingHandler {
	return &ListingHandler{listings: listings, posts: posts}
}

// Home shows per-category counts for every kind.
func (h *ListingHandler) Home(c *gin.Context) {
	counts := gin.H{}
	for _, kind := range []string{service.KindAnnouncements, service.KindMarketplace, service.KindServices} {
		kindCounts, err := h.listings.CategoryCounts(kind)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "counts failed"})
			return
		}
		counts[kind] = kindCounts
	}
	c.JSON(http.StatusOK, gin.H{"category_counts": counts})
}

func (h *ListingHandler) Marketplace(c *gin.Context) {
	h.kindCounts(c, service.KindMarketplace)
}

func (h *ListingHandler) Services(c *gin.Context) {
	h.kindCounts(c, service.KindServices)
}

func (h *ListingHandler) kindCounts(c *gin.Context, kind string) {
	counts, err := h.listings.CategoryCounts(kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "counts failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category_counts": gin.H{kind: counts}})
}

func (h *ListingHandler) Category(c *gin.Context) {
	kind := c.Param("kind")
	category := c.Param("category")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	// Clamp here too, so the echoed page matches the one actually served.
	if page < 1 {
		page = 1
	}

	posts, pages, err := h.listings.Category(kind, category, page)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post_type":   kind,
		"category":    category,
		"page":        page,
		"total_pages": pages,
		"posts":       posts,
	})
}

func (h *ListingHandler) Search(c *gin.Context) {
	query := c.Query("query")
	kind := c.Query("type")

	posts, err := h.listings.Search(query, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":     query,
		"post_type": kind,
		"posts":     posts,
	})
}

func (h *ListingHandler) PostDetail(c *gin.Context) {
	kind := c.Param("kind")
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	detail, err := h.posts.Detail(kind, postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "detail failed"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ListingHandler) CreateAnnouncement(c *gin.Context) {
	userIDAny, _ := c.Get(middleware.ContextUserIDKey)
	userID := userIDAny.(uint64)

	var req CreateAnnouncementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	a, err := h.posts.CreateAnnouncement(userID, req.Category, req.Title, req.Content)
	if err != nil {
		writeCreateErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": a.ID})
}

func (h *ListingHandler) CreateMarketplace(c *gin.Context) {
	userIDAny, _ := c.Get(middleware.ContextUserIDKey)
	userID := userIDAny.(uint64)

	var req CreateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	m, err := h.posts.CreateMarketplace(userID, req.Category, req.Title, req.Description, req.Price)
	if err != nil {
		writeCreateErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": m.ID})
}

func (h *ListingHandler) CreateService(c *gin.Context) {
	userIDAny, _ := c.Get(middleware.ContextUserIDKey)
	userID := userIDAny.(uint64)

	var req CreateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	sv, err := h.posts.CreateService(userID, req.Category, req.Title, req.Description, req.Price)
	if err != nil {
		writeCreateErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": sv.ID})
}

func writeCreateErr(c *gin.Context, err error) {
	if errors.Is(err, service.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "create failed"})
}
