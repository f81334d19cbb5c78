package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tradeboard/internal/handler"
	"tradeboard/internal/middleware"
	"tradeboard/internal/service"
)

type Handlers struct {
	User    *handler.UserHandler
	Listing *handler.ListingHandler
	Comment *handler.CommentHandler
	Profile *handler.ProfileHandler
	Shout   *handler.ShoutHandler
}

func InitRouter(h Handlers, tokens service.TokenStore, captchaDir string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Challenge images are plain files; the login page loads them by path.
	r.Static("/static/captchas", captchaDir)

	auth := middleware.AuthMiddleware(tokens)

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", h.User.Register)
		userGroup.GET("/login/captcha", h.User.Captcha)
		userGroup.POST("/login", h.User.Login)
		userGroup.POST("/logout", auth, h.User.Logout)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", h.User.TokenRefresh)
	}

	boardGroup := r.Group("/api")
	{
		boardGroup.GET("/home", h.Listing.Home)
		boardGroup.GET("/marketplace", h.Listing.Marketplace)
		boardGroup.GET("/services", h.Listing.Services)
		boardGroup.GET("/category/:kind/:category", h.Listing.Category)
		boardGroup.GET("/shoutbox", h.Shout.List)
	}

	authGroup := r.Group("/api")
	authGroup.Use(auth)
	{
		authGroup.GET("/search", h.Listing.Search)
		authGroup.GET("/post/:kind/:id", h.Listing.PostDetail)
		authGroup.GET("/profile/:username", h.Profile.Detail)
		authGroup.POST("/announcements", h.Listing.CreateAnnouncement)
		authGroup.POST("/marketplace", h.Listing.CreateMarketplace)
		authGroup.POST("/services", h.Listing.CreateService)
		authGroup.POST("/comments", h.Comment.Create)
		authGroup.GET("/comments", h.Comment.ListForPost)
		authGroup.POST("/shoutbox", h.Shout.Create)
	}

	return r
}
