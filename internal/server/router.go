package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sakialabs/RiseUp/internal/middleware"
	"github.com/sakialabs/RiseUp/internal/util"
)

var _ middleware.UserFinder = (*Store)(nil)

// NewRouter 组装契约桩服务器的全部路由，路径与生产后端保持一致
func NewRouter(store *Store, frontendURL string) *gin.Engine {
	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("future_date", util.ValidateFutureDate)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(middleware.NewErrorMonitor()))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{frontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
		"X-Request-ID",
	}
	r.Use(cors.New(corsConfig))

	authHandler := NewAuthHandler(store)
	feedHandler := NewFeedHandler(store)
	reactionHandler := NewReactionHandler(store)
	eventHandler := NewEventHandler(store)
	postHandler := NewPostHandler(store)
	profileHandler := NewProfileHandler(store)
	unionizedHandler := NewUnionizedHandler(store)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// 需要认证的路由
		authorized := api.Group("/")
		authorized.Use(middleware.AuthMiddleware(store))
		{
			authorized.POST("/auth/logout", authHandler.Logout)

			authorized.GET("/feed", feedHandler.Get)

			authorized.POST("/reactions", reactionHandler.Add)
			authorized.DELETE("/reactions", reactionHandler.Remove)

			authorized.POST("/events", eventHandler.Create)
			authorized.POST("/events/:id/join", eventHandler.Join)
			authorized.DELETE("/events/:id/leave", eventHandler.Leave)

			authorized.GET("/profiles/me", profileHandler.GetMe)
			authorized.PATCH("/profiles/me", profileHandler.UpdateMe)
			authorized.GET("/profiles/me/attending", profileHandler.Attending)

			authorized.POST("/posts", postHandler.Create)
		}

		api.GET("/events", eventHandler.List)
		api.GET("/events/map", eventHandler.ListMap)
		api.GET("/events/:id", eventHandler.Get)
		api.GET("/events/:id/attendees", eventHandler.Attendees)

		api.GET("/posts/:id", postHandler.Get)

		api.GET("/reactions/events/:id", reactionHandler.EventReactions)
		api.GET("/reactions/posts/:id", reactionHandler.PostReactions)

		api.GET("/profiles/:id", profileHandler.Get)
		api.GET("/profiles/:id/events", profileHandler.Events)

		api.GET("/unionized", unionizedHandler.List)
		api.GET("/unionized/:id", unionizedHandler.Get)
		api.POST("/unionized", unionizedHandler.Create)
	}

	return r
}
