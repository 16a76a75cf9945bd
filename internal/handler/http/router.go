package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jasonzhang/portfolio/internal/handler/http/middleware"
	"github.com/jasonzhang/portfolio/internal/usecase"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	blogHandler    *BlogHandler
	pageHandler    *PageHandler
	releaseHandler *ReleaseHandler
	feedHandler    *FeedHandler
	notionHandler  *NotionHandler
	adminHandler   *AdminHandler
	healthHandler  *HealthHandler
	jwtService     usecase.JWTService
	logger         usecasecontract.IAppLogger
	config         usecasecontract.IConfigProvider
}

func NewRouter(blogUsecase usecasecontract.IBlogUseCase, siteUsecase usecasecontract.ISiteUseCase, releaseUsecase usecasecontract.IReleaseUseCase, notionUsecase usecasecontract.INotionUseCase, adminUsecase usecasecontract.IAdminUseCase, jwtService usecase.JWTService, logger usecasecontract.IAppLogger, config usecasecontract.IConfigProvider, healthChecks map[string]HealthCheck) *Router {
	baseURL := config.GetAppBaseURL()
	return &Router{
		blogHandler:    NewBlogHandler(blogUsecase, siteUsecase, baseURL),
		pageHandler:    NewPageHandler(siteUsecase),
		releaseHandler: NewReleaseHandler(releaseUsecase),
		feedHandler:    NewFeedHandler(blogUsecase, baseURL),
		notionHandler:  NewNotionHandler(notionUsecase),
		adminHandler:   NewAdminHandler(adminUsecase),
		healthHandler:  NewHealthHandler(healthChecks),
		jwtService:     jwtService,
		logger:         logger,
		config:         config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.AccessLog(r.logger))
	router.Use(middleware.Metrics())
	router.Use(cors.New(r.corsConfig()))
	router.Use(middleware.RateLimiter(middleware.NewLimiter(r.config.GetRateLimitPerSecond())))

	router.GET("/healthz", r.healthHandler.HealthzHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/feed.xml", r.feedHandler.RSSHandler)
	router.GET("/sitemap.xml", r.feedHandler.SitemapHandler)

	releases := router.Group("/gh-releases")
	{
		releases.GET("/:repo", r.releaseHandler.ReleasePageHandler)
		releases.GET("/:repo/download", r.releaseHandler.DownloadHandler)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/home", r.pageHandler.HomeHandler)
		v1.GET("/projects", r.pageHandler.ProjectsHandler)
		v1.GET("/site", r.pageHandler.SiteHandler)
		v1.GET("/notion", r.notionHandler.NotionDataHandler)
		v1.GET("/releases", r.releaseHandler.ListReposHandler)
	}

	blog := v1.Group("/blog")
	{
		blog.GET("", r.blogHandler.ListPostsHandler)
		blog.GET("/:slug", r.blogHandler.GetPostHandler)
		blog.GET("/:slug/views", r.blogHandler.GetViewsHandler)
		blog.POST("/:slug/views", r.blogHandler.RecordViewHandler)
	}

	admin := v1.Group("/admin")
	admin.POST("/login", r.adminHandler.LoginHandler)

	protected := admin.Group("/")
	protected.Use(middleware.AdminAuth(r.jwtService))
	{
		protected.POST("/posts", r.adminHandler.CreatePostHandler)
		protected.PATCH("/posts/:slug", r.adminHandler.UpdatePostHandler)
	}
}

func (r *Router) corsConfig() cors.Config {
	origins := r.config.GetCORSAllowOrigins()
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
