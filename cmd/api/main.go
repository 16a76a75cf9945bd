package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	handlerHttp "github.com/jasonzhang/portfolio/internal/handler/http"
	redisclient "github.com/jasonzhang/portfolio/internal/infrastructure/cache"
	"github.com/jasonzhang/portfolio/internal/infrastructure/config"
	database "github.com/jasonzhang/portfolio/internal/infrastructure/database"
	"github.com/jasonzhang/portfolio/internal/infrastructure/external_services"
	"github.com/jasonzhang/portfolio/internal/infrastructure/jwt"
	"github.com/jasonzhang/portfolio/internal/infrastructure/logger"
	"github.com/jasonzhang/portfolio/internal/infrastructure/markdown"
	passwordservice "github.com/jasonzhang/portfolio/internal/infrastructure/password_service"
	randomgenerator "github.com/jasonzhang/portfolio/internal/infrastructure/random_generator"
	"github.com/jasonzhang/portfolio/internal/infrastructure/repository/mongodb"
	"github.com/jasonzhang/portfolio/internal/infrastructure/store"
	"github.com/jasonzhang/portfolio/internal/infrastructure/uuidgen"
	"github.com/jasonzhang/portfolio/internal/infrastructure/validator"
	"github.com/jasonzhang/portfolio/internal/usecase"
)

const (
	adminTokenTTL   = 12 * time.Hour
	githubTimeout   = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger, err := logger.NewZapLogger(appConfig.GetLogLevel())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	if appConfig.GetMongoURI() == "" {
		appLogger.Fatalf("MONGODB_URI environment variable not set")
	}
	if appConfig.GetMongoDBName() == "" {
		appLogger.Fatalf("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.GetMongoURI())
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Database(appConfig.GetMongoDBName())

	// Dependency Injection: Repositories
	postRepo := mongodb.NewPostRepository(db)
	viewRepo := mongodb.NewViewRepository(db)
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := postRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Warnf("post indexes not created: %v", err)
	}
	if err := viewRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Warnf("view indexes not created: %v", err)
	}
	cancelIndex()

	healthChecks := map[string]handlerHttp.HealthCheck{"mongodb": mongoClient.Ping}

	// Cache backend: Redis when configured, in-process otherwise
	var ttlCache contract.ITTLCache
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), redisURL, appLogger)
		if err != nil {
			appLogger.Fatalf("Failed to configure Redis: %v", err)
		}
		defer redisclient.Close(rdb, appLogger)
		ttlCache = store.NewRedisTTLCache(rdb, "portfolio:")
		healthChecks["redis"] = func(ctx context.Context) error { return redisclient.Ping(ctx, rdb) }
		appLogger.Infof("using redis cache")
	} else {
		ttlCache = store.NewMemoryTTLCache()
		appLogger.Infof("using in-memory cache")
	}
	memo := usecase.NewMemoizer(ttlCache, appLogger)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	uuidGenerator := uuidgen.NewGenerator()
	randomSource := randomgenerator.NewRandomSource()
	renderer := markdown.NewRenderer()
	releaseProvider := external_services.NewGitHubReleaseClient(appConfig.GetGitHubToken(), githubTimeout)

	jwtSecret := appConfig.GetJWTSecret()
	if jwtSecret == "" {
		appLogger.Fatalf("JWT_SECRET environment variable not set")
	}
	jwtManager, err := jwt.NewJWTManager(jwtSecret, adminTokenTTL)
	if err != nil {
		appLogger.Fatalf("Failed to create JWT manager: %v", err)
	}
	jwtService := jwt.NewJWTService(jwtManager)

	var notionClient contract.INotionClient
	if key := appConfig.GetNotionAPIKey(); key != "" {
		notionClient = external_services.NewNotionClient(key, nil)
	}

	// Dependency Injection: Usecases
	featuredUsecase := usecase.NewFeaturedPostsUseCase(postRepo, viewRepo, randomSource, memo, appLogger, appConfig.GetFeaturedPostsTTL(), appConfig.GetRankingTimeout())
	blogUsecase := usecase.NewBlogUseCase(postRepo, viewRepo, renderer, appLogger)
	siteUsecase := usecase.NewSiteUseCase(featuredUsecase, appConfig.GetAppBaseURL(), appConfig.GetUmamiWebsiteID(), appConfig.GetIsTemplate())
	releaseUsecase := usecase.NewReleaseUseCase(releaseProvider, memo, appLogger, appConfig.GetReleasesOwner(), appConfig.GetReleaseRepos(), appConfig.GetReleaseCacheTTL(), appConfig.GetAppBaseURL())
	notionUsecase := usecase.NewNotionUseCase(notionClient, appConfig.GetNotionDatabaseID(), appLogger)
	adminUsecase := usecase.NewAdminUseCase(postRepo, hasher, jwtService, uuidGenerator, appLogger, appConfig.GetAdminPasswordHash())

	// Register custom validators
	if err := validator.RegisterCustomValidators(); err != nil {
		appLogger.Fatalf("Failed to register validators: %v", err)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		blogUsecase, siteUsecase, releaseUsecase, notionUsecase, adminUsecase,
		jwtService, appLogger, appConfig, healthChecks,
	)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Server running on port %s", appConfig.GetPort())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Infof("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorf("Server forced to shutdown: %v", err)
	}
}
