package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easyshop_service/config"
	"easyshop_service/internal/auth"
	"easyshop_service/internal/delivery"
	grpcHandler "easyshop_service/internal/delivery/grpc"
	"easyshop_service/internal/domain"
	"easyshop_service/internal/middleware"
	"easyshop_service/internal/repository"
	"easyshop_service/internal/usecase"
	"easyshop_service/pkg/db"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s' in config, using default 'info'. Error: %v", cfg.LogLevel, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting EasyShop Service...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL, db.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	logger.Info("Database connection established.")

	if cfg.AutoMigrate {
		if err := db.EnsureSchema(context.Background(), database); err != nil {
			logger.Fatalf("Failed to apply schema: %v", err)
		}
		logger.Info("Database schema ensured.")
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		logger.Fatalf("Failed to initialise token manager: %v", err)
	}

	// --- Dependency Injection ---
	categoryRepo := repository.NewPostgresCategoryRepository(database, logger)
	productRepo := repository.NewPostgresProductRepository(database, logger)
	cartRepo := repository.NewPostgresShoppingCartRepository(database, logger)
	userRepo := repository.NewPostgresUserRepository(database, logger)
	logger.Info("Repositories initialized.")

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, productRepo, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	cartUseCase := usecase.NewCartUseCase(cartRepo, userRepo, productRepo, logger)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, logger)
	logger.Info("Use cases initialized.")

	seedAdmin(authUseCase, cfg, logger)

	// --- HTTP ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg)))
	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	router.Use(limiter.Middleware())

	authenticated := router.Group("/")
	authenticated.Use(middleware.Authenticate(tokens, logger))
	admin := authenticated.Group("/")
	admin.Use(middleware.RequireRole(domain.RoleAdmin, logger))

	delivery.NewHealthHandler(database, logger).RegisterRoutes(router)
	delivery.NewAuthHandler(authUseCase, logger).RegisterRoutes(router)
	delivery.NewCategoryHandler(categoryUseCase, logger).RegisterRoutes(router, admin)
	delivery.NewProductHandler(productUseCase, logger).RegisterRoutes(router, admin)
	delivery.NewCartHandler(cartUseCase, logger).RegisterRoutes(authenticated)
	logger.Info("API Routes registered.")

	httpServer := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	// --- gRPC health ---
	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("Failed to listen on port %s: %v", cfg.GrpcPort, err)
	}

	grpcServer := grpc.NewServer()
	healthHandler := grpcHandler.NewHealthHandler(database, logger)
	healthHandler.Register(grpcServer)
	reflection.Register(grpcServer)

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go healthHandler.Watch(watchCtx, 15*time.Second)
	go limiter.Cleanup(watchCtx, time.Minute, 10*time.Minute)

	go func() {
		logger.Infof("gRPC health server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Warn("Shutdown signal received...")

	stopWatch()
	healthHandler.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP server forced to shut down: %v", err)
	}
	grpcServer.GracefulStop()
	logger.Info("EasyShop Service shut down gracefully.")
}

// seedAdmin provisions the configured administrator. Public registration only
// creates ROLE_USER accounts.
func seedAdmin(uc usecase.AuthUseCase, cfg *config.Config, logger *logrus.Logger) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := uc.Register(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPassword, domain.RoleAdmin)
	switch {
	case err == nil:
		logger.Infof("Admin user '%s' created", cfg.AdminUsername)
	case errors.Is(err, domain.ErrConflict):
		logger.Infof("Admin user '%s' already exists", cfg.AdminUsername)
	default:
		logger.Fatalf("Failed to seed admin user: %v", err)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	origins := cfg.AllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
