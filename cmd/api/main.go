package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/condogestor/condoasset-backend/docs"
	httphandlers "github.com/condogestor/condoasset-backend/internal/handlers/http"
	"github.com/condogestor/condoasset-backend/internal/handlers/middleware"
	"github.com/condogestor/condoasset-backend/internal/infrastructure/auth"
	"github.com/condogestor/condoasset-backend/internal/infrastructure/config"
	"github.com/condogestor/condoasset-backend/internal/infrastructure/i18n"
	"github.com/condogestor/condoasset-backend/internal/infrastructure/logging"
	"github.com/condogestor/condoasset-backend/internal/infrastructure/persistence/postgres"
	"github.com/condogestor/condoasset-backend/internal/notifications"
	"github.com/condogestor/condoasset-backend/internal/services"
)

//	@title			CondoAsset Backend API
//	@version		1.0
//	@description	API de gestão de imóveis e ativos físicos de condomínios
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting condoasset backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Migrar schema e semear a sequência de asset codes
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar tokens JWT
	tokenManager, err := auth.NewTokenManager(&cfg.JWT)
	if err != nil {
		logger.Error("failed to initialize token manager", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	imovelRepo := postgres.NewImovelRepository(db)
	ativoRepo := postgres.NewAtivoRepository(db)
	chamadoRepo := postgres.NewChamadoRepository(db)
	sequence := postgres.NewAssetCodeSequence(db)
	uow := postgres.NewUnitOfWork(db)

	// Hub de notificações em tempo real
	allowedOrigins := strings.Split(cfg.CORS.AllowedOrigins, ",")
	hub := notifications.NewHub(allowedOrigins, logger)

	// Inicializar services
	authService := services.NewAuthService(userRepo, tokenManager, logger)
	imovelService := services.NewImovelService(imovelRepo, userRepo, ativoRepo, chamadoRepo, hub, logger)
	ativoService := services.NewAtivoService(ativoRepo, imovelRepo, userRepo, chamadoRepo, sequence, uow, hub, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	imovelHandler := httphandlers.NewImovelHandler(imovelService)
	ativoHandler := httphandlers.NewAtivoHandler(ativoService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokenManager, userRepo)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Notificações em tempo real
	router.GET("/ws", authMiddleware.RequireAuth(), hub.Handle)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/check-email", authHandler.CheckEmail)
			authRoutes.GET("/check-cpf-cnpj", authHandler.CheckCpfCnpj)
			authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
			authRoutes.PUT("/password", authMiddleware.RequireAuth(), authHandler.UpdatePassword)
		}

		// Imóveis
		imoveis := v1.Group("/imoveis", authMiddleware.RequireAuth())
		{
			imoveis.POST("", imovelHandler.Create)
			imoveis.GET("", imovelHandler.List)
			imoveis.GET("/:id", imovelHandler.Get)
			imoveis.PUT("/:id", imovelHandler.Update)
			imoveis.DELETE("/:id", imovelHandler.Delete)

			// Ativos
			imoveis.POST("/:id/ativos", ativoHandler.Create)
			imoveis.GET("/:id/ativos", ativoHandler.List)
			imoveis.GET("/:id/ativos/:ativoId", ativoHandler.Get)
			imoveis.PUT("/:id/ativos/:ativoId", ativoHandler.Update)
			imoveis.DELETE("/:id/ativos/:ativoId", ativoHandler.Delete)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
