package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"zenrio/internal/config"
	"zenrio/internal/database"
	"zenrio/internal/middleware"
	"zenrio/internal/modules/analytics"
	"zenrio/internal/modules/articles"
	"zenrio/internal/modules/auth"
	"zenrio/internal/modules/events"
	jwtsvc "zenrio/internal/pkg/jwt"
	"zenrio/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	eventRepo := repository.NewEventRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	authService := auth.NewService(adminRepo, j, cfg.RegisterSecret, cfg.BcryptCost)
	authHandler := auth.NewHandler(authService, int(cfg.SessionTTL.Seconds()), cfg.CookieSecure)

	eventService := events.NewService(eventRepo)
	eventHandler := events.NewHandler(eventService, cfg.DefaultListLimit)

	articleService := articles.NewService(articleRepo)
	articleHandler := articles.NewHandler(articleService)

	vercel := analytics.NewVercelClient(
		cfg.VercelAPIToken, cfg.VercelProjectID, cfg.VercelTeamID, cfg.AnalyticsTimeout,
	)
	analyticsHandler := analytics.NewHandler(vercel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	// Admin pages are gated before any handler runs.
	r.Use(middleware.PageGuard(j, cfg.ProtectedPrefixes, cfg.LoginPath))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// public
		eventHandler.RegisterPublicRoutes(api)
		articleHandler.RegisterPublicRoutes(api)
		authHandler.RegisterPublicRoutes(api)

		// session-gated admin API
		protected := api.Group("/")
		protected.Use(middleware.CookieAuth(j))
		{
			eventHandler.RegisterAdminRoutes(protected)
			articleHandler.RegisterAdminRoutes(protected)
			analyticsHandler.RegisterAdminRoutes(protected)
		}

		// master-only account management
		master := api.Group("/")
		master.Use(middleware.CookieAuth(j), middleware.RequireMaster(adminRepo))
		{
			authHandler.RegisterMasterRoutes(master)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
