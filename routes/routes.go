package routes

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/database"
	_ "github.com/sharath018/event-management-backend/docs"
	"github.com/sharath018/event-management-backend/internal/announcement"
	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/event"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/internal/models"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/internal/registration"
	"github.com/sharath018/event-management-backend/internal/reports"
	"github.com/sharath018/event-management-backend/internal/stats"
	"github.com/sharath018/event-management-backend/middleware"
)

// Deps are the long-lived components the HTTP layer is built on.
type Deps struct {
	Config     *config.Config
	Store      database.Store
	Tokens     auth.TokenStore
	Dispatcher notification.Dispatcher
	Metrics    *metrics.Metrics
}

// NewRouter builds a gin engine with the global middleware chain and every route mounted.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(corsConfig(d.Config.Origins)))
	r.Use(middleware.AuditMiddleware())
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}

	Setup(r, d)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition"},
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

func Setup(r *gin.Engine, d Deps) {
	cfg := d.Config

	// Static client
	if cfg.PublicDir != "" {
		if _, err := os.Stat(cfg.PublicDir); err == nil {
			r.Static("/public", cfg.PublicDir)
			r.StaticFile("/", filepath.Join(cfg.PublicDir, "index.html"))
		} else {
			log.Printf("⚠️ Public dir %s not found, client UI disabled", cfg.PublicDir)
		}
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	api := r.Group("/api")

	// ========== Initialize Audit Log Module ==========
	auditRepo := auditlog.NewRepository(d.Store)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	tokens := d.Tokens
	if tokens == nil {
		tokens = auth.NewMemoryTokenStore()
	}
	authRepo := auth.NewRepository(d.Store)
	authSvc := auth.NewService(authRepo, tokens, auditSvc, cfg)
	authHandler := auth.NewHandler(authSvc)

	requireAuth := middleware.AuthMiddleware(authSvc)
	optionalAuth := middleware.OptionalAuth(authSvc)
	adminOnly := []gin.HandlerFunc{requireAuth, middleware.RequireRole(models.RoleAdmin)}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", requireAuth, authHandler.Me)
		authGroup.POST("/logout", requireAuth, authHandler.Logout)
	}

	// ========== Events ==========
	eventSvc := event.NewService(event.NewRepository(d.Store), auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	registrationSvc := registration.NewService(d.Store, auditSvc, d.Metrics)
	registrationHandler := registration.NewHandler(registrationSvc)

	dispatcher := d.Dispatcher
	if dispatcher == nil {
		dispatcher = notification.NewInlineDispatcher(notification.LogDeliverer{})
	}
	announcementHandler := announcement.NewHandler(announcement.NewService(d.Store, dispatcher, auditSvc))

	reportsHandler := reports.NewHandler(reports.NewService(d.Store, auditSvc))

	events := api.Group("/events")
	{
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEventByID)
		events.POST("", append(adminOnly, eventHandler.CreateEvent)...)
		events.PUT("/:id", append(adminOnly, eventHandler.UpdateEvent)...)
		events.DELETE("/:id", append(adminOnly, eventHandler.DeleteEvent)...)

		events.GET("/:id/registrations", registrationHandler.ListRegistrations)
		events.POST("/:id/register", optionalAuth, registrationHandler.Register)
		events.GET("/:id/check-registration", registrationHandler.CheckRegistration)

		events.GET("/:id/announcements", announcementHandler.List)
		events.POST("/:id/announcements", append(adminOnly, announcementHandler.Create)...)

		events.GET("/:id/download-participants", optionalAuth, reportsHandler.DownloadParticipants)
	}

	api.PATCH("/registrations/:id/status", requireAuth, registrationHandler.UpdateStatus)

	// ========== Stats ==========
	statsHandler := stats.NewHandler(stats.NewService(d.Store))
	api.GET("/stats", statsHandler.GetStats)

	// ========== Audit Logs (Admin Only) ==========
	api.GET("/audit-logs", append(adminOnly, auditHandler.GetAuditLogs)...)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Route not found",
			"message": "Cannot " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})
}
