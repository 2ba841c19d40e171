package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"leadbox/internal/config"
	"leadbox/internal/controllers"
	"leadbox/internal/middleware"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	expires, err := time.ParseDuration(cfg.JWTExpiresIn + "h")
	if err != nil || expires == 0 {
		expires = 24 * time.Hour
	}

	authCtrl := &controllers.AuthController{DB: db, JWTSecret: cfg.JWTSecret, ExpiresIn: expires}
	subscribeCtrl := &controllers.SubscribeController{DB: db}
	adminCtrl := &controllers.AdminController{DB: db}
	healthCtrl := &controllers.HealthController{DB: db}

	// Public
	r.POST("/api/subscribe", subscribeCtrl.Subscribe)
	r.POST("/api/admin/login", authCtrl.Login)
	r.GET("/health", healthCtrl.Health)

	// Admin-only; every data read sits behind the token guard.
	authMW := middleware.AuthMiddleware(middleware.AuthConfig{JWTSecret: cfg.JWTSecret})
	api := r.Group("/api", authMW)
	{
		api.GET("/submissions", adminCtrl.ListSubmissions)
		api.GET("/export", adminCtrl.ExportSubmissions)
	}

	// Static pages: admin dashboard under /admin, the public form for
	// everything else. Both directories are opaque to the backend.
	r.Static("/admin", cfg.AdminDir)
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.PublicDir))))
}
