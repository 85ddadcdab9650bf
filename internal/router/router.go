package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/config"
	"github.com/radianceacademy/radiance-backend/internal/handler"
	"github.com/radianceacademy/radiance-backend/internal/middleware"
	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Course      *handler.CourseHandler
	Topper      *handler.TopperHandler
	Achievement *handler.AchievementHandler
	Gallery     *handler.GalleryHandler
	Home        *handler.HomeHandler
	Contact     *handler.ContactHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.SecureHeaders())

	// One shared limiter across the whole API surface.
	limiter := middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	router.Use(limiter.Middleware())

	requireAdmin := middleware.RequireAdmin(authService)

	// Health check.
	router.GET("/api/health", func(c *gin.Context) {
		response.OKWithMessage(c, "Server is running!", gin.H{
			"timestamp": time.Now().UTC(),
		})
	})

	// Auth.
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/verify", requireAdmin, handlers.Auth.Verify)
		auth.PUT("/change-password", requireAdmin, handlers.Auth.ChangePassword)
	}

	// Courses.
	courses := router.Group("/api/courses")
	{
		courses.GET("", handlers.Course.List)
		courses.GET("/:id", handlers.Course.Get)

		canManage := middleware.RequirePermission(model.PermissionCourses)
		courses.POST("", requireAdmin, canManage, handlers.Course.Create)
		courses.PUT("/:id", requireAdmin, canManage, handlers.Course.Update)
		courses.DELETE("/:id", requireAdmin, canManage, handlers.Course.Delete)
	}

	// Toppers.
	toppers := router.Group("/api/toppers")
	{
		toppers.GET("", handlers.Topper.List)
		toppers.GET("/:id", handlers.Topper.Get)

		canManage := middleware.RequirePermission(model.PermissionToppers)
		toppers.POST("", requireAdmin, canManage, handlers.Topper.Create)
		toppers.PUT("/:id", requireAdmin, canManage, handlers.Topper.Update)
		toppers.DELETE("/:id", requireAdmin, canManage, handlers.Topper.Delete)
	}

	// Achievements.
	achievements := router.Group("/api/achievements")
	{
		achievements.GET("", handlers.Achievement.List)
		achievements.GET("/:id", handlers.Achievement.Get)

		canManage := middleware.RequirePermission(model.PermissionAchievements)
		achievements.POST("", requireAdmin, canManage, handlers.Achievement.Create)
		achievements.PUT("/:id", requireAdmin, canManage, handlers.Achievement.Update)
		achievements.DELETE("/:id", requireAdmin, canManage, handlers.Achievement.Delete)
	}

	// Gallery.
	gallery := router.Group("/api/gallery")
	{
		gallery.GET("", handlers.Gallery.List)
		gallery.GET("/:id", handlers.Gallery.Get)

		canManage := middleware.RequirePermission(model.PermissionGallery)
		gallery.POST("", requireAdmin, canManage, handlers.Gallery.Create)
		gallery.PUT("/:id", requireAdmin, canManage, handlers.Gallery.Update)
		gallery.DELETE("/:id", requireAdmin, canManage, handlers.Gallery.Delete)
	}

	// Home sections, keyed by section name.
	home := router.Group("/api/home")
	{
		home.GET("", handlers.Home.List)
		home.GET("/:section", handlers.Home.Get)

		canManage := middleware.RequirePermission(model.PermissionHome)
		home.POST("", requireAdmin, canManage, handlers.Home.Save)
		home.PUT("/:section", requireAdmin, canManage, handlers.Home.Update)
		home.DELETE("/:section", requireAdmin, canManage, handlers.Home.Delete)
	}

	// Contact. Submission is public; everything else is admin triage.
	// /stats registers before /:id so it is not swallowed by the param route.
	contact := router.Group("/api/contact")
	{
		contact.POST("", handlers.Contact.Create)

		canManage := middleware.RequirePermission(model.PermissionContacts)
		contact.GET("/stats", requireAdmin, canManage, handlers.Contact.Stats)
		contact.GET("", requireAdmin, canManage, handlers.Contact.List)
		contact.GET("/:id", requireAdmin, canManage, handlers.Contact.Get)
		contact.PUT("/:id", requireAdmin, canManage, handlers.Contact.Update)
		contact.DELETE("/:id", requireAdmin, canManage, handlers.Contact.Delete)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.MsgRouteNotFound)
	})

	return router
}
