package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/middleware"
)

// RouterDeps собирает зависимости HTTP-роутера
type RouterDeps struct {
	Auth    *AuthHandler
	Student *StudentHandler
	Teacher *TeacherHandler
	Admin   *AdminHandler

	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter может быть nil, тогда вход и регистрация не ограничиваются
	RateLimiter   *middleware.RateLimiter
	AuthRateLimit middleware.RateLimitConfig
	Metrics       *middleware.Metrics

	AllowedOrigins []string
	MaxBodyBytes   int64
	// TrustedProxies nil означает не доверять заголовкам прокси
	TrustedProxies []string
	// HealthCheck проверяет зависимости для /healthz
	HealthCheck func(ctx context.Context) error

	Logger *zap.Logger
}

// NewRouter регистрирует все маршруты приложения
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		deps.Logger.Warn("Failed to set trusted proxies", zap.Error(err))
	}

	router.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "Location", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.Use(middleware.BodyLimit(deps.MaxBodyBytes))

	router.GET("/healthz", func(c *gin.Context) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(c.Request.Context()); err != nil {
				deps.Logger.Warn("Health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := deps.AuthMiddleware
	app := router.Group("/")
	app.Use(authMW.LoadIdentity())

	authLimit := func(c *gin.Context) { c.Next() }
	if deps.RateLimiter != nil {
		authLimit = deps.RateLimiter.Limit(deps.AuthRateLimit)
	}

	app.GET("/", deps.Auth.Index)
	app.GET("/register", deps.Auth.RegisterForm)
	app.POST("/register", authLimit, deps.Auth.Register)
	app.GET("/login", deps.Auth.LoginForm)
	app.POST("/login", authLimit, deps.Auth.Login)
	app.GET("/logout", authMW.RequireAuth(), deps.Auth.Logout)

	activityID := middleware.ExtractUintParam("id", "activityID")

	student := app.Group("/student", authMW.RequireRole(entity.RoleStudent))
	{
		student.GET("/dashboard", deps.Student.Dashboard)
		student.GET("/activity/:id", activityID, deps.Student.StartActivity)
		student.POST("/activity/:id", activityID, deps.Student.SubmitActivity)
	}

	teacher := app.Group("/teacher", authMW.RequireRole(entity.RoleTeacher))
	{
		teacher.GET("/dashboard", deps.Teacher.Dashboard)
		teacher.GET("/create_activity", deps.Teacher.CreateActivityForm)
		teacher.POST("/create_activity", deps.Teacher.CreateActivity)
		teacher.GET("/students", deps.Teacher.Students)

		activity := teacher.Group("/activity/:id", activityID)
		activity.GET("/add_questions", deps.Teacher.AddQuestionsForm)
		activity.POST("/add_questions", deps.Teacher.AddQuestion)
		activity.GET("/stats", deps.Teacher.ActivityStats)
		activity.GET("/stats/export", deps.Teacher.ExportActivityResults)
	}

	admin := app.Group("/admin", authMW.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/dashboard", deps.Admin.Dashboard)
		admin.GET("/users", deps.Admin.Users)
		admin.POST("/user/:id/delete", middleware.ExtractUintParam("id", "userID"), deps.Admin.DeleteUser)
	}

	return router
}
