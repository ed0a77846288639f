package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "lifelessons/internal/controller/http"
	"lifelessons/internal/repo/persistent"
	"lifelessons/internal/usecase"
	"lifelessons/pkg/config"
	"lifelessons/pkg/jwt"
	"lifelessons/pkg/logger"
	"lifelessons/pkg/middleware"
	"lifelessons/pkg/queue"
	"lifelessons/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "lifelessons/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	lessonRepo := persistent.NewLessonRepository(db)
	engagementRepo := persistent.NewEngagementRepository(db)
	reportRepo := persistent.NewReportRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(userRepo, jwtService, cfg, log)
	lessonUseCase := usecase.NewLessonUseCase(lessonRepo, engagementRepo, s3Client, log)
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, lessonRepo, redisClient, queueClient, log)
	moderationUseCase := usecase.NewModerationUseCase(reportRepo, lessonRepo, queueClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, lessonRepo, log)

	// Initialize HTTP handlers
	userHandler := appHTTP.NewUserHandler(userUseCase, log)
	lessonHandler := appHTTP.NewLessonHandler(lessonUseCase, userUseCase, log)
	engagementHandler := appHTTP.NewEngagementHandler(engagementUseCase, userUseCase, log)
	moderationHandler := appHTTP.NewModerationHandler(moderationUseCase, userUseCase, log)
	commentHandler := appHTTP.NewCommentHandler(commentUseCase, userUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin, "http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	// Public routes; a token is honored when present so premium viewers
	// get full lessons instead of blurred previews
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		public.POST("/auth/register", userHandler.Register)
		public.POST("/auth/login", userHandler.Login)
		public.GET("/lessons", lessonHandler.ListLessons)
		public.GET("/lessons/:id", lessonHandler.GetLesson)
		public.GET("/lessons/:id/likes", engagementHandler.GetLikeCount)
		public.GET("/lessons/:id/comments", commentHandler.ListComments)
		public.GET("/reports/reasons", moderationHandler.ReportReasons)
	}

	// Authenticated routes
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(jwtService))
	{
		auth.GET("/auth/me", userHandler.Me)
		auth.POST("/lessons", lessonHandler.CreateLesson)
		auth.PATCH("/lessons/:id", lessonHandler.UpdateLesson)
		auth.DELETE("/lessons/:id", lessonHandler.DeleteLesson)
		auth.GET("/my-lessons", lessonHandler.MyLessons)

		auth.PATCH("/lessons/:id/like", engagementHandler.ToggleLike)
		auth.POST("/favorites", engagementHandler.AddFavorite)
		auth.GET("/favorites", engagementHandler.ListFavorites)
		auth.DELETE("/favorites/:lesson_id", engagementHandler.RemoveFavorite)
		auth.GET("/favorites/check/:lesson_id", engagementHandler.CheckFavorite)

		auth.POST("/lessons/:id/comments", commentHandler.AddComment)
		auth.DELETE("/comments/:id", commentHandler.DeleteComment)

		auth.POST("/reports", moderationHandler.SubmitReport)

		auth.GET("/users/:email", userHandler.GetUser)
		auth.GET("/user/role/:email", userHandler.GetRole)
		auth.PATCH("/users/premium/:email", userHandler.ActivatePremium)
		auth.PATCH("/users/premium/cancel/:email", userHandler.CancelPremium)
		auth.POST("/create-checkout-session", userHandler.CreateCheckoutSession)
	}

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtService), middleware.RequireAdmin())
	{
		admin.GET("/users", userHandler.ListUsers)
		admin.GET("/reports", moderationHandler.ListReports)
		admin.DELETE("/reports/:id", moderationHandler.DismissReport)
		admin.DELETE("/lessons/:id/with-reports", moderationHandler.DeleteReportedLesson)
		admin.PATCH("/lessons/:id/featured", lessonHandler.ToggleFeatured)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Life lessons service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Service exited")
}
