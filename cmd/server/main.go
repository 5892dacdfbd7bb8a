package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hostel-management-backend/internal/config"
	"hostel-management-backend/internal/database"
	"hostel-management-backend/internal/handler"
	"hostel-management-backend/internal/ledger"
	"hostel-management-backend/internal/middleware"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/logger"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Server.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Configuration loaded")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db, err := database.Connect(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}
	zapLogger.Info("Connected to database",
		zap.String("database", cfg.Database.Database),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns))

	// 4. Initialize repositories
	adminRepo := repository.NewAdminRepo(db)
	studentRepo := repository.NewStudentRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	feeRepo := repository.NewFeeRepo(db)
	complaintRepo := repository.NewComplaintRepo(db)
	outpassRepo := repository.NewOutpassRepo(db)
	announcementRepo := repository.NewAnnouncementRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize the room assignment ledger and services
	roomLedger := ledger.NewLedger(db, zapLogger)

	authService := service.NewAuthService(adminRepo, studentRepo, auditRepo)
	studentService := service.NewStudentService(studentRepo, roomLedger, auditRepo)
	roomService := service.NewRoomService(roomRepo, auditRepo)
	feeService := service.NewFeeService(feeRepo, studentRepo)
	complaintService := service.NewComplaintService(complaintRepo, auditRepo)
	outpassService := service.NewOutpassService(outpassRepo, auditRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	auditorService := service.NewAuditorService(roomRepo, zapLogger)

	// 6. Start the occupancy reconciliation auditor in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go auditorService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	roomHandler := handler.NewRoomHandler(roomService)
	feeHandler := handler.NewFeeHandler(feeService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	outpassHandler := handler.NewOutpassHandler(outpassService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	portalHandler := handler.NewPortalHandler(studentService, feeService, complaintService, outpassService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hostel-management-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/admin/login", authHandler.AdminLogin)
		auth.POST("/student/login", authHandler.StudentLogin)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.POST("/students", studentHandler.AddStudent)
		admin.GET("/students", studentHandler.ListStudents)
		admin.PUT("/students/:id", studentHandler.UpdateStudent)
		admin.DELETE("/students/:id", studentHandler.DeleteStudent)

		admin.POST("/rooms", roomHandler.AddRoom)
		admin.GET("/rooms", roomHandler.ListRooms)

		admin.POST("/fees", feeHandler.RecordPayment)
		admin.GET("/fees/student/:id", feeHandler.GetStudentFees)

		admin.GET("/complaints", complaintHandler.ListComplaints)
		admin.PUT("/complaints/:id", complaintHandler.UpdateComplaintStatus)

		admin.GET("/outpasses", outpassHandler.ListOutpasses)
		admin.PUT("/outpasses/:id", outpassHandler.UpdateOutpassStatus)

		admin.POST("/announcements", announcementHandler.CreateAnnouncement)
	}

	// Student portal routes
	portal := r.Group("/portal")
	portal.Use(middleware.AuthMiddleware(), middleware.RequireStudent())
	{
		portal.GET("/profile", portalHandler.GetProfile)
		portal.GET("/fees", portalHandler.GetFees)
		portal.POST("/complaints", portalHandler.SubmitComplaint)
		portal.GET("/complaints", portalHandler.GetComplaints)
		portal.POST("/outpasses", portalHandler.SubmitOutpass)
		portal.GET("/outpasses", portalHandler.GetOutpasses)
		portal.POST("/change-password", authHandler.ChangePassword)
	}

	// Announcements are visible to any authenticated user
	r.GET("/announcements", middleware.AuthMiddleware(), announcementHandler.ListAnnouncements)

	// 11. Setup graceful shutdown
	go func() {
		zapLogger.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	// Cancel auditor context
	cancel()
	zapLogger.Info("Server exited")
}
