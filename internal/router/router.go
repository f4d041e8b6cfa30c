package router

import (
	"github.com/gin-gonic/gin"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/handler"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/middleware"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	reportH *handler.ReportHandler,
	complaintH *handler.ComplaintHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)
	auth.POST("/forgot-password", authH.ForgotPassword)
	auth.POST("/reset-password", authH.ResetPassword)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/me", userH.Me)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", userH.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Delete)

	// Daily report routes
	reports := protected.Group("/reports")
	reports.GET("", reportH.Types)
	reports.GET("/export", reportH.Export)
	reports.GET("/:reportId", reportH.Load)
	reports.PUT("/:reportId", reportH.Save)

	// Complaint routes
	complaints := protected.Group("/complaints")
	complaints.POST("", complaintH.Create)
	complaints.GET("", complaintH.List)
	complaints.GET("/:id", complaintH.GetByID)
	complaints.PUT("/:id", complaintH.Update)
	complaints.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleDSRAdmin), complaintH.Delete)
	complaints.POST("/:id/evidence", complaintH.UploadEvidence)
	complaints.GET("/:id/evidence", complaintH.ListEvidence)

	return r
}
