package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/Ayushman2005/SocietyPro/docs"
	"github.com/Ayushman2005/SocietyPro/internal/app/controllers"
	"github.com/Ayushman2005/SocietyPro/internal/app/middleware"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) (*gin.Engine, *container.ServiceContainer) {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitAuthMiddleware(cfg, db)

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r, serviceContainer
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAdminRoutes(api, container)
	registerResidentRoutes(api, container)
}

// registerPublicRoutes registers unauthenticated routes
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 10 requests per second per IP, bursts of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	// Health check routes
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)
	api.GET("/health", healthController.Ping)

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.POST("/login", controllers.HandleJWTFunc(container, "login"))
	authGroup.POST("/register/admin", controllers.HandleAdminFunc(container, "register"))
	authGroup.POST("/register/resident", controllers.HandleResidentFunc(container, "register"))

	// OTP delivery is expensive, keep the rate low
	resetGroup := authGroup.Group("")
	resetGroup.Use(middleware.PathRateLimiter(2, 5))
	resetGroup.POST("/forgot-password", controllers.HandlePasswordFunc(container, "forgotPassword"))
	resetGroup.POST("/reset-password", controllers.HandlePasswordFunc(container, "resetPassword"))

	// Public contact form
	api.POST("/contact", controllers.HandleContactFunc(container, "submit"))
}

// registerAdminRoutes registers routes restricted to society admins
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthenticateAdmin())
	admin.Use(middleware.IPRateLimiter(30, 50))

	admin.GET("/dashboard", controllers.HandleAdminFunc(container, "dashboard"))
	admin.GET("/fund", controllers.HandleAdminFunc(container, "getFund"))
	admin.PUT("/fund", controllers.HandleAdminFunc(container, "updateFund"))
	admin.GET("/profile", controllers.HandleAdminFunc(container, "getProfile"))
	admin.PUT("/profile", controllers.HandleAdminFunc(container, "updateProfile"))

	// Tenant management
	tenantGroup := admin.Group("/tenants")
	tenantGroup.GET("", controllers.HandleResidentFunc(container, "getTenants"))
	tenantGroup.GET("/:id", controllers.HandleResidentFunc(container, "getTenant"))
	tenantGroup.POST("", controllers.HandleResidentFunc(container, "createTenant"))
	tenantGroup.PUT("/:id", controllers.HandleResidentFunc(container, "updateTenant"))
	tenantGroup.DELETE("/:id", controllers.HandleResidentFunc(container, "deleteTenant"))

	// Billing
	billGroup := admin.Group("/bills")
	billGroup.GET("", controllers.HandleBillFunc(container, "getBills"))
	billGroup.POST("", controllers.HandleBillFunc(container, "createBill"))
	billGroup.PUT("/:id/pay", controllers.HandleBillFunc(container, "markPaid"))
	billGroup.DELETE("/:id", controllers.HandleBillFunc(container, "deleteBill"))

	// Invoices
	invoiceGroup := admin.Group("/invoices")
	invoiceGroup.GET("", controllers.HandleInvoiceFunc(container, "getInvoices"))
	invoiceGroup.GET("/:id/download", controllers.HandleInvoiceFunc(container, "downloadInvoice"))

	// Notice board
	noticeGroup := admin.Group("/notices")
	noticeGroup.GET("", controllers.HandleNoticeFunc(container, "getNotices"))
	noticeGroup.POST("", controllers.HandleNoticeFunc(container, "createNotice"))
	noticeGroup.PUT("/:id", controllers.HandleNoticeFunc(container, "updateNotice"))
	noticeGroup.DELETE("/:id", controllers.HandleNoticeFunc(container, "deleteNotice"))

	// Complaint desk
	complaintGroup := admin.Group("/complaints")
	complaintGroup.GET("", controllers.HandleComplaintFunc(container, "getComplaints"))
	complaintGroup.PUT("/:id", controllers.HandleComplaintFunc(container, "updateComplaintStatus"))

	// Visitor log
	visitorGroup := admin.Group("/visitors")
	visitorGroup.GET("", controllers.HandleVisitorFunc(container, "getVisitors"))
	visitorGroup.PUT("/:id", controllers.HandleVisitorFunc(container, "updateVisitorStatus"))

	// Facility bookings
	bookingGroup := admin.Group("/bookings")
	bookingGroup.GET("", controllers.HandleBookingFunc(container, "getBookings"))
	bookingGroup.PUT("/:id", controllers.HandleBookingFunc(container, "decideBooking"))

	// Facilities
	facilityGroup := admin.Group("/facilities")
	facilityGroup.GET("", controllers.HandleFacilityFunc(container, "getFacilities"))
	facilityGroup.POST("", controllers.HandleFacilityFunc(container, "createFacility"))
	facilityGroup.DELETE("/:id", controllers.HandleFacilityFunc(container, "deleteFacility"))

	// Polls
	pollGroup := admin.Group("/polls")
	pollGroup.GET("", controllers.HandlePollFunc(container, "getPolls"))
	pollGroup.POST("", controllers.HandlePollFunc(container, "createPoll"))
	pollGroup.PUT("/:id/close", controllers.HandlePollFunc(container, "closePoll"))

	// Emergency directory
	emergencyGroup := admin.Group("/emergency-contacts")
	emergencyGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleEmergencyFunc(container, "getContacts"))
	emergencyGroup.POST("", controllers.HandleEmergencyFunc(container, "createContact"))
	emergencyGroup.PUT("/:id", controllers.HandleEmergencyFunc(container, "updateContact"))
	emergencyGroup.DELETE("/:id", controllers.HandleEmergencyFunc(container, "deleteContact"))

	// Contact form inbox
	admin.GET("/inquiries", controllers.HandleContactFunc(container, "getInquiries"))
}

// registerResidentRoutes registers routes restricted to residents
func registerResidentRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	resident := api.Group("/resident")
	resident.Use(middleware.AuthenticateResident())
	resident.Use(middleware.IPRateLimiter(30, 50))

	resident.GET("/profile", controllers.HandleResidentFunc(container, "getProfile"))
	resident.PUT("/profile", controllers.HandleResidentFunc(container, "updateProfile"))

	// The resident dashboard is the bill ledger
	resident.GET("/dashboard", controllers.HandleBillFunc(container, "getMyBills"))
	resident.GET("/bills", controllers.HandleBillFunc(container, "getMyBills"))
	resident.GET("/notices", controllers.HandleNoticeFunc(container, "getMyNotices"))

	resident.GET("/complaints", controllers.HandleComplaintFunc(container, "getMyComplaints"))
	resident.POST("/complaints", controllers.HandleComplaintFunc(container, "createComplaint"))

	resident.GET("/visitors", controllers.HandleVisitorFunc(container, "getMyVisitors"))
	resident.POST("/visitors", controllers.HandleVisitorFunc(container, "createVisitor"))

	resident.GET("/facilities", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleFacilityFunc(container, "getMyFacilities"))
	resident.GET("/bookings", controllers.HandleBookingFunc(container, "getMyBookings"))
	resident.POST("/bookings", controllers.HandleBookingFunc(container, "requestBooking"))

	resident.GET("/polls", controllers.HandlePollFunc(container, "getMyPolls"))
	resident.POST("/polls/:id/vote", middleware.CombinedRateLimiter(5, 10), controllers.HandlePollFunc(container, "vote"))

	resident.GET("/emergency", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleEmergencyFunc(container, "getMyContacts"))
}
