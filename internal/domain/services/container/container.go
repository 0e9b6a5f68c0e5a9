package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Base services
	jwtService services.InterfaceJWTService

	// Data storage services
	redisService services.InterfaceRedisService

	// Outbound messaging services
	gateService services.InterfaceGateService
	mailService services.InterfaceMailService

	// Business services
	adminService            services.InterfaceAdminService
	residentService         services.InterfaceResidentService
	billService             services.InterfaceBillService
	fundService             services.InterfaceFundService
	invoiceService          services.InterfaceInvoiceService
	noticeService           services.InterfaceNoticeService
	complaintService        services.InterfaceComplaintService
	visitorService          services.InterfaceVisitorService
	bookingService          services.InterfaceBookingService
	facilityService         services.InterfaceFacilityService
	pollService             services.InterfacePollService
	emergencyContactService services.InterfaceEmergencyContactService
	contactService          services.InterfaceContactService
	passwordResetService    services.InterfacePasswordResetService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container. The Redis client
// may be nil; cache-backed features then degrade to direct queries.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis ping failed: %v, continuing without cache", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config, c.db)
	c.redisService = services.NewRedisService(c.redis)

	// Outbound messaging
	c.mailService = services.NewMailService(c.config)
	c.gateService = services.NewGateService(c.config)
	if err := c.gateService.Connect(); err != nil {
		log.Printf("MQTT gate connection failed: %v", err)
	}

	// Business services
	c.adminService = services.NewAdminService(c.db, c.config)
	c.residentService = services.NewResidentService(c.db, c.config)
	c.billService = services.NewBillService(c.db, c.config)
	c.fundService = services.NewFundService(c.db, c.config)
	c.invoiceService = services.NewInvoiceService(c.db, c.config)
	c.noticeService = services.NewNoticeService(c.db, c.config)
	c.complaintService = services.NewComplaintService(c.db, c.config)
	c.visitorService = services.NewVisitorService(c.db, c.config, c.gateService)
	c.bookingService = services.NewBookingService(c.db, c.config, c.gateService)
	c.facilityService = services.NewFacilityService(c.db, c.config)
	c.pollService = services.NewPollService(c.db, c.config)
	c.emergencyContactService = services.NewEmergencyContactService(c.db, c.config)
	c.contactService = services.NewContactService(c.db, c.config, c.mailService)
	c.passwordResetService = services.NewPasswordResetService(c.db, c.config, c.mailService)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "gate":
		return c.gateService
	case "mail":
		return c.mailService
	case "admin":
		return c.adminService
	case "resident":
		return c.residentService
	case "bill":
		return c.billService
	case "fund":
		return c.fundService
	case "invoice":
		return c.invoiceService
	case "notice":
		return c.noticeService
	case "complaint":
		return c.complaintService
	case "visitor":
		return c.visitorService
	case "booking":
		return c.bookingService
	case "facility":
		return c.facilityService
	case "poll":
		return c.pollService
	case "emergency_contact":
		return c.emergencyContactService
	case "contact":
		return c.contactService
	case "password_reset":
		return c.passwordResetService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
