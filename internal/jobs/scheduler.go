package jobs

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services/container"
	"github.com/Ayushman2005/SocietyPro/pkg/logger"
)

// Scheduler runs the recurring maintenance jobs
type Scheduler struct {
	cron      *cron.Cron
	container *container.ServiceContainer
}

// NewScheduler creates a scheduler bound to the service container
func NewScheduler(c *container.ServiceContainer) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		container: c,
	}
}

// Start registers and starts the recurring jobs
func (s *Scheduler) Start() error {
	// Hourly sweep of reset codes past their validity window
	if _, err := s.cron.AddFunc("0 * * * *", s.purgeExpiredOTPs); err != nil {
		return err
	}

	// Nightly sweep rejecting bookings left pending past their date
	if _, err := s.cron.AddFunc("30 0 * * *", s.rejectStaleBookings); err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("scheduler started with %d jobs", len(s.cron.Entries()))
	return nil
}

// Stop stops the scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) purgeExpiredOTPs() {
	resetService := s.container.GetService("password_reset").(services.InterfacePasswordResetService)
	n, err := resetService.PurgeExpired(time.Now())
	if err != nil {
		logger.Error("expired OTP purge failed: %v", err)
		return
	}
	if n > 0 {
		logger.Info("purged %d expired OTP rows", n)
	}
}

func (s *Scheduler) rejectStaleBookings() {
	bookingService := s.container.GetService("booking").(services.InterfaceBookingService)
	n, err := bookingService.RejectStalePending(time.Now())
	if err != nil {
		logger.Error("stale booking sweep failed: %v", err)
		return
	}
	if n > 0 {
		logger.Info("rejected %d stale pending bookings", n)
	}
}
