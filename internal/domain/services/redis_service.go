package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DashboardSummary is the admin dashboard payload cached in Redis
type DashboardSummary struct {
	Residents     int64   `json:"residents"`
	FundBalance   float64 `json:"fund_balance"`
	Billed        float64 `json:"billed"`
	Collected     float64 `json:"collected"`
	Outstanding   float64 `json:"outstanding"`
	OpenComplaint int64   `json:"open_complaints"`
	ActivePolls   int64   `json:"active_polls"`
}

// InterfaceRedisService defines the cache interface
type InterfaceRedisService interface {
	CacheDashboardSummary(ctx context.Context, adminID uint, summary *DashboardSummary) error
	GetDashboardSummary(ctx context.Context, adminID uint) (*DashboardSummary, error)
	InvalidateDashboard(ctx context.Context, adminID uint) error
	HealthCheck(ctx context.Context) error
}

// RedisService caches computed dashboard figures per admin. The client may
// be nil when no Redis is configured; every method then degrades to a
// cache miss.
type RedisService struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisService creates a new redis service
func NewRedisService(client *redis.Client) InterfaceRedisService {
	return &RedisService{
		Client: client,
		TTL:    5 * time.Minute,
	}
}

func dashboardKey(adminID uint) string {
	return fmt.Sprintf("societypro:dashboard:%d", adminID)
}

// CacheDashboardSummary stores the summary with a short TTL
func (s *RedisService) CacheDashboardSummary(ctx context.Context, adminID uint, summary *DashboardSummary) error {
	if s.Client == nil {
		return nil
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, dashboardKey(adminID), data, s.TTL).Err()
}

// GetDashboardSummary returns the cached summary, or (nil, nil) on a miss
func (s *RedisService) GetDashboardSummary(ctx context.Context, adminID uint) (*DashboardSummary, error) {
	if s.Client == nil {
		return nil, nil
	}
	data, err := s.Client.Get(ctx, dashboardKey(adminID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary DashboardSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// InvalidateDashboard drops the cached summary after a mutation that
// changes the figures
func (s *RedisService) InvalidateDashboard(ctx context.Context, adminID uint) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Del(ctx, dashboardKey(adminID)).Err()
}

// HealthCheck pings Redis
func (s *RedisService) HealthCheck(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Ping(ctx).Err()
}
