package services

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
	"github.com/Ayushman2005/SocietyPro/pkg/logger"
)

// InterfaceGateService publishes gate-facing events over MQTT so entrance
// hardware and guard consoles can react to new passes and bookings
type InterfaceGateService interface {
	Connect() error
	Disconnect()
	PublishGatePass(adminID uint, visitor *models.Visitor) error
	PublishBookingDecision(adminID uint, booking *models.Booking) error
}

// GateMessage is the wire format for every gate topic
type GateMessage struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

// GateService is a best-effort publisher. When no broker is configured
// the service stays disabled and every publish is a no-op; a gate outage
// must never fail the originating request.
type GateService struct {
	Config  *config.Config
	Client  mqtt.Client
	enabled bool
}

// NewGateService creates a new gate service. The client is only built
// when a broker address is configured.
func NewGateService(cfg *config.Config) InterfaceGateService {
	s := &GateService{Config: cfg}
	if cfg.MQTTBroker == "" {
		return s
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBroker)
	// Unique client ID so multiple server instances do not clash
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetPingTimeout(time.Second * 10)

	s.Client = mqtt.NewClient(opts)
	s.enabled = true
	return s
}

// Connect connects to the MQTT broker. A failure leaves the service
// disabled instead of aborting startup.
func (s *GateService) Connect() error {
	if !s.enabled {
		return nil
	}
	token := s.Client.Connect()
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		s.enabled = false
		logger.Warning("MQTT connect to %s failed, gate publishing disabled: %v", s.Config.MQTTBroker, token.Error())
		return token.Error()
	}
	logger.Info("MQTT connected to %s", s.Config.MQTTBroker)
	return nil
}

// Disconnect closes the broker connection
func (s *GateService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}

// PublishGatePass announces a freshly issued visitor pass on the
// society's gate topic
func (s *GateService) PublishGatePass(adminID uint, visitor *models.Visitor) error {
	return s.publish(adminID, GateMessage{
		Type:      "gate_pass",
		Timestamp: time.Now().UnixMilli(),
		Payload: map[string]any{
			"visitor_id":   visitor.ID,
			"visitor_name": visitor.Name,
			"pass_code":    visitor.PassCode,
			"visit_date":   visitor.VisitDate,
			"status":       visitor.Status,
		},
	})
}

// PublishBookingDecision announces an approved or rejected facility
// booking so notice boards near the facility can refresh
func (s *GateService) PublishBookingDecision(adminID uint, booking *models.Booking) error {
	return s.publish(adminID, GateMessage{
		Type:      "booking_decision",
		Timestamp: time.Now().UnixMilli(),
		Payload: map[string]any{
			"booking_id": booking.ID,
			"facility":   booking.FacilityName,
			"date":       booking.BookingDate,
			"slot":       booking.TimeSlot,
			"status":     booking.Status,
		},
	})
}

func (s *GateService) publish(adminID uint, msg GateMessage) error {
	if !s.enabled || s.Client == nil || !s.Client.IsConnected() {
		return nil
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("society/%d/gate", adminID)
	token := s.Client.Publish(topic, 1, false, data)
	if !token.WaitTimeout(3 * time.Second) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	return token.Error()
}
