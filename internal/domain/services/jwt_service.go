package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
	"github.com/Ayushman2005/SocietyPro/utils"
)

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(userID uint, role models.Role, adminID uint) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	Login(email, password string, role models.Role) (*LoginResult, error)
}

// LoginResult represents a successful login
type LoginResult struct {
	Token   string      `json:"token"`
	UserID  uint        `json:"user_id"`
	Role    models.Role `json:"role"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	AdminID uint        `json:"admin_id"` // owning admin for residents, own id for admins
}

// JWTClaims defines the token claim structure. AdminID carries the tenancy
// scope: an admin's own id, or the owning admin of a resident.
type JWTClaims struct {
	UserID  uint        `json:"user_id"`
	Role    models.Role `json:"role"`
	AdminID uint        `json:"admin_id"`
	jwt.RegisteredClaims
}

// JWTService provides token issuing and validation
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "societypro-server",
		DB:        db,
	}
}

// GenerateToken generates a signed token valid for 24 hours
func (s *JWTService) GenerateToken(userID uint, role models.Role, adminID uint) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		UserID:  userID,
		Role:    role,
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses and validates a token string
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims returns the typed claims of a valid token
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// Login verifies credentials against the account table selected by role
// and issues a token on success
func (s *JWTService) Login(email, password string, role models.Role) (*LoginResult, error) {
	switch role {
	case models.RoleAdmin:
		var admin models.Admin
		if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
			return nil, errors.New("invalid credentials")
		}
		if !utils.CheckPasswordHash(password, admin.Password) {
			return nil, errors.New("invalid credentials")
		}
		token, err := s.GenerateToken(admin.ID, models.RoleAdmin, admin.ID)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			Token:   token,
			UserID:  admin.ID,
			Role:    models.RoleAdmin,
			Name:    admin.Name,
			Email:   admin.Email,
			AdminID: admin.ID,
		}, nil

	case models.RoleResident:
		var resident models.Resident
		if err := s.DB.Where("email = ?", email).First(&resident).Error; err != nil {
			return nil, errors.New("invalid credentials")
		}
		if !utils.CheckPasswordHash(password, resident.Password) {
			return nil, errors.New("invalid credentials")
		}
		token, err := s.GenerateToken(resident.ID, models.RoleResident, resident.AdminID)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			Token:   token,
			UserID:  resident.ID,
			Role:    models.RoleResident,
			Name:    resident.Name,
			Email:   resident.Email,
			AdminID: resident.AdminID,
		}, nil

	default:
		return nil, errors.New("unknown role")
	}
}
