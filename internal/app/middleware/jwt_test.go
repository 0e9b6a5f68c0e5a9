package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Ayushman2005/SocietyPro/internal/app/middleware"
	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, services.InterfaceJWTService) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	cfg := &config.Config{JWTSecretKey: "unit-test-secret"}
	middleware.InitAuthMiddleware(cfg, db)

	r := gin.New()
	r.GET("/admin-only", middleware.AuthenticateAdmin(), func(c *gin.Context) {
		adminID := c.MustGet("adminID").(uint)
		c.JSON(http.StatusOK, gin.H{"admin_id": adminID})
	})
	r.GET("/resident-only", middleware.AuthenticateResident(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, services.NewJWTService(cfg, db)
}

func TestAuthRequiresHeader(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthEnforcesRole(t *testing.T) {
	r, jwtService := setupAuthRouter(t)

	residentToken, err := jwtService.GenerateToken(42, models.RoleResident, 7)
	assert.NoError(t, err)

	// A resident token cannot open an admin route
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+residentToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// But it opens the resident route
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/resident-only", nil)
	req.Header.Set("Authorization", "Bearer "+residentToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthExposesTenancyScope(t *testing.T) {
	r, jwtService := setupAuthRouter(t)

	adminToken, err := jwtService.GenerateToken(3, models.RoleAdmin, 3)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":3`)
}
