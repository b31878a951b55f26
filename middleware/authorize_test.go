// api/middleware/authorize_test.go
package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/atlas-hrms/atlas/api/authz/engine"
	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/middleware"
)

type staticStore struct {
	roles []string
}

func (s *staticStore) RolesForUser(ctx context.Context, userID uint) ([]string, error) {
	return s.roles, nil
}

func (s *staticStore) PermissionsForRoles(ctx context.Context, roles []string) ([]string, error) {
	return nil, nil
}

func (s *staticStore) MenusForAccess(ctx context.Context, roles, permissions []string) ([]string, error) {
	return nil, nil
}

func (s *staticStore) LeaveOwner(ctx context.Context, id uint) (uint, error)          { return 0, nil }
func (s *staticStore) DocumentUploader(ctx context.Context, id uint) (uint, error)    { return 0, nil }
func (s *staticStore) AttendanceSubject(ctx context.Context, id uint) (uint, error)   { return 0, nil }
func (s *staticStore) PayslipEmployee(ctx context.Context, id uint) (uint, error)     { return 0, nil }
func (s *staticStore) RequisitionRequester(ctx context.Context, id uint) (uint, error) { return 0, nil }

func setupGatedRouter(t *testing.T, store *staticStore, callerID uint) *gin.Engine {
	t.Helper()
	registry := engine.NewRegistry()
	registry.Register("GET", "/api/v1/users", authz_model.AccessRule{Roles: []string{engine.RoleAdmin}})
	registry.Register("GET", "/api/v1/ping", authz_model.AccessRule{Public: true})

	cache := engine.NewResolutionCache(time.Minute)
	t.Cleanup(cache.Stop)

	evaluator := engine.NewEvaluator(
		registry,
		engine.NewPermissionResolver(store, time.Second),
		cache,
		engine.NewOwnershipResolver(store),
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if callerID != 0 {
			c.Set("userID", callerID)
		}
		c.Next()
	})
	r.Use(middleware.Authorize(evaluator))
	r.GET("/api/v1/users", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuthorizeMiddleware(t *testing.T) {
	logger.InitLogger("")
	defer logger.Sync()

	t.Run("PublicRouteAnonymous", func(t *testing.T) {
		router := setupGatedRouter(t, &staticStore{}, 0)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GatedRouteAnonymousIs401", func(t *testing.T) {
		router := setupGatedRouter(t, &staticStore{}, 0)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GatedRouteWrongRoleIs403", func(t *testing.T) {
		router := setupGatedRouter(t, &staticStore{roles: []string{engine.RoleEmployee}}, 7)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), authz_model.ReasonInsufficientRole)
	})

	t.Run("GatedRouteAllowed", func(t *testing.T) {
		router := setupGatedRouter(t, &staticStore{roles: []string{engine.RoleAdmin}}, 7)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UnmappedRouteIs403", func(t *testing.T) {
		router := setupGatedRouter(t, &staticStore{roles: []string{engine.RoleAdmin}}, 7)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/secret", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
