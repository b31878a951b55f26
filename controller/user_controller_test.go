// api/controller/user_controller_test.go
package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/atlas-hrms/atlas/api/controller"
	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
)

// fakeUserService is a hand-rolled stand-in for service.IUserService.
type fakeUserService struct {
	createFn func(ctx context.Context, user model.User, password string, creatorID uint) (*model.User, error)
	listFn   func(ctx context.Context, criteria model.UserSearchCriteria) ([]model.User, error)
}

func (f *fakeUserService) CreateUser(ctx context.Context, user model.User, password string, creatorID uint) (*model.User, error) {
	return f.createFn(ctx, user, password, creatorID)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, user model.User, updaterID uint) (*model.User, error) {
	return nil, nil
}

func (f *fakeUserService) DeleteUser(ctx context.Context, userID uint, deleterID uint) error {
	return nil
}

func (f *fakeUserService) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	return nil, nil
}

func (f *fakeUserService) ListUsers(ctx context.Context, criteria model.UserSearchCriteria) ([]model.User, error) {
	return f.listFn(ctx, criteria)
}

func (f *fakeUserService) AssignRoles(ctx context.Context, userID uint, roleIDs []uint, assignerID uint) (*model.User, error) {
	return nil, nil
}

// fakeAttendanceService satisfies service.IAttendanceService for routes this
// file never exercises.
type fakeAttendanceService struct{}

func (fakeAttendanceService) ClockIn(ctx context.Context, userID uint) (*model.AttendanceRecord, error) {
	return nil, nil
}

func (fakeAttendanceService) ClockOut(ctx context.Context, userID uint) (*model.AttendanceRecord, error) {
	return nil, nil
}

func (fakeAttendanceService) GetRecord(ctx context.Context, recordID uint) (*model.AttendanceRecord, error) {
	return nil, nil
}

func (fakeAttendanceService) ListRecordsForUser(ctx context.Context, userID uint, from, to time.Time) ([]model.AttendanceRecord, error) {
	return nil, nil
}

func setupUserRouter(svc *fakeUserService, callerID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if callerID != 0 {
			c.Set("userID", callerID)
		}
		c.Next()
	})
	api := r.Group("/api/v1")
	controller.NewUserController(svc, fakeAttendanceService{}).RegisterRoutes(api)
	return r
}

func TestUserController(t *testing.T) {
	logger.InitLogger("")
	defer logger.Sync()

	t.Run("ListUsers_SearchFilters", func(t *testing.T) {
		svc := &fakeUserService{
			listFn: func(_ context.Context, criteria model.UserSearchCriteria) ([]model.User, error) {
				assert.Equal(t, "smith", criteria.Name)
				assert.Equal(t, uint(4), criteria.DepartmentID)
				assert.Equal(t, 10, criteria.Limit)
				assert.Equal(t, 20, criteria.Offset)
				return []model.User{{ID: 5, Name: "Anna Smith"}}, nil
			},
		}
		router := setupUserRouter(svc, 3)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users?name=smith&department_id=4&limit=10&offset=20", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []model.User
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 1)
		assert.Equal(t, uint(5), got[0].ID)
	})

	t.Run("ListUsers_InvalidDepartmentID", func(t *testing.T) {
		svc := &fakeUserService{}
		router := setupUserRouter(svc, 3)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users?department_id=sales", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CreateUser_DuplicateUsername", func(t *testing.T) {
		svc := &fakeUserService{
			createFn: func(_ context.Context, _ model.User, _ string, _ uint) (*model.User, error) {
				return nil, atlas_errors.ErrUserConflict
			},
		}
		router := setupUserRouter(svc, 3)

		body := strings.NewReader(`{"name":"Anna Smith","username":"asha","email":"asha@example.com","password":"s3cretpass"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/users", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
