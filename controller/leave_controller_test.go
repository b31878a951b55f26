// api/controller/leave_controller_test.go
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

// fakeLeaveService is a hand-rolled stand-in for service.ILeaveService.
type fakeLeaveService struct {
	applyFn       func(ctx context.Context, leave model.LeaveApplication) (*model.LeaveApplication, error)
	getFn         func(ctx context.Context, leaveID uint) (*model.LeaveApplication, error)
	reviewFn      func(ctx context.Context, leaveID uint, approve bool, reviewerID uint) (*model.LeaveApplication, error)
	balanceFn     func(ctx context.Context, userID uint, year int) (int, error)
	listForUserFn func(ctx context.Context, userID uint) ([]model.LeaveApplication, error)
}

func (f *fakeLeaveService) ApplyForLeave(ctx context.Context, leave model.LeaveApplication) (*model.LeaveApplication, error) {
	return f.applyFn(ctx, leave)
}

func (f *fakeLeaveService) GetLeave(ctx context.Context, leaveID uint) (*model.LeaveApplication, error) {
	return f.getFn(ctx, leaveID)
}

func (f *fakeLeaveService) ListLeaves(ctx context.Context, status string, limit, offset int) ([]model.LeaveApplication, error) {
	return nil, nil
}

func (f *fakeLeaveService) ListLeavesForUser(ctx context.Context, userID uint) ([]model.LeaveApplication, error) {
	return f.listForUserFn(ctx, userID)
}

func (f *fakeLeaveService) ReviewLeave(ctx context.Context, leaveID uint, approve bool, reviewerID uint) (*model.LeaveApplication, error) {
	return f.reviewFn(ctx, leaveID, approve, reviewerID)
}

func (f *fakeLeaveService) LeaveBalance(ctx context.Context, userID uint, year int) (int, error) {
	return f.balanceFn(ctx, userID, year)
}

func setupLeaveRouter(svc *fakeLeaveService, callerID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if callerID != 0 {
			c.Set("userID", callerID)
		}
		c.Next()
	})
	api := r.Group("/api/v1")
	controller.NewLeaveController(svc).RegisterRoutes(api)
	return r
}

func TestLeaveController(t *testing.T) {
	logger.InitLogger("")
	defer logger.Sync()

	t.Run("ApplyForLeave_Success", func(t *testing.T) {
		svc := &fakeLeaveService{
			applyFn: func(_ context.Context, leave model.LeaveApplication) (*model.LeaveApplication, error) {
				assert.Equal(t, uint(7), leave.UserID)
				leave.ID = 17
				leave.Status = model.StatusPending
				return &leave, nil
			},
		}
		router := setupLeaveRouter(svc, 7)

		body := strings.NewReader(`{"type":"casual","start_date":"2026-09-01T00:00:00Z","end_date":"2026-09-03T00:00:00Z","reason":"trip"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/leaves", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got model.LeaveApplication
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(17), got.ID)
		assert.Equal(t, model.StatusPending, got.Status)
	})

	t.Run("ApplyForLeave_InvalidData", func(t *testing.T) {
		svc := &fakeLeaveService{
			applyFn: func(_ context.Context, _ model.LeaveApplication) (*model.LeaveApplication, error) {
				return nil, atlas_errors.ErrInvalidLeaveData
			},
		}
		router := setupLeaveRouter(svc, 7)

		body := strings.NewReader(`{"type":"casual","start_date":"2026-09-03T00:00:00Z","end_date":"2026-09-01T00:00:00Z"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/leaves", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetLeave_NotFound", func(t *testing.T) {
		svc := &fakeLeaveService{
			getFn: func(_ context.Context, _ uint) (*model.LeaveApplication, error) {
				return nil, atlas_errors.ErrLeaveNotFound
			},
		}
		router := setupLeaveRouter(svc, 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/leaves/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("MyLeaves_Success", func(t *testing.T) {
		svc := &fakeLeaveService{
			listForUserFn: func(_ context.Context, userID uint) ([]model.LeaveApplication, error) {
				assert.Equal(t, uint(7), userID)
				return []model.LeaveApplication{
					{ID: 11, UserID: userID, Status: model.StatusApproved},
					{ID: 12, UserID: userID, Status: model.StatusPending},
				}, nil
			},
		}
		router := setupLeaveRouter(svc, 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/leaves/mine", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []model.LeaveApplication
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, uint(11), got[0].ID)
	})

	t.Run("MyLeaves_Anonymous", func(t *testing.T) {
		svc := &fakeLeaveService{}
		router := setupLeaveRouter(svc, 0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/leaves/mine", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ReviewLeave_Success", func(t *testing.T) {
		svc := &fakeLeaveService{
			reviewFn: func(_ context.Context, leaveID uint, approve bool, reviewerID uint) (*model.LeaveApplication, error) {
				assert.Equal(t, uint(17), leaveID)
				assert.True(t, approve)
				assert.Equal(t, uint(3), reviewerID)
				return &model.LeaveApplication{
					ID:         leaveID,
					Status:     model.StatusApproved,
					ReviewedBy: &reviewerID,
					StartDate:  time.Now(),
				}, nil
			},
		}
		router := setupLeaveRouter(svc, 3)

		body := strings.NewReader(`{"approve":true}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/leaves/17/status", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ReviewLeave_AlreadyReviewed", func(t *testing.T) {
		svc := &fakeLeaveService{
			reviewFn: func(_ context.Context, _ uint, _ bool, _ uint) (*model.LeaveApplication, error) {
				return nil, atlas_errors.ErrLeaveAlreadyReviewed
			},
		}
		router := setupLeaveRouter(svc, 3)

		body := strings.NewReader(`{"approve":false}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/leaves/17/status", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("LeaveBalance_Success", func(t *testing.T) {
		svc := &fakeLeaveService{
			balanceFn: func(_ context.Context, userID uint, year int) (int, error) {
				assert.Equal(t, uint(7), userID)
				return 12, nil
			},
		}
		router := setupLeaveRouter(svc, 7)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/leaves/balance", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"approved_days":12`)
	})

	t.Run("LeaveBalance_Anonymous", func(t *testing.T) {
		router := setupLeaveRouter(&fakeLeaveService{}, 0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/leaves/balance", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
