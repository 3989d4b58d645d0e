package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"backend/insurance-platform/app/api/client/request"
	"backend/insurance-platform/app/api/client/response"
	"backend/insurance-platform/app/api/controller"
	"backend/insurance-platform/app/database/constant/user"
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/internal/validator"
	"backend/insurance-platform/app/manager"
)

// fakeUserManager scripts the manager layer per test.
type fakeUserManager struct {
	manager.UserManager

	createFn func(ctx context.Context, req request.CreateUserRequest) (*response.UserResponse, error)
	removeFn func(ctx context.Context, id int64) (*response.UserSummaryResponse, error)
	lockFn   func(ctx context.Context, id int64, reason *string) (*response.UserSummaryResponse, error)
}

func (f *fakeUserManager) Create(ctx context.Context, req request.CreateUserRequest) (*response.UserResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeUserManager) Remove(ctx context.Context, id int64) (*response.UserSummaryResponse, error) {
	return f.removeFn(ctx, id)
}

func (f *fakeUserManager) Lock(ctx context.Context, id int64, reason *string) (*response.UserSummaryResponse, error) {
	return f.lockFn(ctx, id, reason)
}

func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validator.NewValidators(runtime.Resource{})

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newUserController(fake *fakeUserManager) *controller.UserController {
	managers := &manager.Managers{UserManager: fake}
	return controller.NewUserController(managers, runtime.Resource{Logger: zap.NewNop()})
}

func TestUserController_Create(t *testing.T) {
	fake := &fakeUserManager{
		createFn: func(_ context.Context, req request.CreateUserRequest) (*response.UserResponse, error) {
			assert.Equal(t, "jane@example.com", *req.Email)
			return &response.UserResponse{ID: 1, Email: req.Email, Status: user.Active}, nil
		},
	}
	c := newUserController(fake)

	ec, rec := newTestContext(t, http.MethodPost, "/v1/users", `{"email":"jane@example.com","password":"secret-pass"}`)
	err := c.Create(ec)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"jane@example.com"`)
}

func TestUserController_Create_InvalidEmail(t *testing.T) {
	c := newUserController(&fakeUserManager{})

	ec, rec := newTestContext(t, http.MethodPost, "/v1/users", `{"email":"not-an-email"}`)
	err := c.Create(ec)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserController_Remove(t *testing.T) {
	fake := &fakeUserManager{
		removeFn: func(_ context.Context, id int64) (*response.UserSummaryResponse, error) {
			assert.Equal(t, int64(9), id)
			return &response.UserSummaryResponse{ID: id, Status: user.Active}, nil
		},
	}
	c := newUserController(fake)

	ec, rec := newTestContext(t, http.MethodDelete, "/v1/users/9", "")
	ec.SetParamNames("id")
	ec.SetParamValues("9")
	err := c.Remove(ec)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUserController_InvalidPathID(t *testing.T) {
	c := newUserController(&fakeUserManager{})

	ec, rec := newTestContext(t, http.MethodGet, "/v1/users/abc", "")
	ec.SetParamNames("id")
	ec.SetParamValues("abc")
	err := c.FindOne(ec)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserController_Lock_ForwardsReason(t *testing.T) {
	var gotReason *string
	fake := &fakeUserManager{
		lockFn: func(_ context.Context, id int64, reason *string) (*response.UserSummaryResponse, error) {
			gotReason = reason
			locked := true
			return &response.UserSummaryResponse{ID: id, Status: user.Active, IsLocked: &locked}, nil
		},
	}
	c := newUserController(fake)

	ec, rec := newTestContext(t, http.MethodPatch, "/v1/users/3/lock", `{"reason":"chargeback dispute"}`)
	ec.SetParamNames("id")
	ec.SetParamValues("3")
	err := c.Lock(ec)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "chargeback dispute", *gotReason)
}
