package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/go-task-manager/internal/application"
	"github.com/taskhub/go-task-manager/internal/domain/entity"
	handlers "github.com/taskhub/go-task-manager/internal/interface/http"
	"github.com/taskhub/go-task-manager/internal/router"
	"github.com/taskhub/go-task-manager/internal/router/modules"
	"github.com/taskhub/go-task-manager/internal/testutil"
	"github.com/taskhub/go-task-manager/pkg/helpers"
	"github.com/taskhub/go-task-manager/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

// testServer assembles the full router over in-memory repositories.
type testServer struct {
	engine *gin.Engine
	users  *testutil.MemUserRepo
	tasks  *testutil.MemTaskRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := testutil.DiscardLogger()
	users := testutil.NewMemUserRepo()
	tasks := testutil.NewMemTaskRepo(users)

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	cookies := helpers.NewCookie("localhost", false)

	userSvc := application.NewUserService(users, jwt, logger, 6)
	taskSvc := application.NewTaskService(tasks, logger)
	adminSvc := application.NewAdminService(users, tasks, logger)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger, cookies), jwt))
	reg.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt))
	reg.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger), jwt))
	reg.RegisterAll()

	return &testServer{engine: engine, users: users, tasks: tasks}
}

func (ts *testServer) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

// register creates an account over HTTP and returns the session cookie.
func (ts *testServer) register(t *testing.T, name, email, password string) *http.Cookie {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, password)
	w := ts.do(t, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

// registerAdmin seeds an admin directly through the service layer and logs in.
func (ts *testServer) registerAdmin(t *testing.T, email, password string) *http.Cookie {
	t.Helper()

	svc := application.NewUserService(ts.users, helpers.NewJWTManager("test-secret", time.Hour), testutil.DiscardLogger(), 6)
	_, err := svc.Register(context.Background(), application.RegisterInput{
		Name:     "Admin",
		Email:    email,
		Password: password,
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	w := ts.do(t, http.MethodPost, "/api/auth/login", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// envelope decodes the standard API response body.
type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, dest))
}
