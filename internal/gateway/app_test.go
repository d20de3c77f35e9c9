package gateway

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/bloghub/internal/gateway/config"
	"github.com/dmitrijs2005/bloghub/internal/logging"
	srvauth "github.com/dmitrijs2005/bloghub/internal/server/auth"
	"github.com/dmitrijs2005/bloghub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bloghub/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	gs "github.com/dmitrijs2005/bloghub/internal/server/grpc"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.UserServiceAddr = "passthrough:///bufnet"
	c.LogLevel = "error"
	c.ShutdownTimeout = time.Second
	return c
}

// startStack runs the user service on the in-memory store behind bufconn and
// returns a gateway router connected to it.
func startStack(t *testing.T) http.Handler {
	t.Helper()

	us := services.NewUserService(
		repomanager.NewMemoryRepositoryManager(),
		srvauth.NewPasswordServiceWithCost(bcrypt.MinCost),
		nil,
	)
	srv := gs.NewGRPCServer("bufnet", logging.Nop{}, us, 4)

	lis := bufconn.Listen(1024 * 1024)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()

	app, err := NewApp(testConfig(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = app.client.Close()
		cancel()
		<-done
	})
	return app.Router()
}

func call(t *testing.T, h http.Handler, method, path, body, token string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestGateway_UserLifecycle(t *testing.T) {
	h := startStack(t)

	code, body := call(t, h, http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, body["users"])

	code, john := call(t, h, http.MethodPost, "/register",
		`{"name":"John Smith","nickname":"John Smith","password":"secret"}`, "")
	require.Equal(t, http.StatusCreated, code, john)
	assert.Equal(t, "johnsmith", john["nickname"])
	assert.Equal(t, float64(0), john["followers"])
	assert.NotContains(t, john, "password")
	token := john["access_token"].(string)

	code, body = call(t, h, http.MethodPost, "/register",
		`{"name":"Other","nickname":"JOHNSMITH","password":"secret"}`, "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Nickname already taken", body["error"])

	code, _ = call(t, h, http.MethodPost, "/register", `{"name":"Bob","nickname":"bob","password":"secret"}`, "")
	require.Equal(t, http.StatusCreated, code)

	code, body = call(t, h, http.MethodPost, "/login", `{"nickname":"johnsmith","password":"wrong"}`, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid nickname or password", body["error"])

	code, body = call(t, h, http.MethodPost, "/login", `{"nickname":"John Smith","password":"secret"}`, "")
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["access_token"])

	code, body = call(t, h, http.MethodPost, "/users/bob/follow", "", token)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(1), body["followers"])

	code, _ = call(t, h, http.MethodPost, "/users/bob/follow", "", token)
	assert.Equal(t, http.StatusConflict, code)

	id := int(john["id"].(float64))
	code, body = call(t, h, http.MethodPut, "/users/id/"+strconv.Itoa(id), `{"about":"writer"}`, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "johnsmith", body["nickname"])
	assert.Equal(t, "writer", body["about"])

	code, body = call(t, h, http.MethodDelete, "/users/johnsmith", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "User successfully deleted", body["message"])

	code, body = call(t, h, http.MethodGet, "/users/bob", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["followers"])

	code, body = call(t, h, http.MethodDelete, "/users/johnsmith", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User not found", body["error"])

	code, body = call(t, h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestGateway_MetricsEndpoint(t *testing.T) {
	h := startStack(t)

	call(t, h, http.MethodGet, "/users", "", "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bloghub_gateway_http_requests_total{method="GET",route="/users",status="200"} 1`)
}

func TestServe_StopsOnCancel(t *testing.T) {
	app, err := NewApp(testConfig())
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, lis) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("gateway did not stop")
	}
}

func TestRun_ListenError(t *testing.T) {
	c := testConfig()
	c.EndpointAddrHTTP = "127.0.0.1:99999"

	app, err := NewApp(c)
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}
