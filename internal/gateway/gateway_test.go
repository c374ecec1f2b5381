package gateway_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/gateway"
	"shareit/internal/pkg/identity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordedRequest captures what the gateway forwarded to the backend.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	UserID string
	Body   string
}

// backendStub records forwarded requests and answers with a canned
// response.
type backendStub struct {
	server *httptest.Server
	status int
	body   string
	last   *recordedRequest
}

func newBackendStub(status int, body string) *backendStub {
	stub := &backendStub{status: status, body: body}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		stub.last = &recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			UserID: r.Header.Get(identity.Header),
			Body:   string(data),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stub.status)
		_, _ = w.Write([]byte(stub.body))
	}))
	return stub
}

func newGateway(t *testing.T, stub *backendStub) *gin.Engine {
	t.Helper()
	t.Cleanup(stub.server.Close)

	client := gateway.NewClient(stub.server.URL, time.Second, zerolog.Nop())
	return gateway.NewRouter(gateway.NewHandler(client), "")
}

func do(router *gin.Engine, method, target, userID, body string) *httptest.ResponseRecorder {
	var payload io.Reader
	if body != "" {
		payload = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, payload)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(identity.Header, userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestForwarding(t *testing.T) {
	t.Run("relays backend status and body", func(t *testing.T) {
		stub := newBackendStub(http.StatusCreated, `{"id":1,"name":"Alice","email":"alice@example.com"}`)
		router := newGateway(t, stub)

		w := do(router, http.MethodPost, "/users", "", `{"name":"Alice","email":"alice@example.com"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, stub.body, w.Body.String())

		require.NotNil(t, stub.last)
		assert.Equal(t, http.MethodPost, stub.last.Method)
		assert.Equal(t, "/users", stub.last.Path)
		assert.JSONEq(t, `{"name":"Alice","email":"alice@example.com"}`, stub.last.Body)
	})

	t.Run("relays backend errors untouched", func(t *testing.T) {
		stub := newBackendStub(http.StatusConflict, `{"error":"email already in use"}`)
		router := newGateway(t, stub)

		w := do(router, http.MethodPost, "/users", "", `{"name":"Alice","email":"alice@example.com"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, stub.body, w.Body.String())
	})

	t.Run("propagates identity header", func(t *testing.T) {
		stub := newBackendStub(http.StatusOK, `[]`)
		router := newGateway(t, stub)

		w := do(router, http.MethodGet, "/items", "42", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.last)
		assert.Equal(t, "42", stub.last.UserID)
	})

	t.Run("unreachable backend yields 502", func(t *testing.T) {
		stub := newBackendStub(http.StatusOK, "{}")
		stub.server.Close()
		router := newGateway(t, stub)

		w := do(router, http.MethodGet, "/items", "42", "")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestIdentityValidation(t *testing.T) {
	stub := newBackendStub(http.StatusOK, "{}")
	router := newGateway(t, stub)

	t.Run("missing header", func(t *testing.T) {
		w := do(router, http.MethodGet, "/items", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-5"} {
			w := do(router, http.MethodGet, "/items", raw, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, "header=%q", raw)
		}
	})

	assert.Nil(t, stub.last, "invalid requests must not reach the backend")
}

func TestBodyValidation(t *testing.T) {
	stub := newBackendStub(http.StatusOK, "{}")
	router := newGateway(t, stub)

	cases := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"user without email", http.MethodPost, "/users", `{"name":"Alice"}`},
		{"user with bad email", http.MethodPost, "/users", `{"name":"Alice","email":"not-an-email"}`},
		{"user with blank name", http.MethodPost, "/users", `{"name":"   ","email":"alice@example.com"}`},
		{"item without available", http.MethodPost, "/items", `{"name":"drill","description":"cordless"}`},
		{"item with blank name", http.MethodPost, "/items", `{"name":" ","description":"cordless","available":true}`},
		{"blank comment", http.MethodPost, "/items/1/comment", `{"text":"  "}`},
		{"blank request description", http.MethodPost, "/requests", `{"description":""}`},
		{"malformed json", http.MethodPost, "/requests", `{"description":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(router, tc.method, tc.target, "1", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Nil(t, stub.last, "invalid requests must not reach the backend")
}

func TestBookingValidation(t *testing.T) {
	stub := newBackendStub(http.StatusOK, "{}")
	router := newGateway(t, stub)

	stamp := func(t time.Time) string { return t.Format("2006-01-02T15:04:05") }
	future := time.Now().Add(24 * time.Hour)

	t.Run("date range rejected at the edge", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"missing start", `{"itemId":1,"end":"` + stamp(future) + `"}`},
			{"missing end", `{"itemId":1,"start":"` + stamp(future) + `"}`},
			{"start in past", `{"itemId":1,"start":"2020-01-01T10:00:00","end":"` + stamp(future) + `"}`},
			{"end equals start", `{"itemId":1,"start":"` + stamp(future) + `","end":"` + stamp(future) + `"}`},
			{"end before start", `{"itemId":1,"start":"` + stamp(future.Add(time.Hour)) + `","end":"` + stamp(future) + `"}`},
		}
		for _, tc := range cases {
			w := do(router, http.MethodPost, "/bookings", "1", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, tc.name)
		}
		assert.Nil(t, stub.last)
	})

	t.Run("valid booking forwarded", func(t *testing.T) {
		body := `{"itemId":1,"start":"` + stamp(future) + `","end":"` + stamp(future.Add(time.Hour)) + `"}`
		w := do(router, http.MethodPost, "/bookings", "1", body)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.last)
		assert.Equal(t, "/bookings", stub.last.Path)
	})

	t.Run("unknown state rejected", func(t *testing.T) {
		w := do(router, http.MethodGet, "/bookings?state=SOMEDAY", "1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("state normalized and forwarded", func(t *testing.T) {
		w := do(router, http.MethodGet, "/bookings?state=past", "1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.last)
		assert.Equal(t, "state=PAST", stub.last.Query)
	})

	t.Run("absent state defaults to ALL", func(t *testing.T) {
		w := do(router, http.MethodGet, "/bookings/owner", "1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.last)
		assert.Equal(t, "state=ALL", stub.last.Query)
	})

	t.Run("approved must be boolean", func(t *testing.T) {
		for _, target := range []string{"/bookings/1", "/bookings/1?approved=maybe"} {
			w := do(router, http.MethodPatch, target, "1", "")
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
	})

	t.Run("decision forwarded with normalized flag", func(t *testing.T) {
		w := do(router, http.MethodPatch, "/bookings/7?approved=TRUE", "1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.last)
		assert.Equal(t, "/bookings/7", stub.last.Path)
		assert.Equal(t, "approved=true", stub.last.Query)
	})
}

func TestPaginationValidation(t *testing.T) {
	stub := newBackendStub(http.StatusOK, "[]")
	router := newGateway(t, stub)

	t.Run("bad values rejected", func(t *testing.T) {
		for _, target := range []string{
			"/requests/all?from=-1",
			"/requests/all?size=0",
			"/requests/all?from=abc",
		} {
			w := do(router, http.MethodGet, target, "1", "")
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
		}
		assert.Nil(t, stub.last)
	})

	t.Run("defaults forwarded", func(t *testing.T) {
		w := do(router, http.MethodGet, "/requests/all", "1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.last)
		assert.Equal(t, "/requests/all", stub.last.Path)
		assert.Equal(t, "from=0&size=10", stub.last.Query)
	})
}
