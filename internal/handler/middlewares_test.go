package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/config"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

const testSecret = "test-secret"

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.Expiration = 3600

	h, err := NewHandler(cfg, nil, nil, nil)
	require.NoError(t, err)
	return h
}

func signTestToken(t *testing.T, role domain.Role, sin string, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   sin,
		},
	})
	ss, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return ss
}

func TestAuthMissingToken(t *testing.T) {
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run without a token")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shifts", nil)

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run with a bad token")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shifts", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, domain.RoleEmployee, "zhangwei42", "wrong-secret"))

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBearerToken(t *testing.T) {
	h := newTestHandler(t)

	var gotRole, gotSub string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = r.Context().Value(RoleCtxKey).(string)
		gotSub = r.Context().Value(SubCtxKey).(string)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shifts", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, domain.RoleEmployee, "zhangwei42", testSecret))

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, string(domain.RoleEmployee), gotRole)
	assert.Equal(t, "zhangwei42", gotSub)
}

func TestAuthCookieFallback(t *testing.T) {
	h := newTestHandler(t)

	var gotSub string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = r.Context().Value(SubCtxKey).(string)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shifts", nil)
	req.AddCookie(&http.Cookie{
		Name:  tokenCookieName,
		Value: signTestToken(t, domain.RoleManager, "wangfang3", testSecret),
	})

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, "wangfang3", gotSub)
}

func TestRequiredRole(t *testing.T) {
	h := newTestHandler(t)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	middleware := h.auth(h.RequiredRole([]domain.Role{domain.RoleManager})(next))

	// 员工访问经理接口被拒绝
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, domain.RoleEmployee, "zhangwei42", testSecret))
	middleware.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)

	// 经理放行
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/availability", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, domain.RoleManager, "wangfang3", testSecret))
	middleware.ServeHTTP(rec, req)

	assert.True(t, nextCalled)
}
