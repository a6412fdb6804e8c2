package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newAuthorizeRequest(idParam string, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/authorize-request/"+idParam, strings.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", idParam)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// 到达 repository 之前就应该被边界校验拦下来的输入
func TestAuthorizeRequestRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name    string
		idParam string
		body    string
	}{
		{name: "non numeric id", idParam: "abc", body: `{"authorized": true}`},
		{name: "zero id", idParam: "0", body: `{"authorized": true}`},
		{name: "negative id", idParam: "-3", body: `{"authorized": true}`},
		{name: "authorized not a boolean", idParam: "1", body: `{"authorized": "yes"}`},
		{name: "authorized missing", idParam: "1", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.AuthorizeRequest(rec, newAuthorizeRequest(tt.idParam, tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestMarkNotificationReadRejectsBadID(t *testing.T) {
	h := newTestHandler(t)

	for _, idParam := range []string{"abc", "0", "-1", "1.5"} {
		req := httptest.NewRequest(http.MethodPatch, "/notifications/"+idParam+"/read", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", idParam)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rec := httptest.NewRecorder()
		h.MarkNotificationRead(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q should be rejected", idParam)
	}
}
