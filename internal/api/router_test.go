package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/logging"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(isProduction bool, origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Config{
		IsProduction: isProduction,
		ProdOrigins:  origins,
		JWTManager:   auth.NewJWTManager("secret", time.Minute),
	})
}

func TestHealthzAndRequestID(t *testing.T) {
	r := newTestRouter(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Contains(t, w.Header().Get(logging.RequestIDHeader), "req_")

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(logging.RequestIDHeader, "client-id-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-id-1", w.Header().Get(logging.RequestIDHeader))
}

func TestProtectedRoutesRequireAuthentication(t *testing.T) {
	r := newTestRouter(false, nil)
	id := "9a0e6d3c-4b1a-4f5e-8c2d-7e6f5a4b3c21"

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/me"},
		{http.MethodGet, "/v1/bookings"},
		{http.MethodGet, "/v1/bookings/" + id},
		{http.MethodPost, "/v1/rooms/" + id + "/bookings"},
		{http.MethodPost, "/v1/bookings/" + id + "/pay"},
		{http.MethodGet, "/v1/bookings/" + id + "/demo-pay"},
		{http.MethodPost, "/v1/bookings/" + id + "/demo-pay"},
		{http.MethodGet, "/v1/payments/success?session_id=cs_1"},
		{http.MethodGet, "/v1/payments/cancel"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"authentication required","next":"login"}`, w.Body.String())
		})
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(true, []string{"https://hotel.example"})

	req := httptest.NewRequest(http.MethodOptions, "/v1/hotels", nil)
	req.Header.Set("Origin", "https://hotel.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://hotel.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/hotels", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
