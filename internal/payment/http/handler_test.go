package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/payment"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookingID = "9a0e6d3c-4b1a-4f5e-8c2d-7e6f5a4b3c21"

type stubService struct {
	initiation  *payment.Initiation
	initErr     error
	confirmErr  error
	lastSession string
	lastUser    string
}

func (s *stubService) Initiate(_ context.Context, _, userID string) (*payment.Initiation, error) {
	s.lastUser = userID
	return s.initiation, s.initErr
}

func (s *stubService) Confirm(_ context.Context, sessionID, userID string) (*payment.Confirmation, error) {
	s.lastSession = sessionID
	s.lastUser = userID
	if s.confirmErr != nil {
		return nil, s.confirmErr
	}
	return &payment.Confirmation{Outcome: payment.OutcomePaid, Next: response.DestBookingDetail, Message: "ok", BookingID: bookingID}, nil
}

func (s *stubService) DemoConfirm(_ context.Context, id, userID string) (*payment.Confirmation, error) {
	s.lastUser = userID
	return &payment.Confirmation{Outcome: payment.OutcomeAlreadyPaid, Next: response.DestMyBookings, Message: "already", BookingID: id}, nil
}

func (s *stubService) DemoCheckout(_ context.Context, id, userID string) (*payment.DemoCheckout, error) {
	in, _ := booking.ParseDate("2024-01-01")
	out, _ := booking.ParseDate("2024-01-04")
	b := &booking.Booking{
		ID: id, UserID: userID, CheckIn: in, CheckOut: out,
		RoomNumber: "101", HotelName: "Demo Hotel", PricePerNight: decimal.RequireFromString("100"),
	}
	return &payment.DemoCheckout{Booking: b, Amount: b.TotalAmount()}, nil
}

func (s *stubService) Cancel() *payment.Confirmation {
	return &payment.Confirmation{Outcome: payment.OutcomeCanceled, Next: response.DestMyBookings, Message: "Payment canceled."}
}

func setup(t *testing.T, svc payment.Service) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := auth.NewJWTManager("secret", time.Minute)
	r := gin.New()
	RegisterRoutes(r.Group("/v1"), NewHandler(svc), auth.AuthRequired(jwtManager))

	token, err := jwtManager.GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)
	return r, "Bearer " + token
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPayHandler(t *testing.T) {
	svc := &stubService{initiation: &payment.Initiation{
		Next:        response.DestCheckout,
		CheckoutURL: "https://checkout.example/cs_1",
		SessionID:   "cs_1",
	}}
	r, token := setup(t, svc)

	w := do(r, http.MethodPost, "/v1/bookings/"+bookingID+"/pay", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", svc.lastUser)

	var resp InitiateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.DestCheckout, resp.Next)
	assert.Equal(t, "https://checkout.example/cs_1", resp.CheckoutURL)
	assert.Equal(t, bookingID, resp.BookingID)
}

func TestPayHandlerErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: booking.ErrNotFound, code: http.StatusNotFound},
		{name: "invalid amount", err: payment.ErrInvalidAmount, code: http.StatusBadRequest},
		{name: "provider error", err: payment.ErrPaymentFailed.WithCause(assert.AnError), code: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, token := setup(t, &stubService{initErr: tt.err})
			w := do(r, http.MethodPost, "/v1/bookings/"+bookingID+"/pay", token)
			assert.Equal(t, tt.code, w.Code)
		})
	}

	r, _ := setup(t, &stubService{})
	w := do(r, http.MethodPost, "/v1/bookings/"+bookingID+"/pay", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"authentication required","next":"login"}`, w.Body.String())
}

func TestSuccessHandler(t *testing.T) {
	svc := &stubService{}
	r, token := setup(t, svc)

	w := do(r, http.MethodGet, "/v1/payments/success?session_id=cs_42", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cs_42", svc.lastSession)

	var resp ConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, payment.OutcomePaid, resp.Outcome)
	assert.Equal(t, response.DestBookingDetail, resp.Next)

	svc.confirmErr = payment.ErrMissingSession
	w = do(r, http.MethodGet, "/v1/payments/success", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "", svc.lastSession)
}

func TestDemoPayHandlers(t *testing.T) {
	r, token := setup(t, &stubService{})

	w := do(r, http.MethodGet, "/v1/bookings/"+bookingID+"/demo-pay", token)
	require.Equal(t, http.StatusOK, w.Code)
	var screen DemoCheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &screen))
	assert.Equal(t, "300.00", screen.Amount)
	assert.Equal(t, response.DestDemoPay, screen.Next)
	assert.Equal(t, 3, screen.Booking.Nights)

	w = do(r, http.MethodPost, "/v1/bookings/"+bookingID+"/demo-pay", token)
	require.Equal(t, http.StatusOK, w.Code)
	var conf ConfirmationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conf))
	assert.Equal(t, payment.OutcomeAlreadyPaid, conf.Outcome)

	w = do(r, http.MethodGet, "/v1/payments/cancel", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"outcome":"canceled","next":"my_bookings","message":"Payment canceled."}`, w.Body.String())
}
