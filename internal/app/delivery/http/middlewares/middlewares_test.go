package middlewares

import (
	"context"
	"errors"
	"lunysse-service/internal/app/config"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/dto/requests"
	"lunysse-service/internal/pkg/dto/responses"
	"lunysse-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) ParseToken(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func newTestMiddlewares(authUsecase *MockAuthUsecase) *Middlewares {
	return NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{
		App: config.App{MaxRequests: 100, RequestTimeoutInSeconds: 1, RequestBodyLimitInMegabyte: 1},
	})
}

func TestAuthenticate(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	m := newTestMiddlewares(authUsecase)

	var seen models.Session
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(models.Session)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token", func(t *testing.T) {
		authUsecase.On("ParseToken", mock.Anything, "good-token").
			Return(&models.Session{PsychologistID: "psy-1", Email: "ana@lunysse.com"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "psy-1", seen.PsychologistID)
	})

	t.Run("Missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		authUsecase.On("ParseToken", mock.Anything, "bad-token").
			Return(nil, exceptions.ErrTokenInvalidOrExpired(errors.New("expired"))).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bad-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	authUsecase.AssertExpectations(t)
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "client-id", seen)
	assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))

	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRequestTimeout(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))

	var deadline time.Time
	var ok bool
	handler := m.RequestTimeout(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}

func TestRateLimiter(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), new(MockAuthUsecase), &config.InternalConfig{App: config.App{MaxRequests: 2}})

	handler := m.RateLimiter()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
