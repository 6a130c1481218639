package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
	"github.com/Bhavuk-Devex/AVO/internal/mocks"
)

func newLimitedRouter(t *testing.T, limiter *RateLimiter, policy RateLimitPolicy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/signin", limiter.Limit(policy), func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil || !strings.Contains(string(body), `"email"`) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func signinRequest(email, ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{"email":"`+email+`","password":"pw"}`))
	req.RemoteAddr = ip + ":5678"
	return req
}

func TestRateLimiter_EmailLimit(t *testing.T) {
	store := mocks.NewMockRateLimitStore()
	limiter := NewRateLimiter(store, responses.NewWriter(nil, false), nil, nil)
	router := newLimitedRouter(t, limiter, NewRateLimitPolicy("signin", time.Minute, 0, 2))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, signinRequest("Blocked@Example.com ", "1.2.3.4"))

		if i < 2 {
			require.Equal(t, http.StatusOK, rec.Code, "attempt %d", i)
			continue
		}
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many requests")
	}

	key := "rl:email:signin:" + hashValue("blocked@example.com")
	assert.Equal(t, int64(3), store.Count(key))
}

func TestRateLimiter_IPLimit(t *testing.T) {
	store := mocks.NewMockRateLimitStore()
	limiter := NewRateLimiter(store, responses.NewWriter(nil, false), nil, nil)
	router := newLimitedRouter(t, limiter, NewRateLimitPolicy("signin", time.Minute, 1, 0))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signinRequest("a@x.io", "5.6.7.8"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, signinRequest("b@x.io", "5.6.7.8"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, signinRequest("b@x.io", "9.9.9.9"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	tests := []struct {
		name    string
		limiter *RateLimiter
		policy  RateLimitPolicy
	}{
		{name: "no store", limiter: NewRateLimiter(nil, responses.NewWriter(nil, false), nil, nil), policy: NewRateLimitPolicy("signin", time.Minute, 1, 1)},
		{name: "zero limits", limiter: NewRateLimiter(mocks.NewMockRateLimitStore(), responses.NewWriter(nil, false), nil, nil), policy: NewRateLimitPolicy("signin", time.Minute, 0, 0)},
		{name: "zero window", limiter: NewRateLimiter(mocks.NewMockRateLimitStore(), responses.NewWriter(nil, false), nil, nil), policy: NewRateLimitPolicy("signin", 0, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newLimitedRouter(t, tt.limiter, tt.policy)
			for i := 0; i < 5; i++ {
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, signinRequest("a@x.io", "1.1.1.1"))
				require.Equal(t, http.StatusOK, rec.Code)
			}
		})
	}
}

func TestRateLimiter_StoreFailure(t *testing.T) {
	store := mocks.NewMockRateLimitStore()
	store.HitFunc = func(ctx context.Context, key string, window time.Duration) (int64, error) {
		return 0, errors.New("redis down")
	}
	limiter := NewRateLimiter(store, responses.NewWriter(nil, false), nil, nil)
	router := newLimitedRouter(t, limiter, NewRateLimitPolicy("signin", time.Minute, 5, 5))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signinRequest("a@x.io", "1.1.1.1"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateLimitPolicy_DefaultName(t *testing.T) {
	policy := NewRateLimitPolicy("  ", time.Minute, 1, 1)

	assert.Equal(t, "rl:ip:auth:1.1.1.1", policy.ipKey("1.1.1.1"))
	assert.Equal(t, "rl:email:auth:abc", policy.emailKey("abc"))
}
