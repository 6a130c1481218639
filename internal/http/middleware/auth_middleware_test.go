package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
	"github.com/Bhavuk-Devex/AVO/internal/mocks"
)

func newTestRouter(t *testing.T, tokenSvc domain.TokenService, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mw := NewAuthMW(tokenSvc, responses.NewWriter(nil, false), nil)

	r := gin.New()
	handlers := append([]gin.HandlerFunc{mw.Authenticate()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		switch token {
		case "good":
			return &domain.TokenClaims{UserID: 7, Role: domain.RoleEmployee}, nil
		case "old":
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	router := newTestRouter(t, tokenSvc)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedMsg    string
	}{
		{name: "missing header", expectedStatus: http.StatusUnauthorized, expectedMsg: "Access denied. No token provided."},
		{name: "wrong scheme", header: "Basic abc", expectedStatus: http.StatusUnauthorized, expectedMsg: "Malformed token."},
		{name: "bearer without token", header: "Bearer ", expectedStatus: http.StatusUnauthorized, expectedMsg: "Malformed token."},
		{name: "invalid token", header: "Bearer forged", expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid token."},
		{name: "expired token", header: "Bearer old", expectedStatus: http.StatusUnauthorized, expectedMsg: "Token has expired."},
		{name: "valid token", header: "Bearer good", expectedStatus: http.StatusOK},
		{name: "lower case scheme", header: "bearer good", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.expectedMsg != "" {
				data := body["data"].(map[string]any)
				assert.Equal(t, tt.expectedMsg, data["message"])
				return
			}
			assert.Equal(t, float64(7), body["id"])
			assert.Equal(t, "employee", body["role"])
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		if token == "admin" {
			return &domain.TokenClaims{UserID: 1, Role: domain.RoleBusinessAdmin, BusinessID: func() *uint { v := uint(3); return &v }()}, nil
		}
		return &domain.TokenClaims{UserID: 2, Role: domain.RoleUser}, nil
	}
	mw := NewAuthMW(tokenSvc, responses.NewWriter(nil, false), nil)
	router := newTestRouter(t, tokenSvc, mw.IsBusinessAdmin())

	tests := []struct {
		token          string
		expectedStatus int
	}{
		{token: "admin", expectedStatus: http.StatusOK},
		{token: "user", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRequireRole_MessageNamesRole(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateTokenFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{UserID: 2, Role: domain.RoleUser}, nil
	}
	writer := responses.NewWriter(nil, false)

	tests := []struct {
		role        domain.Role
		expectedMsg string
	}{
		{role: domain.RoleBusinessAdmin, expectedMsg: "Access denied. Business admin role required."},
		{role: domain.RoleEmployee, expectedMsg: "Access denied. Role employee required."},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			router := newTestRouter(t, tokenSvc, RequireRole(tt.role, writer))
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer any")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusForbidden, rec.Code)
			var body struct {
				Data map[string]any `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMsg, body.Data["message"])
		})
	}
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireRole(domain.RoleBusinessAdmin, responses.NewWriter(nil, false)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
}
