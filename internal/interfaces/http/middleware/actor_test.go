package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/auth"
	"github.com/erp/stockflow/internal/infrastructure/config"
	"github.com/erp/stockflow/internal/infrastructure/logger"
	"github.com/erp/stockflow/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	s, err := auth.NewJWTService(config.AuthConfig{
		Enabled:               true,
		JWTSecret:             "test-secret-key-at-least-32-chars",
		Issuer:                "test-issuer",
		AccessTokenExpiration: 15 * time.Minute,
	})
	require.NoError(t, err)
	return s
}

func actorRouter(t *testing.T, cfg ActorConfig, requireActor bool) (*gin.Engine, *stockorder.Actor) {
	t.Helper()
	seen := &stockorder.Actor{}
	r := gin.New()
	r.Use(RequestID(), ActorMiddleware(cfg))
	if requireActor {
		r.Use(RequireActor())
	}
	r.GET("/test", func(c *gin.Context) {
		if a, ok := GetActor(c); ok {
			*seen = a
			assert.Equal(t, a.ID, logger.GetActorID(c.Request.Context()))
		}
		c.Status(http.StatusOK)
	})
	return r, seen
}

func TestActorMiddleware_BearerToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	token, _, err := jwtService.GenerateAccessToken("u-7", "Sam")
	require.NoError(t, err)

	r, seen := actorRouter(t, ActorConfig{Validator: jwtService}, true)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, stockorder.Actor{ID: "u-7", Name: "Sam"}, *seen)
}

func TestActorMiddleware_InvalidToken(t *testing.T) {
	r, _ := actorRouter(t, ActorConfig{Validator: newTestJWTService(t)}, false)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+"garbage")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrCodeTokenInvalid, body.Error.Code)
	assert.NotEmpty(t, body.Error.RequestID)
}

func TestActorMiddleware_MalformedHeader(t *testing.T) {
	r, _ := actorRouter(t, ActorConfig{Validator: newTestJWTService(t)}, false)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(AuthHeaderKey, "Basic abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestActorMiddleware_HeadersWhenAuthDisabled(t *testing.T) {
	r, seen := actorRouter(t, ActorConfig{}, true)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(UserIDHeader, "u-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, stockorder.Actor{ID: "u-1", Name: "u-1"}, *seen)
}

func TestActorMiddleware_HeadersIgnoredWhenAuthEnabled(t *testing.T) {
	r, _ := actorRouter(t, ActorConfig{Validator: newTestJWTService(t)}, true)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(UserIDHeader, "spoofed")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireActor_Missing(t *testing.T) {
	r, _ := actorRouter(t, ActorConfig{}, true)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrCodeUnauthorized, body.Error.Code)
}

func TestActorMiddleware_OptionalWithoutRequire(t *testing.T) {
	r, seen := actorRouter(t, ActorConfig{}, false)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, seen.ID)
}
