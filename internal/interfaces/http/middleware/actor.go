package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/erp/stockflow/internal/infrastructure/auth"
	"github.com/erp/stockflow/internal/infrastructure/logger"
	"github.com/erp/stockflow/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Actor resolution keys
const (
	ActorKey         = "actor"
	AuthHeaderKey    = "Authorization"
	BearerPrefix     = "Bearer "
	UserIDHeader     = "X-User-ID"
	UserNameHeader   = "X-User-Name"
	maxHeaderIDBytes = 100
)

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateAccessToken(token string) (*auth.Claims, error)
}

// ActorConfig configures ActorMiddleware. With a nil Validator the actor
// is read from the X-User-ID and X-User-Name headers.
type ActorConfig struct {
	Validator TokenValidator
}

// ActorMiddleware resolves the acting user for the request. A request with
// no credentials continues without an actor; invalid credentials are
// rejected with 401.
func ActorMiddleware(cfg ActorConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolveActor(c, cfg)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		if actor != nil {
			c.Set(ActorKey, *actor)
			ctx, _ := logger.WithActorID(c.Request.Context(), logger.FromContext(c.Request.Context()), actor.ID)
			c.Request = c.Request.WithContext(ctx)
			annotateSpan(c, actor.ID)
		}
		c.Next()
	}
}

// RequireActor rejects requests for which no actor was resolved
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetActor(c); !ok {
			abortUnauthorized(c, errMissingActor)
			return
		}
		c.Next()
	}
}

// GetActor returns the actor resolved by ActorMiddleware
func GetActor(c *gin.Context) (stockorder.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return stockorder.Actor{}, false
	}
	actor, ok := v.(stockorder.Actor)
	return actor, ok
}

var (
	errMissingActor  = errors.New("authentication required")
	errMalformedAuth = errors.New("invalid authorization header format")
)

func resolveActor(c *gin.Context, cfg ActorConfig) (*stockorder.Actor, error) {
	if cfg.Validator == nil {
		id := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if id == "" {
			return nil, nil
		}
		if len(id) > maxHeaderIDBytes {
			return nil, errMalformedAuth
		}
		name := strings.TrimSpace(c.GetHeader(UserNameHeader))
		if name == "" {
			name = id
		}
		return &stockorder.Actor{ID: id, Name: name}, nil
	}

	header := c.GetHeader(AuthHeaderKey)
	if header == "" {
		return nil, nil
	}
	if !strings.HasPrefix(header, BearerPrefix) {
		return nil, errMalformedAuth
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	if token == "" {
		return nil, errMalformedAuth
	}
	claims, err := cfg.Validator.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}
	return &stockorder.Actor{ID: claims.UserID, Name: claims.DisplayName()}, nil
}

func abortUnauthorized(c *gin.Context, err error) {
	code := dto.ErrCodeUnauthorized
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = dto.ErrCodeTokenExpired
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidClaims),
		errors.Is(err, auth.ErrTokenNotYetValid), errors.Is(err, auth.ErrMissingUserID):
		code = dto.ErrCodeTokenInvalid
	}
	logger.FromContext(c.Request.Context()).Debug("Request rejected", zap.Error(err))
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, err.Error(), GetRequestID(c)))
}
