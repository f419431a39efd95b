package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"

	"github.com/renascerfit/coach/internal/app/service/guard"
	cfgpkg "github.com/renascerfit/coach/pkg/config"
	"github.com/renascerfit/coach/pkg/logctx"
	"github.com/renascerfit/coach/pkg/response"
)

// SessionKey is the gin context key holding the authenticated *guard.Session.
const SessionKey = "session"

// SessionClaims are the claims of the HS256 session token issued by the
// auth provider. The role is intentionally absent: roles are looked up in
// the database so a stale token cannot grant admin access.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// AuthMiddleware verifies the Bearer session token and attaches the
// session to the request. Invalid or missing tokens end the request with
// an unauthorized envelope; no downstream handler runs.
func AuthMiddleware(cfg *cfgpkg.Config, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessionFromRequest(c, cfg.Auth.JWTSecret)
		if err != nil {
			log.Infow("auth_rejected", "path", c.FullPath(), "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, nil))
			return
		}

		c.Set(SessionKey, sess)
		// mirror user id into request context for log enrichment
		ctx := context.WithValue(c.Request.Context(), logctx.UserIDKey, sess.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func sessionFromRequest(c *gin.Context, secret string) (*guard.Session, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, fmt.Errorf("missing bearer token")
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	var claims SessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid session token")
	}
	return &guard.Session{UserID: claims.Subject, Email: claims.Email}, nil
}

// SessionFrom returns the session attached by AuthMiddleware, nil if absent.
func SessionFrom(c *gin.Context) *guard.Session {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(*guard.Session); ok {
			return s
		}
	}
	return nil
}
