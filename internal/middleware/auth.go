package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Jeff1984Sor/app-beach/internal/config"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/session"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextSession  = "session"
)

// Claims are carried by every access token. ID (jti) is the session key.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func AuthMiddleware(cfg *config.Config, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token não informado.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho Authorization inválido.")
			c.Abort()
			return
		}

		var claims Claims
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid || claims.ID == "" {
			httperr.Unauthorized(c, "invalid_token", "Sessão inválida ou expirada.")
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), claims.ID)
		if errors.Is(err, session.ErrNotFound) {
			httperr.Unauthorized(c, "session_revoked", "Sessão encerrada. Faça login novamente.")
			c.Abort()
			return
		}
		if err != nil {
			httperr.Internal(c, "session_lookup_failed", "Erro ao validar sessão.")
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextUserRole, sess.Role)

		c.Next()
	}
}

// CurrentSession returns the session loaded by AuthMiddleware.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

// CurrentUserID is nil outside authenticated routes.
func CurrentUserID(c *gin.Context) *uint {
	sess, ok := CurrentSession(c)
	if !ok {
		return nil
	}
	id := sess.UserID
	return &id
}

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "Acesso não permitido para este perfil.")
		c.Abort()
	}
}
