package middleware

import (
	"errors"
	"strings"

	"espaco_eventos/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RoleContextKey is where the resolved caller role is stored on the request
// context.
const RoleContextKey = "caller_role"

// RoleResolver resolves the caller's role from a Bearer token with a `role`
// claim. Anything that fails to verify resolves to client: an anonymous or
// forged caller gets the restricted price surface, never an error.
func RoleResolver(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(RoleContextKey, resolveRole(c.GetHeader("Authorization"), secret))
		c.Next()
	}
}

// RoleFrom reads the resolved role off the request context, defaulting to
// client when the resolver did not run.
func RoleFrom(c *gin.Context) entities.Role {
	if v, ok := c.Get(RoleContextKey); ok {
		if role, ok := v.(entities.Role); ok {
			return role
		}
	}
	return entities.RoleClient
}

func resolveRole(authorization, secret string) entities.Role {
	if secret == "" {
		return entities.RoleClient
	}
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(authorization), "Bearer"))
	if token == "" {
		return entities.RoleClient
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return entities.RoleClient
	}

	if role, _ := claims["role"].(string); role == string(entities.RoleAdmin) {
		return entities.RoleAdmin
	}
	return entities.RoleClient
}
