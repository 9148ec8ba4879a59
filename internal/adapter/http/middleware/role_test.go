package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"espaco_eventos/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func resolvedRole(t *testing.T, secret, authorization string) entities.Role {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got entities.Role
	r := gin.New()
	r.Use(RoleResolver(secret))
	r.GET("/", func(c *gin.Context) {
		got = RoleFrom(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return got
}

func TestRoleResolver(t *testing.T) {
	t.Run("admin token", func(t *testing.T) {
		token := signedToken(t, testSecret, "admin")
		if role := resolvedRole(t, testSecret, "Bearer "+token); role != entities.RoleAdmin {
			t.Fatalf("expected admin, got %s", role)
		}
	})

	t.Run("client token", func(t *testing.T) {
		token := signedToken(t, testSecret, "client")
		if role := resolvedRole(t, testSecret, "Bearer "+token); role != entities.RoleClient {
			t.Fatalf("expected client, got %s", role)
		}
	})

	t.Run("no token resolves to client", func(t *testing.T) {
		if role := resolvedRole(t, testSecret, ""); role != entities.RoleClient {
			t.Fatalf("expected client, got %s", role)
		}
	})

	t.Run("wrong secret resolves to client", func(t *testing.T) {
		token := signedToken(t, "other-secret", "admin")
		if role := resolvedRole(t, testSecret, "Bearer "+token); role != entities.RoleClient {
			t.Fatalf("forged token must resolve to client, got %s", role)
		}
	})

	t.Run("garbage token resolves to client", func(t *testing.T) {
		if role := resolvedRole(t, testSecret, "Bearer not.a.token"); role != entities.RoleClient {
			t.Fatalf("expected client, got %s", role)
		}
	})

	t.Run("no secret configured never grants admin", func(t *testing.T) {
		token := signedToken(t, testSecret, "admin")
		if role := resolvedRole(t, "", "Bearer "+token); role != entities.RoleClient {
			t.Fatalf("expected client without a secret, got %s", role)
		}
	})
}

func TestRoleFrom_DefaultsToClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if role := RoleFrom(c); role != entities.RoleClient {
		t.Fatalf("expected client default, got %s", role)
	}
}
