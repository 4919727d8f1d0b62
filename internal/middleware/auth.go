package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

const identityKey = "identity"

// Auth validates the bearer token and stores the caller identity in
// the request context. Requests without a valid token are rejected.
func Auth(jwtSecret string) ginext.HandlerFunc {
	secret := []byte(jwtSecret)

	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authentication required"})
			return
		}

		identity, err := parseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the admin
// role. Must run after Auth.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin access required"})
			return
		}

		c.Next()
	}
}

// IdentityFrom returns the authenticated caller set by Auth.
func IdentityFrom(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}

func parseToken(raw string, secret []byte) (domain.Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	accountID, _ := claims["account_id"].(string)
	role, _ := claims["role"].(string)
	if accountID == "" || role == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	return domain.Identity{AccountID: accountID, Role: domain.Role(role)}, nil
}
