package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

// Claims scope a token to one club.
type Claims struct {
	ClubID string `json:"club_id"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for clubID.
func IssueToken(jwtSecret, clubID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ClubID: clubID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clubID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func parseToken(jwtSecret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	return claims, nil
}

// bearerToken reads the Authorization header, falling back to a token query parameter
// for websocket upgrades, which cannot carry headers from a browser.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if token := c.Query("token"); token != "" {
			return token, true
		}
		utils.SendUnauthorized(c, "Authorization header required")
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		utils.SendUnauthorized(c, "Invalid authorization header format")
		return "", false
	}
	return tokenString, true
}

// AuthRequired checks the bearer token and, on routes with a :club_id, that the token
// belongs to that club. With disabled set every request passes.
func AuthRequired(jwtSecret string, disabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if disabled {
			c.Next()
			return
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		claims, err := parseToken(jwtSecret, tokenString)
		if err != nil {
			utils.SendUnauthorized(c, "Invalid or expired token")
			return
		}

		if clubID := c.Param("club_id"); clubID != "" && clubID != claims.ClubID {
			utils.SendForbidden(c, "Token does not grant access to this club")
			return
		}

		c.Set("club_id", claims.ClubID)
		c.Next()
	}
}
