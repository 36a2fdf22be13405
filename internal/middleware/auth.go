package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"TENNIS-TRACKER_BACK-END/internal/apperr"
	"TENNIS-TRACKER_BACK-END/internal/config"
	"TENNIS-TRACKER_BACK-END/internal/utils"
)

// CookieName is the browser cookie carrying the session token.
const CookieName = "token"

// Claims represents the claims in the session token
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed session token binding the user id to an
// absolute expiry of now + cfg.TokenTTL.
func GenerateToken(userID int64, cfg *config.JWTConfig) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken verifies the signature and expiry of a session token and
// returns the embedded user id. Malformed, tampered, and expired tokens all
// fail with the same apperr.ErrInvalidToken so the cause is never exposed.
func ValidateToken(tokenString string, cfg *config.JWTConfig) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrInvalidToken
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return 0, apperr.ErrInvalidToken
	}

	return claims.UserID, nil
}

// AuthMiddleware protects a route with the session cookie. It verifies the
// token and attaches the authenticated user id to the request context; the
// gate itself touches no storage.
func AuthMiddleware(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		userID, err := ValidateToken(cookie.Value, cfg)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	}
}
