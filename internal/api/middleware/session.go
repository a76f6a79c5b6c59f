package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/shopnexus/storefront/internal/api/metrics"
)

const sessionContextKey = "session_id"

// Session guarantees every request carries a valid visitor session: it reads
// the signed session cookie, verifies the HS256 signature, and mints a fresh
// session when the cookie is missing, tampered with, or expired. The session
// ID is injected into the echo context for handlers.
//
// The cookie identifies the visitor only; the upstream token it maps to
// lives in the session store, never in the cookie.
func Session(secret, cookieName string, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if cookie, err := c.Cookie(cookieName); err == nil {
				sid = parseSessionCookie(cookie.Value, secret)
			}

			if sid == "" {
				sid = newSessionID()
				signed, err := signSessionCookie(sid, secret, ttl)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "failed to establish session")
				}
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    signed,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				metrics.SessionsIssuedTotal.Inc()
			}

			c.Set(sessionContextKey, sid)
			return next(c)
		}
	}
}

// SessionID extracts the session ID injected by the Session middleware.
// Empty only if the middleware did not run.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionContextKey).(string)
	return sid
}

// parseSessionCookie returns the sid claim, or "" for any invalid cookie.
func parseSessionCookie(value, secret string) string {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

func signSessionCookie(sid, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// newSessionID returns 16 random bytes hex-encoded.
func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic("session: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
