package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func runSession(t *testing.T, cookie *http.Cookie) (sid string, rec *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(testSecret, "storefront_session", time.Hour)(func(c echo.Context) error {
		sid = SessionID(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return sid, rec
}

func TestSession_MintsCookieWhenMissing(t *testing.T) {
	sid, rec := runSession(t, nil)

	if sid == "" {
		t.Fatal("expected a session ID to be injected")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "storefront_session" {
		t.Fatalf("expected a session cookie to be set, got %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if got := parseSessionCookie(cookies[0].Value, testSecret); got != sid {
		t.Fatalf("cookie sid %q does not match injected sid %q", got, sid)
	}
}

func TestSession_ReusesValidCookie(t *testing.T) {
	signed, err := signSessionCookie("sid-known", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	sid, rec := runSession(t, &http.Cookie{Name: "storefront_session", Value: signed})

	if sid != "sid-known" {
		t.Fatalf("expected existing sid to be reused, got %q", sid)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("valid session must not be reissued")
	}
}

func TestSession_ReplacesTamperedCookie(t *testing.T) {
	signed, err := signSessionCookie("sid-known", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	sid, rec := runSession(t, &http.Cookie{Name: "storefront_session", Value: signed})

	if sid == "" || sid == "sid-known" {
		t.Fatalf("tampered cookie must yield a fresh sid, got %q", sid)
	}
	if len(rec.Result().Cookies()) != 1 {
		t.Fatal("expected a replacement cookie")
	}
}

func TestSession_ReplacesExpiredCookie(t *testing.T) {
	claims := jwt.MapClaims{
		"sid": "sid-old",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	sid, _ := runSession(t, &http.Cookie{Name: "storefront_session", Value: signed})

	if sid == "" || sid == "sid-old" {
		t.Fatalf("expired cookie must yield a fresh sid, got %q", sid)
	}
}
