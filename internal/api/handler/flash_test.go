package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopnexus/storefront/internal/view"
)

// flashValue builds a flash cookie payload the way setFlash does.
func flashValue(t *testing.T, level, text string) string {
	t.Helper()
	payload, err := json.Marshal([]view.Notice{{Level: level, Text: text}})
	if err != nil {
		t.Fatalf("marshal flash: %v", err)
	}
	return base64.URLEncoding.EncodeToString(payload)
}

func TestFlash_RoundTrip(t *testing.T) {
	e := echo.New()

	// setFlash on one response...
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setFlash(c, view.Notice{Level: "success", Text: "Logged out successfully"})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != flashCookieName {
		t.Fatalf("expected flash cookie, got %+v", cookies)
	}

	// ...popFlash on the next request.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: flashCookieName, Value: cookies[0].Value})
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(req2, rec2)

	notices := popFlash(c2)
	if len(notices) != 1 || notices[0].Text != "Logged out successfully" || notices[0].Level != "success" {
		t.Fatalf("unexpected notices: %+v", notices)
	}
}

func TestPopFlash_MalformedCookieDropped(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "not-base64!!"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if notices := popFlash(c); notices != nil {
		t.Fatalf("expected malformed flash to be dropped, got %+v", notices)
	}
}

func TestPopFlash_NoCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if notices := popFlash(c); notices != nil {
		t.Fatalf("expected nil without a cookie, got %+v", notices)
	}
}
