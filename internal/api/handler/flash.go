package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopnexus/storefront/internal/view"
)

const flashCookieName = "storefront_flash"

// Flash notices are the server-rendered counterpart of the original toasts:
// written as a one-shot cookie on the response that triggers them, read and
// cleared by the next page render. Payload is base64-encoded JSON so notice
// text survives cookie value restrictions.

// setFlash queues notices for the next page render.
func setFlash(c echo.Context, notices ...view.Notice) {
	payload, err := json.Marshal(notices)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns queued notices and clears the cookie. A malformed cookie
// is dropped silently.
func popFlash(c echo.Context) []view.Notice {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var notices []view.Notice
	if err := json.Unmarshal(payload, &notices); err != nil {
		return nil
	}
	return notices
}
