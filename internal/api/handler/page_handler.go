package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopnexus/storefront/internal/api/metrics"
	"github.com/shopnexus/storefront/internal/api/middleware"
	"github.com/shopnexus/storefront/internal/core/ports"
	"github.com/shopnexus/storefront/internal/view"
)

// PageHandler renders the storefront page.
type PageHandler struct {
	service ports.StorefrontService
}

func NewPageHandler(service ports.StorefrontService) *PageHandler {
	return &PageHandler{service: service}
}

// Home handles GET /. The two data flows (catalog, profile) run inside
// LoadPage; the auth modal opens when ?auth=login or ?auth=register is
// present and the visitor is anonymous.
func (h *PageHandler) Home(c echo.Context) error {
	sid := middleware.SessionID(c)
	data := h.service.LoadPage(c.Request().Context(), sid)

	var form *view.AuthForm
	switch mode := c.QueryParam("auth"); mode {
	case ports.ModeLogin, ports.ModeRegister:
		form = &view.AuthForm{Mode: mode}
	}

	metrics.PageRendersTotal.WithLabelValues(pageState(data)).Inc()
	return c.Render(http.StatusOK, "page", view.NewPage(data, form, popFlash(c)))
}

func pageState(data *ports.PageData) string {
	switch {
	case data.Error != "":
		return "error"
	case len(data.Products) == 0:
		return "empty"
	default:
		return "ready"
	}
}
