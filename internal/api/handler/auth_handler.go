package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopnexus/storefront/internal/api/metrics"
	"github.com/shopnexus/storefront/internal/api/middleware"
	"github.com/shopnexus/storefront/internal/core/ports"
	"github.com/shopnexus/storefront/internal/view"
)

// AuthHandler handles the auth modal's form submissions. Failures re-render
// the page with the modal open and entered values retained; a successful
// login redirects so the reloaded page picks up the profile.
type AuthHandler struct {
	service ports.StorefrontService
}

func NewAuthHandler(service ports.StorefrontService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email"    validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.renderFailure(c, ports.ModeLogin, form.Username, "", "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderFailure(c, ports.ModeLogin, form.Username, "", err.Error())
	}

	outcome := h.service.Submit(c.Request().Context(), middleware.SessionID(c), ports.AuthSubmitInput{
		Mode:     ports.ModeLogin,
		Username: form.Username,
		Password: form.Password,
	})
	if outcome.Failed() {
		metrics.AuthSubmissionsTotal.WithLabelValues(ports.ModeLogin, "failure").Inc()
		return h.renderFailure(c, ports.ModeLogin, form.Username, "", outcome.FailureMessage)
	}

	metrics.AuthSubmissionsTotal.WithLabelValues(ports.ModeLogin, "success").Inc()
	setFlash(c, view.Notice{Level: "success", Text: outcome.Notice})
	return c.Redirect(http.StatusSeeOther, "/")
}

// Register handles POST /auth/register. Success keeps the modal open and
// switches it to login mode so the user can sign in with the new account.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return h.renderFailure(c, ports.ModeRegister, form.Username, form.Email, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderFailure(c, ports.ModeRegister, form.Username, form.Email, err.Error())
	}

	outcome := h.service.Submit(c.Request().Context(), middleware.SessionID(c), ports.AuthSubmitInput{
		Mode:     ports.ModeRegister,
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if outcome.Failed() {
		metrics.AuthSubmissionsTotal.WithLabelValues(ports.ModeRegister, "failure").Inc()
		return h.renderFailure(c, ports.ModeRegister, form.Username, form.Email, outcome.FailureMessage)
	}

	metrics.AuthSubmissionsTotal.WithLabelValues(ports.ModeRegister, "success").Inc()
	return h.renderPage(c, &view.AuthForm{
		Mode:     outcome.NextMode,
		Username: form.Username,
	}, []view.Notice{{Level: "success", Text: outcome.Notice}})
}

// Logout handles POST /auth/logout. The persisted token is cleared; no
// upstream service is contacted.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context(), middleware.SessionID(c)); err != nil {
		setFlash(c, view.Notice{Level: "error", Text: "Logout failed, please try again"})
		return c.Redirect(http.StatusSeeOther, "/")
	}
	setFlash(c, view.Notice{Level: "success", Text: "Logged out successfully"})
	return c.Redirect(http.StatusSeeOther, "/")
}

// renderFailure re-renders the page with the modal open, the inline error
// set, and the entered values retained. The error is also queued as a
// transient notice on the same render.
func (h *AuthHandler) renderFailure(c echo.Context, mode, username, email, message string) error {
	return h.renderPage(c, &view.AuthForm{
		Mode:        mode,
		Username:    username,
		Email:       email,
		SubmitError: message,
	}, []view.Notice{{Level: "error", Text: message}})
}

func (h *AuthHandler) renderPage(c echo.Context, form *view.AuthForm, notices []view.Notice) error {
	data := h.service.LoadPage(c.Request().Context(), middleware.SessionID(c))
	return c.Render(http.StatusOK, "page", view.NewPage(data, form, notices))
}
