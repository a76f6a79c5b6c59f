package ports

import (
	"context"

	"github.com/shopnexus/storefront/internal/core/domain"
)

// PageData is the page controller state. Exactly one of three shapes is
// rendered from it: loading indicator, error text, or the full page.
type PageData struct {
	// Loading is true only before both fetch flows have been attempted.
	Loading bool
	// Error, once set, takes precedence over the product grid.
	Error    string
	Products []domain.Product
	// User is nil for anonymous visitors.
	User *domain.User
}

// NewPageData returns the initial controller state: loading, no products,
// no error, anonymous.
func NewPageData() *PageData {
	return &PageData{Loading: true}
}

// Auth form modes.
const (
	ModeLogin    = "login"
	ModeRegister = "register"
)

// AuthSubmitInput carries one auth form submission.
type AuthSubmitInput struct {
	Mode     string
	Username string
	Email    string
	Password string
}

// AuthOutcome is the explicit result of an auth submission, replacing the
// ad hoc success callback of the original page. Exactly one of Notice or
// FailureMessage is set.
type AuthOutcome struct {
	// LoggedIn is true only for a successful login; the modal closes and
	// the token has been persisted.
	LoggedIn bool
	// Token is the upstream session token on successful login.
	Token string
	// Notice is the transient success notification text.
	Notice string
	// FailureMessage is the inline modal error; the modal stays open.
	FailureMessage string
	// NextMode is the mode the form shows next. Register success switches
	// to login; every other outcome keeps the submitted mode.
	NextMode string
}

// Failed reports whether the submission should keep the modal open with an
// inline error.
func (o AuthOutcome) Failed() bool {
	return o.FailureMessage != ""
}

// StorefrontService is the page controller: it owns the product list, the
// authenticated user, and the session token lifecycle.
type StorefrontService interface {
	// LoadPage runs the product fetch and the profile fetch concurrently
	// and folds both results into a PageData.
	LoadPage(ctx context.Context, sessionID string) *PageData
	// Submit handles one auth form submission in either mode.
	Submit(ctx context.Context, sessionID string, input AuthSubmitInput) AuthOutcome
	// Logout clears the persisted token. It contacts no upstream service.
	Logout(ctx context.Context, sessionID string) error
}
