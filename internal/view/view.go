// Package view owns the HTML rendering of the storefront page. The render
// policy is a three-way switch: while loading, only the loading indicator is
// shown; once loading is over, a non-empty error replaces the whole page;
// otherwise the full storefront renders.
package view

import (
	"fmt"

	"github.com/shopnexus/storefront/internal/core/domain"
	"github.com/shopnexus/storefront/internal/core/ports"
)

// Notice is a transient notification banner, the server-rendered counterpart
// of the original page's toasts.
type Notice struct {
	Level string // "success" or "error"
	Text  string
}

// AuthForm is the modal form state carried into a render: which mode it is
// in, the field values to repopulate, and the inline submission error.
// Password is intentionally never repopulated into markup.
type AuthForm struct {
	Mode        string
	Username    string
	Email       string
	SubmitError string
}

// IsRegister reports whether the email field should be shown.
func (f AuthForm) IsRegister() bool {
	return f.Mode == ports.ModeRegister
}

// Page is everything the storefront template needs for one render.
type Page struct {
	Loading  bool
	Error    string
	Products []domain.Product
	User     *domain.User
	// Auth is non-nil when the modal should be shown. The modal and the
	// greeting are mutually exclusive; NewPage drops Auth for
	// authenticated visitors.
	Auth    *AuthForm
	Notices []Notice
}

// NewPage builds the render model from controller state. The modal is only
// attached for anonymous visitors, preserving the invariant that the
// greeting and the login/register control never show together.
func NewPage(data *ports.PageData, auth *AuthForm, notices []Notice) *Page {
	if data.User != nil {
		auth = nil
	}
	return &Page{
		Loading:  data.Loading,
		Error:    data.Error,
		Products: data.Products,
		User:     data.User,
		Auth:     auth,
		Notices:  notices,
	}
}

// FormatPrice renders a price with exactly two decimal places, so 99.9
// becomes "$99.90". Fixed two-decimal formatting is the explicit contract;
// raw pass-through of the upstream float is not.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// StockLabel renders the stock badge text: "In Stock: N" when stock is
// positive, the literal "Out of Stock" otherwise.
func StockLabel(stock int) string {
	if stock > 0 {
		return fmt.Sprintf("In Stock: %d", stock)
	}
	return "Out of Stock"
}
