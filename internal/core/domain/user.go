package domain

// User models the authenticated visitor as reported by the identity service.
// A nil *User means the visitor is anonymous; the greeting and the
// login/register control are mutually exclusive on that distinction.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
