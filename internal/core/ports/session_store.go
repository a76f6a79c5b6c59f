package ports

import "context"

// SessionStore is the single accessor for the persisted session token.
// All reads and writes of the token go through it, so the invariant
// "token absent ⇒ user absent" is enforceable in one place:
//
//	Save  — on successful login and on successful profile fetch
//	Clear — on logout and on failed profile fetch
//	Token — returns domain.ErrNoSession when nothing is persisted
type SessionStore interface {
	Token(ctx context.Context, sessionID string) (string, error)
	Save(ctx context.Context, sessionID, token string) error
	Clear(ctx context.Context, sessionID string) error
}
