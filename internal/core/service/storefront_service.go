package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shopnexus/storefront/internal/core/domain"
	"github.com/shopnexus/storefront/internal/core/ports"
)

// StorefrontService is the page controller. It orchestrates the two fetch
// flows (catalog, profile-from-stored-token), owns the session token
// lifecycle, and turns auth submissions into explicit outcomes.
type StorefrontService struct {
	catalog  ports.ProductCatalog
	identity ports.IdentityProvider
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewStorefrontService(
	catalog ports.ProductCatalog,
	identity ports.IdentityProvider,
	sessions ports.SessionStore,
	logger zerolog.Logger,
) *StorefrontService {
	return &StorefrontService{
		catalog:  catalog,
		identity: identity,
		sessions: sessions,
		logger:   logger,
	}
}

// LoadPage fetches the product list and, when a token is persisted for this
// session, the user profile. The two flows are independent: they run
// concurrently, may complete in either order, and write disjoint fields of
// the returned PageData. Whichever response lands last wins; no suppression
// of stale results is attempted.
func (s *StorefrontService) LoadPage(ctx context.Context, sessionID string) *ports.PageData {
	page := ports.NewPageData()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.fetchProducts(ctx, page)
	}()
	go func() {
		defer wg.Done()
		page.User = s.resolveUser(ctx, sessionID)
	}()

	wg.Wait()
	return page
}

// fetchProducts fills Products on success or Error on failure, and clears
// Loading either way. Error display takes precedence over the grid.
func (s *StorefrontService) fetchProducts(ctx context.Context, page *ports.PageData) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch products")
		page.Error = fmt.Sprintf("Failed to fetch products: %s", err.Error())
		page.Loading = false
		return
	}
	page.Products = products
	page.Loading = false
}

// resolveUser is the silent recovery path of the profile fetch: any failure
// clears the persisted token and leaves the visitor anonymous without
// surfacing an error.
func (s *StorefrontService) resolveUser(ctx context.Context, sessionID string) *domain.User {
	token, err := s.sessions.Token(ctx, sessionID)
	if err != nil {
		return nil
	}

	user, err := s.identity.Profile(ctx, token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("profile fetch failed, clearing session token")
		if clearErr := s.sessions.Clear(ctx, sessionID); clearErr != nil {
			s.logger.Warn().Err(clearErr).Msg("failed to clear session token")
		}
		return nil
	}

	// Re-persist so the token's TTL tracks the latest successful use.
	if err := s.sessions.Save(ctx, sessionID, token); err != nil {
		s.logger.Warn().Err(err).Msg("failed to refresh session token")
	}
	return user
}

// Submit handles one auth form submission in either mode.
func (s *StorefrontService) Submit(ctx context.Context, sessionID string, input ports.AuthSubmitInput) ports.AuthOutcome {
	switch input.Mode {
	case ports.ModeRegister:
		return s.register(ctx, input)
	default:
		return s.login(ctx, sessionID, input)
	}
}

// login exchanges credentials for a token and persists it. A successful
// login closes the modal; the caller then reloads the page so the profile
// fetch can replace the login control with the greeting.
func (s *StorefrontService) login(ctx context.Context, sessionID string, input ports.AuthSubmitInput) ports.AuthOutcome {
	token, err := s.identity.Login(ctx, input.Username, input.Password)
	if err != nil {
		s.logger.Info().Err(err).Str("username", input.Username).Msg("login rejected")
		return ports.AuthOutcome{
			FailureMessage: domain.UserMessage(err),
			NextMode:       ports.ModeLogin,
		}
	}

	if err := s.sessions.Save(ctx, sessionID, token); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session token")
		return ports.AuthOutcome{
			FailureMessage: domain.GenericAuthFailure,
			NextMode:       ports.ModeLogin,
		}
	}

	s.logger.Info().Str("username", input.Username).Msg("login successful")
	return ports.AuthOutcome{
		LoggedIn: true,
		Token:    token,
		Notice:   "Login successful",
		NextMode: ports.ModeLogin,
	}
}

// register creates the account and, on success, switches the form back to
// login mode without closing the modal.
func (s *StorefrontService) register(ctx context.Context, input ports.AuthSubmitInput) ports.AuthOutcome {
	if err := s.identity.Register(ctx, input.Username, input.Email, input.Password); err != nil {
		s.logger.Info().Err(err).Str("username", input.Username).Msg("registration rejected")
		return ports.AuthOutcome{
			FailureMessage: domain.UserMessage(err),
			NextMode:       ports.ModeRegister,
		}
	}

	s.logger.Info().Str("username", input.Username).Msg("registration successful")
	return ports.AuthOutcome{
		Notice:   "Registration successful. Please login with your credentials",
		NextMode: ports.ModeLogin,
	}
}

// Logout clears the persisted token. No upstream service is contacted; the
// upstream token simply expires on its own.
func (s *StorefrontService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear session on logout")
		return err
	}
	s.logger.Info().Msg("logged out")
	return nil
}
