package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/safevoice/report-service/internal/domain"
	"github.com/safevoice/report-service/internal/repository"
	"github.com/safevoice/report-service/pkg/util/errorutil"
)

const principalLocalKey = "auth_principal"

// AuthMiddleware validates bearer tokens and loads principals. Accounts
// are re-read on every request (through a short-lived cache) so role and
// verification changes apply immediately.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
	cache  *PrincipalCache
}

// NewAuthMiddleware constructs middleware. The cache may be nil.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository, cache *PrincipalCache) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, cache: cache}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	user, err := m.resolve(c)
	if err != nil {
		return err
	}
	if user == nil {
		return errorutil.NewUnauthenticated("missing authorization header")
	}
	c.Locals(principalLocalKey, user)
	return c.Next()
}

// HandleOptional resolves a principal when credentials are supplied but
// lets anonymous requests through. Used on public reads so authors see
// their own attribution on anonymous reports.
func (m *AuthMiddleware) HandleOptional(c *fiber.Ctx) error {
	user, err := m.resolve(c)
	if err != nil {
		return err
	}
	if user != nil {
		c.Locals(principalLocalKey, user)
	}
	return c.Next()
}

func (m *AuthMiddleware) resolve(c *fiber.Ctx) (*domain.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errorutil.NewUnauthenticated("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return nil, errorutil.NewUnauthenticated("invalid token")
	}

	if cached := m.cache.Get(c.UserContext(), claims.SubjectID); cached != nil {
		return cached, nil
	}

	user, err := m.users.GetByID(c.UserContext(), claims.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewUnauthenticated("account not found")
		}
		return nil, errorutil.NewDependencyUnavailable("identity store", err)
	}
	m.cache.Set(c.UserContext(), user)
	return user, nil
}

// UserFromContext retrieves the authenticated account.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalLocalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// PrincipalFromContext projects the authenticated account into the
// acting identity handed to the domain core. Returns nil for anonymous
// requests; the core answers those with Unauthenticated on mutations.
func PrincipalFromContext(c *fiber.Ctx) *domain.Principal {
	user, ok := UserFromContext(c)
	if !ok {
		return nil
	}
	return domain.PrincipalFromUser(user)
}
