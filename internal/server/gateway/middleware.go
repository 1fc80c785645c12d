package gateway

import (
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/gofiber/fiber/v2"
)

// requireAuth verifies the auth-token header and stores the user id in the
// request's user context.
func (s *HTTPServer) requireAuth(c *fiber.Ctx) error {
	userID, err := s.services.Tokens.Verify(c.Get(common.AccessTokenHeaderName))
	if err != nil {
		return s.fail(c, "auth", err)
	}

	c.SetUserContext(auth.WithUserID(c.UserContext(), userID))
	return c.Next()
}

func currentUser(c *fiber.Ctx) (string, error) {
	id, ok := auth.UserIDFromContext(c.UserContext())
	if !ok {
		return "", common.ErrMissingToken
	}
	return id, nil
}
