package middleware

import (
	"strings"

	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/errors"
	"arena/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	claimsKey    = "claims"
	bearerScheme = "bearer"
)

// AuthMiddleware authenticates bearer tokens through the auth use case.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects requests without a valid, unexpired bearer token and
// stores the verified claims for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrInvalidToken.WrapMessage("missing bearer token")
		}

		ctx := c.Request().Context()
		claims, err := m.authUC.ValidateBearer(ctx, token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(claimsKey, claims)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithSubject(ctx, claims.SubjectID)))

		return next(c)
	}
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*entity.AuthClaims, bool) {
	claims, ok := c.Get(claimsKey).(*entity.AuthClaims)

	return claims, ok && claims != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}
