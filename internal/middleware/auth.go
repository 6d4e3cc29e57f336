package middleware

import (
	stderrors "errors"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// Context keys set by RequireAuth
const (
	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
	TokenJTIContextKey  = "token_jti"
)

// RequireAuth rejects requests without a valid bearer token and exposes the
// token's user on the echo context.
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set(UserIDContextKey, claims.UserID)
			c.Set(UserEmailContextKey, claims.Email)
			c.Set(TokenJTIContextKey, claims.ID)

			return next(c)
		}
	}
}

// UserID returns the authenticated user's ID, or 0 when the request was not
// authenticated
func UserID(c echo.Context) int64 {
	id, _ := c.Get(UserIDContextKey).(int64)
	return id
}
