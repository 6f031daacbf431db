package middleware

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"shopsphere/internal/auth"
	apperrors "shopsphere/internal/errors"
	"shopsphere/internal/model"
)

const claimsContextKey = "claims"

// Authenticate extracts and verifies the bearer token. A missing token is
// an authentication failure (401); a malformed, expired or badly signed
// one is rejected with 403. Verified claims are parked on the context for
// AttachClaims.
func Authenticate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "Access token required",
					Code:  "TOKEN_REQUIRED",
				})
			}
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  "TOKEN_INVALID",
			})
		},
	})
}

// AttachClaims binds the verified claims to the request context under a
// typed key so handlers never touch the raw token.
func AttachClaims(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Access token required",
				Code:  "TOKEN_REQUIRED",
			})
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  "TOKEN_INVALID",
			})
		}
		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// RequireAdmin gates a route to admin users. Runs after AttachClaims.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok || claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "Admin access required",
				Code:  "ADMIN_REQUIRED",
			})
		}
		return next(c)
	}
}

// ClaimsFrom returns the claims attached by AttachClaims.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*auth.Claims)
	return claims, ok
}
