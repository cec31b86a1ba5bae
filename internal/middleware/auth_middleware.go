package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"myDiverseMarket/pkg/logger"
	jsonres "myDiverseMarket/pkg/response"
	"myDiverseMarket/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var errMissingHeader = errors.New("missing authorization header")

type authFailure struct {
	status  int
	code    string
	message string
}

// authenticate parses the bearer token and stores user_id, role and
// token on the echo context.
func authenticate(c echo.Context) (*authFailure, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return &authFailure{http.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization header"}, errMissingHeader
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return &authFailure{http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization format"}, errors.New("invalid authorization format")
	}

	tokenString := tokenParts[1]

	claims, err := utils.ParseJWT(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return &authFailure{http.StatusForbidden, "FORBIDDEN", "Token expired"}, err
		}
		return &authFailure{http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token"}, err
	}

	userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		logger.Error("Invalid user ID in token", err)
		return &authFailure{http.StatusForbidden, "FORBIDDEN", "Invalid user ID in token"}, err
	}

	c.Set("user_id", uint(userIDUint))
	c.Set("role", claims.Role)
	c.Set("token", tokenString)

	return nil, nil
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if fail, _ := authenticate(c); fail != nil {
				return c.JSON(fail.status, jsonres.Error(fail.code, fail.message, nil))
			}
			return next(c)
		}
	}
}

// OptionalAuth lets anonymous requests through but still rejects a
// malformed or forged token.
func OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			fail, err := authenticate(c)
			if errors.Is(err, errMissingHeader) {
				return next(c)
			}
			if fail != nil {
				return c.JSON(fail.status, jsonres.Error(fail.code, fail.message, nil))
			}
			return next(c)
		}
	}
}

func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := c.Get("role")
			roleStr, ok := role.(string)
			if !ok || strings.ToUpper(roleStr) != "ADMIN" {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Admin access required", nil,
				))
			}

			return next(c)
		}
	}
}
