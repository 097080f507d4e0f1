package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/towjek/internal/pkg/jwt"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/internal/pkg/requestcontext"
	"github.com/piresc/towjek/internal/utils"
)

const actorContextKey = "actor"

// JWTAuthMiddleware authenticates bearer tokens and stores the caller as a models.Actor
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			actor := claims.Actor()
			SetActor(c, actor)
			AddAttribute(c, "user.id", actor.ID.String())
			AddAttribute(c, "user.role", string(actor.Role))

			return next(c)
		}
	}
}

// ActorFromContext returns the authenticated caller set by JWTAuthMiddleware
func ActorFromContext(c echo.Context) (models.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(models.Actor)
	return actor, ok
}

// SetActor stores actor on the echo context and on the request's context.Context
func SetActor(c echo.Context, actor models.Actor) {
	c.Set("user_id", actor.ID)
	c.Set("user_role", actor.Role)
	c.Set(actorContextKey, actor)
	req := c.Request()
	c.SetRequest(req.WithContext(requestcontext.WithActor(req.Context(), actor)))
}

// RequireRoles rejects authenticated callers whose role is not listed
func RequireRoles(roles ...models.ActorRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, role := range roles {
				if actor.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Role not allowed for this operation")
		}
	}
}
