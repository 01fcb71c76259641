package middleware

import (
	"strings"

	"homezy-service/internal/pkg/authprovider"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/helpers"
	"homezy-service/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log  *otelzap.Logger
	Auth authprovider.Client
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	s, err := m.Auth.ValidateToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	session.Set(ctx, s)

	return ctx.Next()
}

// RequireRole lets admins through in addition to the listed roles.
func (m *Middleware) RequireRole(roles ...session.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		s, ok := session.From(ctx)
		if !ok {
			return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing session"))
		}
		if s.Role == session.RoleAdmin {
			return ctx.Next()
		}
		for _, r := range roles {
			if s.Role == r {
				return ctx.Next()
			}
		}
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("role not allowed"))
	}
}

// CORS opens the relay endpoints to every origin and answers preflight with 200.
func (m *Middleware) CORS(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	ctx.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
	ctx.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")

	if ctx.Method() == fiber.MethodOptions {
		return ctx.SendStatus(fiber.StatusOK)
	}
	return ctx.Next()
}

func (m *Middleware) MethodNotAllowed(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusMethodNotAllowed).JSON(helpers.Response{
		Success: false,
		Error:   "Method not allowed",
	})
}
