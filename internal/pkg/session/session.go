// Package session carries the authenticated caller through handlers and usecases.
package session

import "github.com/gofiber/fiber/v2"

const localsKey = "session"

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

type Session struct {
	UserID string
	Email  string
	Name   string
	Role   Role
}

func Set(ctx *fiber.Ctx, s Session) {
	ctx.Locals(localsKey, s)
}

// From returns the session stored by the token middleware.
func From(ctx *fiber.Ctx) (Session, bool) {
	s, ok := ctx.Locals(localsKey).(Session)
	return s, ok
}
