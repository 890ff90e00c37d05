package server

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/splithappens/splithappens/internal/auth"
)

const (
	// localMemberID is the fiber locals key for the authenticated member.
	localMemberID = "member_id"
	// localEmail is the fiber locals key for the authenticated email.
	localEmail = "email"
)

// memberID returns the authenticated member's ID, or "" before auth.
func memberID(c *fiber.Ctx) string {
	id, _ := c.Locals(localMemberID).(string)
	return id
}

// requireAuth validates the Bearer token and stores the member identity in
// the request locals.
func requireAuth(jwt *auth.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return auth.ErrMissingToken
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return auth.ErrInvalidToken
		}

		claims, err := jwt.Validate(token)
		if err != nil {
			return err
		}

		c.Locals(localMemberID, claims.MemberID)
		c.Locals(localEmail, claims.Email)
		return c.Next()
	}
}

// requestLogger logs every request with method, path, status, and duration.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler has not run yet; report what it will send.
			status, _ = statusOf(err)
		}

		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"member_id", memberID(c),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case err != nil:
			slog.Warn("Request failed", append(attrs, "error", err)...)
		default:
			slog.Info("Request completed", attrs...)
		}
		return err
	}
}
