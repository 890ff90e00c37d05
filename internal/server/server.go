// Package server exposes the service layer over a REST/JSON API.
//
// It is deliberately thin: request bodies are decoded into explicit request
// structs, handed to the services, and the results encoded back. All domain
// rules live in internal/service and below.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/auth"
	"github.com/splithappens/splithappens/internal/service"
)

// Server bundles the services behind the HTTP surface.
type Server struct {
	Auth    *service.AuthService
	Groups  *service.GroupService
	Ledger  *service.LedgerService
	Friends *service.FriendService

	JWT        *auth.JWTManager
	CORSOrigin string
}

// App builds the fiber application with all middleware and routes attached.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "splithappens",
		ErrorHandler: errorHandler,
	})

	origin := s.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	app.Use(requestLogger())
	app.Use(metricsMiddleware())

	s.registerRoutes(app)
	return app
}

func (s *Server) registerRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/metrics", metricsHandler())

	authMW := requireAuth(s.JWT)

	app.Post("/api/users", s.handleRegister)
	app.Post("/api/users/login", s.handleLogin)
	app.Get("/api/users/:id", s.handleGetMember)
	app.Get("/api/me", authMW, s.handleMe)
	app.Get("/api/getusers", authMW, s.handleSearchMembers)

	app.Post("/api/friends", authMW, s.handleFriendRequest)
	app.Post("/api/friends/:friend_id/accept", authMW, s.handleFriendAccept)
	app.Get("/api/friends", authMW, s.handleListFriends)

	app.Post("/api/groups", authMW, s.handleCreateGroup)
	app.Get("/api/groups", authMW, s.handleListGroups)
	app.Get("/api/groups/:group_id", authMW, s.handleGetGroup)
	app.Get("/api/groups/:group_id/members", authMW, s.handleListGroupMembers)
	app.Post("/api/group_members", authMW, s.handleAddGroupMember)

	app.Post("/api/expenses", authMW, s.handleRecordExpense)
	app.Get("/api/expenses/:group_id", authMW, s.handleListExpenses)
	app.Get("/api/expenses/:group_id/balances", authMW, s.handleNetBalances)

	app.Post("/api/settlements", authMW, s.handleRecordSettlement)
	app.Get("/api/settlements/:group_id", authMW, s.handleListSettlements)
}

// errorHandler renders domain failures as JSON with the mapped status.
func errorHandler(c *fiber.Ctx, err error) error {
	status, message := statusOf(err)
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// statusOf maps a failure to its HTTP status: validation 400, auth 401,
// membership 403, not-found 404, conflict 409, unavailable 503,
// everything else 500.
func statusOf(err error) (int, string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return fiber.StatusBadRequest, err.Error()
	case apperr.KindMembership:
		return fiber.StatusForbidden, err.Error()
	case apperr.KindNotFound:
		return fiber.StatusNotFound, err.Error()
	case apperr.KindConflict:
		return fiber.StatusConflict, err.Error()
	case apperr.KindUnavailable:
		return fiber.StatusServiceUnavailable, err.Error()
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return fiber.StatusUnauthorized, err.Error()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}
	return fiber.StatusInternalServerError, "internal server error"
}
