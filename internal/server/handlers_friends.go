package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/models"
)

type friendRequest struct {
	FriendID string `json:"friend_id"`
}

func (s *Server) handleFriendRequest(c *fiber.Ctx) error {
	var req friendRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	edge, err := s.Friends.Request(c.Context(), memberID(c), req.FriendID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(edge)
}

func (s *Server) handleFriendAccept(c *fiber.Ctx) error {
	if err := s.Friends.Accept(c.Context(), memberID(c), c.Params("friend_id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": string(models.FriendAccepted)})
}

func (s *Server) handleListFriends(c *fiber.Ctx) error {
	includePending := c.QueryBool("include_pending")

	friends, err := s.Friends.ListFriends(c.Context(), memberID(c), includePending)
	if err != nil {
		return err
	}
	if friends == nil {
		friends = []models.Friend{}
	}
	return c.JSON(friends)
}
