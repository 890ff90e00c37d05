package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/models"
)

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	session, err := s.Auth.Register(c.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	session, err := s.Auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

func (s *Server) handleGetMember(c *fiber.Ctx) error {
	member, err := s.Auth.GetMember(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(member)
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	member, err := s.Auth.GetMember(c.Context(), memberID(c))
	if err != nil {
		return err
	}
	return c.JSON(member)
}

func (s *Server) handleSearchMembers(c *fiber.Ctx) error {
	members, err := s.Friends.SearchMembers(c.Context(), c.Query("search"), memberID(c))
	if err != nil {
		return err
	}
	if members == nil {
		members = []models.Member{}
	}
	return c.JSON(members)
}
