package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/models"
)

type createGroupRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateGroup(c *fiber.Ctx) error {
	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	group, err := s.Groups.CreateGroup(c.Context(), req.Name, memberID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func (s *Server) handleListGroups(c *fiber.Ctx) error {
	groups, err := s.Groups.ListGroups(c.Context(), memberID(c))
	if err != nil {
		return err
	}
	if groups == nil {
		groups = []models.Group{}
	}
	return c.JSON(groups)
}

func (s *Server) handleGetGroup(c *fiber.Ctx) error {
	group, err := s.Groups.GetGroup(c.Context(), c.Params("group_id"))
	if err != nil {
		return err
	}
	return c.JSON(group)
}

func (s *Server) handleListGroupMembers(c *fiber.Ctx) error {
	members, err := s.Groups.ListMembers(c.Context(), c.Params("group_id"))
	if err != nil {
		return err
	}
	if members == nil {
		members = []models.GroupMember{}
	}
	return c.JSON(members)
}

type addMemberRequest struct {
	GroupID  string `json:"group_id"`
	MemberID string `json:"member_id"`
	IsAdmin  bool   `json:"is_admin"`
}

func (s *Server) handleAddGroupMember(c *fiber.Ctx) error {
	var req addMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if req.GroupID == "" || req.MemberID == "" {
		return apperr.Validationf("group_id and member_id are required")
	}

	membership, err := s.Groups.AddMember(c.Context(), req.GroupID, req.MemberID, req.IsAdmin)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(membership)
}
