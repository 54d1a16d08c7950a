package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFollowableUsers handles GET /api/people. Every user except the caller
// is returned with an is_followed flag and their last activity timestamp.
func (s *Server) GetFollowableUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := callerID(c)

	users, err := s.peopleService.ListFollowableUsers(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

// FollowUser handles POST /api/people/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := callerID(c)
	targetID := c.Params("id")

	if err := s.peopleService.Follow(ctx, userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": true})
}

// UnfollowUser handles DELETE /api/people/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := callerID(c)
	targetID := c.Params("id")

	if err := s.peopleService.Unfollow(ctx, userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": false})
}
