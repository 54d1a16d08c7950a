package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetHomeFeed handles GET /api/feed/home. The feed contains posts authored
// by users the caller follows, newest first.
func (s *Server) GetHomeFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := callerID(c)

	posts, err := s.feedService.HomeFeed(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetBookmarkFeed handles GET /api/feed/bookmarks
func (s *Server) GetBookmarkFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := callerID(c)

	posts, err := s.feedService.BookmarkFeed(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}
