package server

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := callerID(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		AuthorID: userID,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, _ := s.optionalUserID(c)

	posts, err := s.postService.ListPosts(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	post, err := s.postService.GetPost(ctx, id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// SearchPosts handles GET /api/posts/search?q=...
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, _ := s.optionalUserID(c)

	posts, err := s.postService.SearchPostsByHashtags(ctx, c.Query("q"), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return c.JSON(posts)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	authorID := c.Params("id")
	viewerID, _ := s.optionalUserID(c)

	if _, err := s.userService.GetUser(ctx, authorID); err != nil {
		return respondServiceError(c, err)
	}

	posts, err := s.feedService.ProfileFeed(ctx, viewerID, authorID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comments)
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := callerID(c)
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.postService.CreateComment(ctx, service.CreateCommentInput{
		AuthorID: userID,
		PostID:   postID,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HeartPost handles POST /api/posts/:id/heart
func (s *Server) HeartPost(c *fiber.Ctx) error {
	return s.toggleHeart(c, true)
}

// UnheartPost handles DELETE /api/posts/:id/heart
func (s *Server) UnheartPost(c *fiber.Ctx) error {
	return s.toggleHeart(c, false)
}

func (s *Server) toggleHeart(c *fiber.Ctx, add bool) error {
	ctx := c.UserContext()
	userID := callerID(c)
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.ensurePostExists(ctx, c, postID); err != nil {
		return nil
	}

	changed, err := s.postService.HeartPost(ctx, postID, userID, add)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"hearted": add, "changed": changed})
}

// BookmarkPost handles POST /api/posts/:id/bookmark
func (s *Server) BookmarkPost(c *fiber.Ctx) error {
	return s.toggleBookmark(c, true)
}

// UnbookmarkPost handles DELETE /api/posts/:id/bookmark
func (s *Server) UnbookmarkPost(c *fiber.Ctx) error {
	return s.toggleBookmark(c, false)
}

func (s *Server) toggleBookmark(c *fiber.Ctx, add bool) error {
	ctx := c.UserContext()
	userID := callerID(c)
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.ensurePostExists(ctx, c, postID); err != nil {
		return nil
	}

	changed, err := s.postService.BookmarkPost(ctx, postID, userID, add)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"bookmarked": add, "changed": changed})
}

// ensurePostExists writes a 404 and returns errResponseWritten when the
// target post is missing.
func (s *Server) ensurePostExists(ctx context.Context, c *fiber.Ctx, postID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", postID).Count(&count).Error; err != nil {
		_ = respondServiceError(c, err)
		return errResponseWritten
	}
	if count == 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", postID))
		return errResponseWritten
	}
	return nil
}
