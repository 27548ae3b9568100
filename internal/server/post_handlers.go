package server

import (
	"io"

	"fixando/internal/models"
	"fixando/internal/repository"
	"fixando/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, repository.FeedPageSize)

	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: s.optionalUserID(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id, s.optionalUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// GetPostStats handles GET /api/posts/:id/stats
func (s *Server) GetPostStats(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	stats, err := s.postService.GetPostStats(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(stats)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, repository.FeedPageSize)

	posts, err := s.postService.ListPostsByUser(c.Context(), userID, p.Limit, p.Offset, s.optionalUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// CreatePost handles POST /api/posts. The body is either JSON or a
// multipart form with an optional "image" file field.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title" form:"title"`
		Content string `json:"content" form:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	imageURL, err := s.uploadedImageURL(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:   currentUserID(c),
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: imageURL,
	})
	if err != nil {
		// The image was stored before validation; don't orphan it.
		if imageURL != "" {
			s.imageService.Remove(imageURL)
		}
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:  currentUserID(c),
		PostID:  id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: currentUserID(c),
		PostID: id,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// uploadedImageURL stores the optional "image" multipart field and returns
// its public URL, or "" when the request carries no file.
func (s *Server) uploadedImageURL(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No multipart file present; the post is text-only.
		return "", nil
	}

	if fileHeader.Size > service.MaxImageUploadBytes {
		return "", models.NewValidationError("File too large (max 5MB)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", models.NewInternalError(err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, service.MaxImageUploadBytes+1))
	if err != nil {
		return "", models.NewInternalError(err)
	}

	return s.imageService.Upload(service.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
}
