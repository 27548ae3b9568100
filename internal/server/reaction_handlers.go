package server

import (
	"fixando/internal/models"
	"fixando/internal/service"

	"github.com/gofiber/fiber/v2"
)

// React handles POST /api/likes. Sending the same reaction twice removes
// it; sending the opposite reaction flips it.
func (s *Server) React(c *fiber.Ctx) error {
	var req struct {
		PostID uint  `json:"post_id"`
		IsLike *bool `json:"is_like"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}
	if req.IsLike == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("is_like is required"))
	}

	result, err := s.reactionService.React(c.Context(), service.ReactInput{
		UserID: currentUserID(c),
		PostID: req.PostID,
		IsLike: *req.IsLike,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  result.Outcome,
		"reaction": result.Reaction,
	})
}
