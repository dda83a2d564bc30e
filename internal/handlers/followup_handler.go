package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"talentlens/resume-analyzer/internal/models"
	"talentlens/resume-analyzer/internal/services"
)

type FollowUpHandler struct {
	analyzer services.AnalyzerService
	validate *validator.Validate
}

func NewFollowUpHandler(analyzer services.AnalyzerService) *FollowUpHandler {
	return &FollowUpHandler{
		analyzer: analyzer,
		validate: validator.New(),
	}
}

// HandleFollowUp handles POST /followup. The body is a JSON chat history;
// the last user message is the question to answer.
func (h *FollowUpHandler) HandleFollowUp(c *fiber.Ctx) error {
	var req models.FollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, validationErr("invalid request payload"))
	}

	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, validationErr("messages must be a non-empty list of {role, content} entries"))
	}

	answer, err := h.analyzer.AnswerFollowUp(c.UserContext(), req.Messages)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.FollowUpResponse{Answer: answer})
}
