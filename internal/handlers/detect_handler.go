package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentlens/resume-analyzer/internal/services"
)

type DetectHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewDetectHandler(analyzer services.AnalyzerService, maxFileSize int64) *DetectHandler {
	return &DetectHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleDetect handles POST /resume/detect. The explanation second pass is on
// by default and disabled with include_explanation=false.
func (h *DetectHandler) HandleDetect(c *fiber.Ctx) error {
	resume, err := readResumeInput(c, h.maxFileSize)
	if err != nil {
		return respondError(c, err)
	}

	includeExplanation := !strings.EqualFold(c.FormValue("include_explanation"), "false")

	result, err := h.analyzer.DetectAIResume(c.UserContext(), resume, includeExplanation)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
