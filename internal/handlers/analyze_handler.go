package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentlens/resume-analyzer/internal/services"
)

// AnalyzeHandler serves the resume analysis endpoints. It owns no state
// beyond its collaborators; every request is validated here and then handed
// to the analyzer.
type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleMatch handles POST /analyze/match.
func (h *AnalyzeHandler) HandleMatch(c *fiber.Ctx) error {
	resume, jobDescription, err := h.requireResumeAndJD(c)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.analyzer.AnalyzeMatch(c.UserContext(), resume, jobDescription)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// HandleQuestions handles POST /analyze/questions.
func (h *AnalyzeHandler) HandleQuestions(c *fiber.Ctx) error {
	resume, jobDescription, err := h.requireResumeAndJD(c)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.analyzer.GenerateQuestions(c.UserContext(), resume, jobDescription)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// HandleEvaluate handles POST /analyze/evaluate.
func (h *AnalyzeHandler) HandleEvaluate(c *fiber.Ctx) error {
	resume, jobDescription, err := h.requireResumeAndJD(c)
	if err != nil {
		return respondError(c, err)
	}

	questionsJSON := strings.TrimSpace(c.FormValue("questions"))
	if questionsJSON == "" {
		return respondError(c, validationErr("questions is required"))
	}
	var questions []string
	if err := json.Unmarshal([]byte(questionsJSON), &questions); err != nil {
		return respondError(c, validationErr("questions must be a JSON array of strings"))
	}

	transcript := strings.TrimSpace(c.FormValue("transcript"))
	if transcript == "" {
		return respondError(c, validationErr("transcript is required"))
	}

	result, err := h.analyzer.EvaluateResponses(c.UserContext(), resume, jobDescription, questions, transcript)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// HandleCoverage handles POST /analyze/coverage.
func (h *AnalyzeHandler) HandleCoverage(c *fiber.Ctx) error {
	generatedQuestions := strings.TrimSpace(c.FormValue("questions"))
	if generatedQuestions == "" {
		return respondError(c, validationErr("questions is required"))
	}

	transcript := strings.TrimSpace(c.FormValue("transcript"))
	if transcript == "" {
		return respondError(c, validationErr("transcript is required"))
	}

	result, err := h.analyzer.AnalyzeCoverage(c.UserContext(), generatedQuestions, transcript)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// requireResumeAndJD validates the multipart shape shared by the analysis
// endpoints: a resume file (or resume_text field) plus a non-empty
// job_description.
func (h *AnalyzeHandler) requireResumeAndJD(c *fiber.Ctx) (services.ResumeInput, string, error) {
	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return services.ResumeInput{}, "", validationErr("job_description is required")
	}

	resume, err := readResumeInput(c, h.maxFileSize)
	if err != nil {
		return services.ResumeInput{}, "", err
	}

	return resume, jobDescription, nil
}
