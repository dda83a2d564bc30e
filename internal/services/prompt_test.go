package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlens/resume-analyzer/internal/models"
)

func TestBuildMatchPrompt_Deterministic(t *testing.T) {
	pb := NewPromptBuilder()

	first := pb.BuildMatchPrompt("5 years Python, FastAPI, AWS", "Senior Python backend engineer, AWS required")
	second := pb.BuildMatchPrompt("5 years Python, FastAPI, AWS", "Senior Python backend engineer, AWS required")

	assert.Equal(t, first, second)
}

func TestBuildMatchPrompt_ContainsInputsAndContract(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildMatchPrompt("resume body here", "job description here")

	assert.Contains(t, prompt, "resume body here")
	assert.Contains(t, prompt, "job description here")
	// The format block is the contract the shaper depends on.
	assert.Contains(t, prompt, "OVERALL_SCORE: [score]/100")
	assert.Contains(t, prompt, "HARD_REQUIREMENTS_MATCH:")
	assert.Contains(t, prompt, "STRENGTHS:")
}

func TestBuildQuestionsPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildQuestionsPrompt("resume body", "jd body")

	assert.Contains(t, prompt, "generate 15 relevant and insightful interview questions")
	assert.Contains(t, prompt, "numbered list from 1 to 15")
	assert.Contains(t, prompt, "resume body")
}

func TestBuildEvaluationPrompt_NumbersQuestions(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildEvaluationPrompt(
		[]string{"First question?", "  Second question?  "},
		"transcript body", "jd body", "resume body",
	)

	assert.Contains(t, prompt, "1. First question?")
	assert.Contains(t, prompt, "2. Second question?")
	assert.Contains(t, prompt, "Overall Score: Z/100")
}

func TestBuildCoveragePrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildCoveragePrompt([]string{"Only question?"}, "transcript body")

	assert.Contains(t, prompt, "1. Only question?")
	assert.Contains(t, prompt, "COVERED_GENERATED_QUESTIONS:")
	assert.Contains(t, prompt, "INTERVIEWER_OWN_QUESTIONS:")
}

func TestBuildFollowUpPrompt_RendersHistory(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildFollowUpPrompt([]models.Message{
		{Role: "user", Content: "Why is the score low?"},
		{Role: "assistant", Content: "The resume lacks AWS experience."},
		{Role: "user", Content: "What should be added?"},
	})

	assert.Contains(t, prompt, "USER: Why is the score low?")
	assert.Contains(t, prompt, "ASSISTANT: The resume lacks AWS experience.")
	assert.Contains(t, prompt, "Answer the last user message")
}

func TestBuildDetectionExplanationPrompt_MissingScores(t *testing.T) {
	pb := NewPromptBuilder()
	score := 74

	prompt := pb.BuildDetectionExplanationPrompt("resume body", &models.DetectionResult{
		Classification:    "Human-Written",
		OverallConfidence: &score,
	})

	require.Contains(t, prompt, "classified as 'Human-Written'")
	assert.Contains(t, prompt, "confidence score of 74%")
	// Unparsed criterion scores render as N/A rather than zero.
	assert.Contains(t, prompt, "Formatting Consistency: N/A%")
}
