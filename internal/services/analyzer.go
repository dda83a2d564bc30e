package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"talentlens/resume-analyzer/internal/models"
)

// maxDocumentChars caps how much extracted text goes into a prompt.
const maxDocumentChars = 15000

// ResumeInput carries an uploaded document or, when Text is set, already
// extracted plain text that skips the extraction step.
type ResumeInput struct {
	Filename string
	Data     []byte
	Text     string
}

// AnalyzerService orchestrates extraction, prompt construction, the provider
// call and result shaping for each analysis mode. Each request runs the full
// pipeline independently; no state is shared across calls and no step is
// retried.
type AnalyzerService interface {
	AnalyzeMatch(ctx context.Context, resume ResumeInput, jobDescription string) (*models.MatchResult, error)
	GenerateQuestions(ctx context.Context, resume ResumeInput, jobDescription string) (*models.QuestionsResult, error)
	EvaluateResponses(ctx context.Context, resume ResumeInput, jobDescription string, questions []string, transcript string) (*models.EvaluationResult, error)
	AnalyzeCoverage(ctx context.Context, generatedQuestions, transcript string) (*models.CoverageResult, error)
	AnswerFollowUp(ctx context.Context, messages []models.Message) (string, error)
	DetectAIResume(ctx context.Context, resume ResumeInput, includeExplanation bool) (*models.DetectionResult, error)
}

type analyzerService struct {
	extractor     TextExtractor
	chat          ChatClient
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(extractor TextExtractor, chat ChatClient) AnalyzerService {
	return &analyzerService{
		extractor:     extractor,
		chat:          chat,
		promptBuilder: NewPromptBuilder(),
	}
}

// AnalyzeMatch implements AnalyzerService.
func (a *analyzerService) AnalyzeMatch(ctx context.Context, resume ResumeInput, jobDescription string) (*models.MatchResult, error) {
	reqID := uuid.New()

	resumeText, err := a.resolveText(reqID, "match", resume)
	if err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildMatchPrompt(resumeText, TruncateText(jobDescription, maxDocumentChars))
	raw, err := a.complete(ctx, reqID, "match", matchSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	result := ShapeMatchResult(raw)
	result.ResumeText = resumeText
	if result.OverallScore == nil {
		log.Printf("[%s] match: no parseable score in model output, returning raw analysis only", reqID)
	}
	return result, nil
}

// GenerateQuestions implements AnalyzerService.
func (a *analyzerService) GenerateQuestions(ctx context.Context, resume ResumeInput, jobDescription string) (*models.QuestionsResult, error) {
	reqID := uuid.New()

	resumeText, err := a.resolveText(reqID, "questions", resume)
	if err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildQuestionsPrompt(resumeText, TruncateText(jobDescription, maxDocumentChars))
	raw, err := a.complete(ctx, reqID, "questions", questionsSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return &models.QuestionsResult{
		Questions: ShapeQuestionList(raw),
		RawText:   raw,
	}, nil
}

// EvaluateResponses implements AnalyzerService.
func (a *analyzerService) EvaluateResponses(ctx context.Context, resume ResumeInput, jobDescription string, questions []string, transcript string) (*models.EvaluationResult, error) {
	reqID := uuid.New()

	if len(questions) == 0 {
		summary := "No questions were asked or evaluated."
		zero := 0
		return &models.EvaluationResult{
			IndividualEvaluations: []models.ResponseEvaluation{},
			OverallScore:          &zero,
			OverallSummary:        summary,
		}, nil
	}

	resumeText, err := a.resolveText(reqID, "evaluate", resume)
	if err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildEvaluationPrompt(
		questions,
		TruncateText(transcript, maxDocumentChars),
		TruncateText(jobDescription, maxDocumentChars),
		resumeText,
	)
	raw, err := a.complete(ctx, reqID, "evaluate", evaluationSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return ShapeEvaluationResult(raw), nil
}

// AnalyzeCoverage implements AnalyzerService.
func (a *analyzerService) AnalyzeCoverage(ctx context.Context, generatedQuestions, transcript string) (*models.CoverageResult, error) {
	reqID := uuid.New()

	questions := ShapeQuestionList(generatedQuestions)
	prompt := a.promptBuilder.BuildCoveragePrompt(questions, TruncateText(transcript, maxDocumentChars))
	raw, err := a.complete(ctx, reqID, "coverage", coverageSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return ShapeCoverageResult(raw, len(questions)), nil
}

// AnswerFollowUp implements AnalyzerService.
func (a *analyzerService) AnswerFollowUp(ctx context.Context, messages []models.Message) (string, error) {
	reqID := uuid.New()

	prompt := a.promptBuilder.BuildFollowUpPrompt(messages)
	raw, err := a.complete(ctx, reqID, "followup", followUpSystemPrompt, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(raw), nil
}

// DetectAIResume implements AnalyzerService.
func (a *analyzerService) DetectAIResume(ctx context.Context, resume ResumeInput, includeExplanation bool) (*models.DetectionResult, error) {
	reqID := uuid.New()

	resumeText, err := a.resolveText(reqID, "detect", resume)
	if err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildDetectionPrompt(resumeText)
	raw, err := a.complete(ctx, reqID, "detect", detectionSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	result := ShapeDetectionResult(raw)

	if includeExplanation {
		explanationPrompt := a.promptBuilder.BuildDetectionExplanationPrompt(resumeText, result)
		explanation, err := a.complete(ctx, reqID, "detect-explain", detectionSystemPrompt, explanationPrompt)
		if err != nil {
			// The classification already succeeded; degrade instead of failing.
			log.Printf("[%s] detect: explanation call failed: %v", reqID, err)
			result.Explanation = "Could not generate detailed explanation."
		} else {
			result.Explanation = strings.TrimSpace(explanation)
		}
	}

	return result, nil
}

// resolveText runs the extraction step for file uploads, or trims and caps
// pre-extracted text.
func (a *analyzerService) resolveText(reqID uuid.UUID, mode string, resume ResumeInput) (string, error) {
	if resume.Text != "" {
		return TruncateText(CleanText(resume.Text), maxDocumentChars), nil
	}

	log.Printf("[%s] %s: extracting text from %q (%d bytes)", reqID, mode, resume.Filename, len(resume.Data))
	text, err := a.extractor.ExtractText(resume.Filename, resume.Data)
	if err != nil {
		return "", fmt.Errorf("extract resume: %w", err)
	}

	return TruncateText(text, maxDocumentChars), nil
}

func (a *analyzerService) complete(ctx context.Context, reqID uuid.UUID, mode, systemPrompt, userPrompt string) (string, error) {
	log.Printf("[%s] %s: calling model, prompt length %d", reqID, mode, len(userPrompt))

	raw, err := a.chat.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("%s analysis: %w", mode, err)
	}

	log.Printf("[%s] %s: model reply length %d", reqID, mode, len(raw))
	return strings.TrimSpace(raw), nil
}
