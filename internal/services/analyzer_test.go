package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlens/resume-analyzer/internal/models"
)

// stubChatClient records calls and replays canned replies, in order.
type stubChatClient struct {
	mu      sync.Mutex
	calls   int
	replies []string
	err     error
}

func (s *stubChatClient) Complete(_ context.Context, _, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", nil
	}
	reply := s.replies[0]
	if len(s.replies) > 1 {
		s.replies = s.replies[1:]
	}
	return reply, nil
}

func (s *stubChatClient) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestAnalyzer(chat ChatClient) AnalyzerService {
	return NewAnalyzerService(NewTextExtractor(), chat)
}

func TestAnalyzeMatch_HighBandScenario(t *testing.T) {
	stub := &stubChatClient{replies: []string{sampleMatchReply}}
	analyzer := newTestAnalyzer(stub)

	result, err := analyzer.AnalyzeMatch(context.Background(),
		ResumeInput{Text: "5 years Python, FastAPI, AWS"},
		"Senior Python backend engineer, AWS required",
	)

	require.NoError(t, err)
	require.NotNil(t, result.OverallScore)
	assert.GreaterOrEqual(t, *result.OverallScore, 70)
	assert.NotEmpty(t, result.Strengths)
	assert.Equal(t, "5 years Python, FastAPI, AWS", result.ResumeText)
	assert.Equal(t, 1, stub.callCount())
}

func TestAnalyzeMatch_UnparseableReplyDegrades(t *testing.T) {
	stub := &stubChatClient{replies: []string{"a rambling reply with no score at all"}}
	analyzer := newTestAnalyzer(stub)

	result, err := analyzer.AnalyzeMatch(context.Background(),
		ResumeInput{Text: "resume"}, "job description")

	require.NoError(t, err)
	assert.Nil(t, result.OverallScore)
	assert.Equal(t, "a rambling reply with no score at all", result.RawAnalysis)
}

func TestAnalyzeMatch_ProviderErrorPropagates(t *testing.T) {
	stub := &stubChatClient{err: fmt.Errorf("%w: HTTP 429", ErrRateLimited)}
	analyzer := newTestAnalyzer(stub)

	result, err := analyzer.AnalyzeMatch(context.Background(),
		ResumeInput{Text: "resume"}, "job description")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Nil(t, result, "no partial result may be fabricated on provider failure")
}

func TestAnalyzeMatch_ExtractionFailureSkipsModelCall(t *testing.T) {
	stub := &stubChatClient{}
	analyzer := newTestAnalyzer(stub)

	_, err := analyzer.AnalyzeMatch(context.Background(),
		ResumeInput{Filename: "resume.pdf", Data: []byte("not a pdf")},
		"job description")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadableDocument)
	assert.Equal(t, 0, stub.callCount())
}

func TestGenerateQuestions(t *testing.T) {
	stub := &stubChatClient{replies: []string{"1. First question?\n2. Second question?"}}
	analyzer := newTestAnalyzer(stub)

	result, err := analyzer.GenerateQuestions(context.Background(),
		ResumeInput{Text: "resume"}, "job description")

	require.NoError(t, err)
	assert.Equal(t, []string{"First question?", "Second question?"}, result.Questions)
	assert.Equal(t, 1, stub.callCount())
}

func TestEvaluateResponses_NoQuestionsShortCircuits(t *testing.T) {
	stub := &stubChatClient{}
	analyzer := newTestAnalyzer(stub)

	result, err := analyzer.EvaluateResponses(context.Background(),
		ResumeInput{Text: "resume"}, "job description", nil, "transcript")

	require.NoError(t, err)
	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 0, *result.OverallScore)
	assert.Equal(t, "No questions were asked or evaluated.", result.OverallSummary)
	assert.Equal(t, 0, stub.callCount(), "no model call without questions")
}

func TestEvaluateResponses(t *testing.T) {
	stub := &stubChatClient{replies: []string{sampleEvaluationReply}}
	analyzer := newTestAnalyzer(stub)

	result, err := analyzer.EvaluateResponses(context.Background(),
		ResumeInput{Text: "resume"}, "job description",
		[]string{"Tell me about your experience with FastAPI.", "How have you handled AWS cost optimization?"},
		"transcript")

	require.NoError(t, err)
	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 72, *result.OverallScore)
	assert.Len(t, result.IndividualEvaluations, 2)
}

func TestAnalyzeCoverage_CountsParsedQuestions(t *testing.T) {
	stub := &stubChatClient{replies: []string{"COVERED_GENERATED_QUESTIONS:\n- First question?"}}
	analyzer := newTestAnalyzer(stub)

	result, err := analyzer.AnalyzeCoverage(context.Background(),
		"1. First question?\n2. Second question?", "transcript")

	require.NoError(t, err)
	assert.Equal(t, 2, result.GeneratedCount)
	assert.Equal(t, []string{"First question?"}, result.CoveredQuestions)
}

func TestAnswerFollowUp(t *testing.T) {
	stub := &stubChatClient{replies: []string{"  Add AWS projects to the resume.  "}}
	analyzer := newTestAnalyzer(stub)

	answer, err := analyzer.AnswerFollowUp(context.Background(), []models.Message{
		{Role: "user", Content: "What should be added?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Add AWS projects to the resume.", answer)
}

func TestDetectAIResume_WithExplanation(t *testing.T) {
	detectionReply := "Classification: AI-Generated\nOverall Confidence Score: 88"
	stub := &stubChatClient{replies: []string{detectionReply, "Detailed explanation of the scores."}}
	analyzer := newTestAnalyzer(stub)

	result, err := analyzer.DetectAIResume(context.Background(),
		ResumeInput{Text: "resume"}, true)

	require.NoError(t, err)
	assert.Equal(t, "AI-Generated", result.Classification)
	require.NotNil(t, result.OverallConfidence)
	assert.Equal(t, 88, *result.OverallConfidence)
	assert.Equal(t, "Detailed explanation of the scores.", result.Explanation)
	assert.Equal(t, 2, stub.callCount())
}

func TestDetectAIResume_WithoutExplanation(t *testing.T) {
	stub := &stubChatClient{replies: []string{"Classification: Human-Written"}}
	analyzer := newTestAnalyzer(stub)

	result, err := analyzer.DetectAIResume(context.Background(),
		ResumeInput{Text: "resume"}, false)

	require.NoError(t, err)
	assert.Empty(t, result.Explanation)
	assert.Equal(t, 1, stub.callCount())
}
