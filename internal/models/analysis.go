package models

// MatchResult is the shaped output of a resume/job-description match analysis.
// Score fields are pointers: when the model reply cannot be parsed they stay
// nil and only RawAnalysis is populated.
type MatchResult struct {
	OverallScore     *int              `json:"overall_score,omitempty"`
	CriteriaScores   map[string]int    `json:"criteria_scores,omitempty"`
	HardRequirements map[string]string `json:"hard_requirements_match,omitempty"`
	Strengths        []string          `json:"strengths,omitempty"`
	RawAnalysis      string            `json:"analysis_raw"`
	ResumeText       string            `json:"extracted_resume_text,omitempty"`
}

// QuestionsResult holds generated interview questions.
type QuestionsResult struct {
	Questions []string `json:"questions"`
	RawText   string   `json:"questions_raw"`
}

// ResponseEvaluation scores a single answered interview question.
type ResponseEvaluation struct {
	Question        string `json:"question"`
	ResponseSummary string `json:"response_summary"`
	Score           int    `json:"score"`
	Rationale       string `json:"rationale"`
}

// EvaluationResult is the holistic assessment of a candidate's responses.
type EvaluationResult struct {
	IndividualEvaluations []ResponseEvaluation `json:"individual_evaluations"`
	OverallScore          *int                 `json:"overall_interview_score,omitempty"`
	OverallSummary        string               `json:"overall_interview_summary,omitempty"`
	RawText               string               `json:"evaluation_raw"`
}

// CoverageResult classifies generated questions against an interview transcript.
type CoverageResult struct {
	CoveredQuestions     []string `json:"covered_generated_questions"`
	UncoveredQuestions   []string `json:"uncovered_generated_questions"`
	InterviewerQuestions []string `json:"interviewer_own_questions"`
	GeneratedCount       int      `json:"original_generated_count"`
	RawText              string   `json:"analysis_raw"`
}

// DetectionResult reports whether a resume looks AI-generated.
type DetectionResult struct {
	Classification    string `json:"classification"`
	OverallConfidence *int   `json:"overall_confidence_score,omitempty"`
	FormattingScore   *int   `json:"formatting_consistency_score,omitempty"`
	LanguageScore     *int   `json:"language_use_score,omitempty"`
	DetailScore       *int   `json:"detail_depth_score,omitempty"`
	ErrorScore        *int   `json:"error_detection_score,omitempty"`
	Explanation       string `json:"explanation,omitempty"`
	RawText           string `json:"analysis_raw"`
}
