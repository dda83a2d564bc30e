package services

import (
	"fmt"
	"strings"

	"talentlens/resume-analyzer/internal/models"
)

// System prompts, one per analysis mode.
const (
	matchSystemPrompt = "You are a highly precise recruitment AI. You are an expert in detailed resume analysis against job descriptions and strictly follow output formatting instructions."

	questionsSystemPrompt = "You are an expert interviewer, skilled at generating insightful and probing questions based on resume and job description analysis."

	evaluationSystemPrompt = "You are an expert interview evaluator, highly skilled at analyzing interview transcripts, summarizing responses, and providing precise scores and rationales based on job descriptions and resumes."

	coverageSystemPrompt = "You are a precise interview analysis AI. You categorize questions based on a given list and transcript content, strictly adhering to output formats. Do not hallucinate or create new questions for coverage analysis."

	followUpSystemPrompt = "You are a helpful recruitment assistant. Answer the follow-up question using only the job description, resume and conversation history provided."

	detectionSystemPrompt = "Your task is to determine whether the given resume is AI-generated and provide scores."
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchPrompt creates the prompt for resume/job-description scoring.
// The output format block is the contract the shaper parses against.
func (pb *PromptBuilder) BuildMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert AI recruitment assistant. Your task is to meticulously analyze a candidate's resume against a specific job description.
You must provide a detailed compatibility analysis. It is CRUCIAL that your response STRICTLY adheres to the precise format specified below.

--- Job Description (JD) ---
%s

--- Candidate Resume ---
%s

--- Analysis ---
Based on the provided Job Description and Candidate Resume, deliver your analysis. PAY VERY CLOSE ATTENTION to the required output format, including all headers, sub-headers, and bullet point styling.

REQUIRED OUTPUT FORMAT (Strict Adherence Necessary):
OVERALL_SCORE: [score]/100

CRITERIA_SCORES:
Technical Skills Match: [score]/100
Experience Relevance: [score]/100
Education Background: [score]/100
Responsibilities Alignment: [score]/100
Soft Skills/Communication: [score]/100

HARD_REQUIREMENTS_MATCH:
Location Match: [Yes/No/Not Specified in JD]
Full-time Availability: [Yes/No/Not Specified in JD]
Minimum Experience Met: [Yes/No/Not Specified in JD/Cannot Determine]
Other Specific Requirements Met (e.g., Certifications, Specific Tools, etc.): [Yes/No/Not Specified in JD/N/A]

STRENGTHS:
- [Strength 1: A concise point directly highlighting how the candidate meets a key JD requirement.]
- [Strength 2: Another specific, concise point of alignment with the JD.]
- [Strength n: Mention n number of strengths only if related to the current Job Description.]

IMPORTANT INSTRUCTIONS FOR THE AI MODEL:
1. The section headers (OVERALL_SCORE, CRITERIA_SCORES, HARD_REQUIREMENTS_MATCH, STRENGTHS) and criteria sub-headers MUST be reproduced EXACTLY as shown above.
2. Each score MUST be an integer followed immediately by '/100'.
3. Each item under HARD_REQUIREMENTS_MATCH MUST use one of the specified values: 'Yes', 'No', 'Not Specified in JD', 'Cannot Determine', 'N/A'.
4. Each item under STRENGTHS MUST be a bullet point starting with '- ' (a hyphen followed by a single space).
5. Ensure there are blank lines separating the sections as shown in the example format.
6. Do NOT add any introductory or concluding sentences around these structured blocks.
7. The content for strengths should be concise, professional, and directly relevant to the comparison between the resume and the job description.
8. CRITICAL: DO NOT include any 'AREAS_FOR_IMPROVEMENT' section or similar constructive feedback. Only provide STRENGTHS.`,
		jobDescription, resumeText)
}

// BuildQuestionsPrompt creates the prompt for interview-question generation.
func (pb *PromptBuilder) BuildQuestionsPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an AI assistant acting as an expert interviewer. Based on the following resume and job description, generate 15 relevant and insightful interview questions for the candidate. Focus on clarifying their experience, assessing technical skills, understanding problem-solving abilities, and evaluating cultural fit for the role.
Present the questions as a numbered list from 1 to 15. Ensure questions are open-ended and probe for specific examples (STAR method encouragement where applicable).

--- JOB DESCRIPTION ---
%s

--- RESUME ---
%s

--- INTERVIEW QUESTIONS ---`,
		jobDescription, resumeText)
}

// BuildEvaluationPrompt creates the prompt for holistic candidate-response evaluation.
func (pb *PromptBuilder) BuildEvaluationPrompt(questions []string, transcript, jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert interview evaluator. Your task is to meticulously evaluate the candidate's response to EACH question identified as asked during the interview. Use the provided Job Description and Candidate Resume as context for evaluation.

For each question, provide:
1. The full text of the question.
2. A concise summary of the candidate's relevant response from the transcript.
3. A score for the response (out of 10), considering relevance, depth/specificity, technical accuracy, clarity, and alignment with the JD and resume.
4. A brief rationale (1-2 sentences) for the score.

After evaluating all individual questions, provide an overall assessment:
5. An Overall Interview Performance Score (out of 100), based on all responses.
6. A Concise Overall Summary (2-4 sentences) of the candidate's interview performance.

IMPORTANT: If a question was listed as 'asked' but no clear answer is present in the transcript for that specific question, indicate 'No clear response found' for the summary and score 0/10 with rationale.

--- QUESTIONS ASKED IN INTERVIEW ---
%s

--- INTERVIEW TRANSCRIPT ---
%s

--- JOB DESCRIPTION ---
%s

--- CANDIDATE RESUME ---
%s

OUTPUT FORMAT (Strict Adherence):
--- EVALUATION START ---
Question: [Full text of question 1]
Response Summary: [Concise summary of candidate's relevant answer]
Score: X/10
Rationale: [Brief explanation for score based on criteria]
---
...
--- OVERALL INTERVIEW PERFORMANCE ---
Overall Score: Z/100
Overall Summary: [Concise 2-4 sentence summary of performance]
--- EVALUATION END ---`,
		numberQuestions(questions), transcript, jobDescription, resumeText)
}

// BuildCoveragePrompt creates the prompt for classifying generated questions
// against an interview transcript.
func (pb *PromptBuilder) BuildCoveragePrompt(generatedQuestions []string, transcript string) string {
	return fmt.Sprintf(`You are an expert interviewer and interview analysis AI. Your task is to analyze a conversation transcript against a list of pre-generated interview questions.

Instructions:
1. Identify Covered Generated Questions: from the 'PRE-GENERATED QUESTIONS' list, identify ALL questions that were clearly asked or semantically covered by the interviewer in the 'INTERVIEW TRANSCRIPT'. The exact phrasing does not need to match, but the essence of the question must be clearly addressed.
2. Identify Uncovered Generated Questions: from the 'PRE-GENERATED QUESTIONS' list, identify ALL questions that were not covered in the transcript.
3. Identify Interviewer's Own Questions: list any distinct questions asked by the interviewer that are not semantically similar to any of the 'PRE-GENERATED QUESTIONS'. Focus only on explicit questions ending in '?' or clear interrogative phrases from the interviewer's side.

PRE-GENERATED QUESTIONS (Exactly as provided, use these for comparison):
%s

INTERVIEW TRANSCRIPT:
%s

OUTPUT FORMAT (Strict Adherence):

COVERED_GENERATED_QUESTIONS:
- [Full text of generated question that was covered]
...

UNCOVERED_GENERATED_QUESTIONS:
- [Full text of generated question that was NOT covered]
...

INTERVIEWER_OWN_QUESTIONS:
- [Full text of interviewer's unique question]
...`,
		numberQuestions(generatedQuestions), transcript)
}

// BuildFollowUpPrompt flattens a chat history into a single prompt. The
// provider interface carries one system and one user message, so prior turns
// are rendered as a transcript.
func (pb *PromptBuilder) BuildFollowUpPrompt(messages []models.Message) string {
	var sb strings.Builder
	sb.WriteString("--- CONVERSATION HISTORY ---\n")
	for _, msg := range messages {
		sb.WriteString(strings.ToUpper(msg.Role))
		sb.WriteString(": ")
		sb.WriteString(strings.TrimSpace(msg.Content))
		sb.WriteString("\n\n")
	}
	sb.WriteString("Answer the last user message in the conversation above. Be direct and concise.")
	return sb.String()
}

// BuildDetectionPrompt creates the prompt for AI-generated-resume detection.
func (pb *PromptBuilder) BuildDetectionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an AI Resume Detector.

Your task is to analyze a given resume and determine whether it was generated by an AI or written by a human.

Evaluate the resume based on the following criteria:

1. Formatting Consistency: check layout structure, alignment, font usage, and section organization.
2. Language Use: analyze tone, vocabulary diversity, sentence complexity, and naturalness of expression.
3. Detail Depth: evaluate specificity and contextual richness of job descriptions, achievements, and skills.
4. Error Detection: identify grammatical, typographical, and syntactical errors.

Return the following output in a clear, line-by-line format. Do NOT include any explanations in this initial response.

Classification: [AI-Generated/Human-Written]
Overall Confidence Score: [0-100]
Formatting Consistency Score: [0-100]
Language Use Score: [0-100]
Detail Depth Score: [0-100]
Error Detection Score: [0-100]

Resume Text:
%s`, resumeText)
}

// BuildDetectionExplanationPrompt creates the second-pass prompt elaborating
// on a prior detection result.
func (pb *PromptBuilder) BuildDetectionExplanationPrompt(resumeText string, result *models.DetectionResult) string {
	return fmt.Sprintf(`Based on the previous analysis of the following resume, which was classified as '%s' with an overall confidence score of %s%% and individual scores as follows:
- Formatting Consistency: %s%%
- Language Use: %s%%
- Detail Depth: %s%%
- Error Detection: %s%%

Please provide a detailed explanation for each of these scores and the overall classification. Elaborate on the specific aspects of the resume that led to these conclusions, referencing the criteria: Formatting Consistency, Language Use, Detail Depth, and Error Detection.

Resume Text:
%s`,
		result.Classification,
		scoreOrNA(result.OverallConfidence),
		scoreOrNA(result.FormattingScore),
		scoreOrNA(result.LanguageScore),
		scoreOrNA(result.DetailScore),
		scoreOrNA(result.ErrorScore),
		resumeText)
}

func numberQuestions(questions []string) string {
	var parts []string
	for i, q := range questions {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, strings.TrimSpace(q)))
	}
	return strings.Join(parts, "\n")
}

func scoreOrNA(score *int) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *score)
}
