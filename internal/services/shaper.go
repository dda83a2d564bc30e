package services

import (
	"regexp"
	"strconv"
	"strings"

	"talentlens/resume-analyzer/internal/models"
)

// Shaping is best-effort by contract: a reply the parsers cannot make sense
// of still produces a result carrying the raw model text, with the derived
// fields left unset. None of these functions return an error.

var (
	overallScoreRe  = regexp.MustCompile(`OVERALL_SCORE:\s*(\d+)\s*/\s*100`)
	criteriaScoreRe = regexp.MustCompile(`(?m)^\s*([A-Za-z][A-Za-z /().,&'-]*[A-Za-z)])\s*:\s*(\d+)\s*/\s*100`)
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Z_]+[A-Z]:`)
	numberedLineRe  = regexp.MustCompile(`^\s*(\d+)[.)]\s*(.+)$`)
	interviewScoreRe = regexp.MustCompile(`Overall Score:\s*(\d+)\s*/\s*100`)
	responseScoreRe  = regexp.MustCompile(`Score:\s*(\d+)\s*/\s*10\b`)
	detectionScoreRe = map[string]*regexp.Regexp{
		"overall":    regexp.MustCompile(`Overall Confidence Score:\s*(\d+)`),
		"formatting": regexp.MustCompile(`Formatting Consistency Score:\s*(\d+)`),
		"language":   regexp.MustCompile(`Language Use Score:\s*(\d+)`),
		"detail":     regexp.MustCompile(`Detail Depth Score:\s*(\d+)`),
		"errors":     regexp.MustCompile(`Error Detection Score:\s*(\d+)`),
	}
	classificationRe = regexp.MustCompile(`Classification:\s*(.+)`)
)

// ShapeMatchResult parses the structured match-analysis reply.
func ShapeMatchResult(raw string) *models.MatchResult {
	result := &models.MatchResult{RawAnalysis: raw}

	if m := overallScoreRe.FindStringSubmatch(raw); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil && score >= 0 && score <= 100 {
			result.OverallScore = &score
		}
	}

	for _, m := range criteriaScoreRe.FindAllStringSubmatch(raw, -1) {
		label := strings.TrimSpace(m[1])
		if strings.EqualFold(label, "OVERALL_SCORE") || strings.EqualFold(label, "Overall Score") {
			continue
		}
		score, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if result.CriteriaScores == nil {
			result.CriteriaScores = make(map[string]int)
		}
		result.CriteriaScores[label] = score
	}

	for _, line := range sectionLines(raw, "HARD_REQUIREMENTS_MATCH:") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if result.HardRequirements == nil {
			result.HardRequirements = make(map[string]string)
		}
		result.HardRequirements[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	result.Strengths = bulletItems(sectionLines(raw, "STRENGTHS:"))

	return result
}

// ShapeQuestionList parses a numbered question list, falling back to plain
// non-empty lines when no numbering is found.
func ShapeQuestionList(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		if m := numberedLineRe.FindStringSubmatch(line); m != nil {
			if q := strings.TrimSpace(m[2]); q != "" {
				questions = append(questions, q)
			}
		}
	}
	if len(questions) > 0 {
		return questions
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "---") {
			questions = append(questions, line)
		}
	}
	return questions
}

// ShapeEvaluationResult parses per-question evaluation blocks and the overall
// interview assessment.
func ShapeEvaluationResult(raw string) *models.EvaluationResult {
	result := &models.EvaluationResult{RawText: raw}

	if m := interviewScoreRe.FindStringSubmatch(raw); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil && score >= 0 && score <= 100 {
			result.OverallScore = &score
		}
	}

	if idx := strings.Index(raw, "Overall Summary:"); idx != -1 {
		summary := raw[idx+len("Overall Summary:"):]
		if end := strings.Index(summary, "--- EVALUATION END ---"); end != -1 {
			summary = summary[:end]
		}
		result.OverallSummary = strings.TrimSpace(summary)
	}

	body := raw
	if idx := strings.Index(body, "--- OVERALL INTERVIEW PERFORMANCE ---"); idx != -1 {
		body = body[:idx]
	}

	for _, block := range strings.Split(body, "\n---") {
		eval, ok := shapeEvaluationBlock(block)
		if ok {
			result.IndividualEvaluations = append(result.IndividualEvaluations, eval)
		}
	}

	return result
}

func shapeEvaluationBlock(block string) (models.ResponseEvaluation, bool) {
	var eval models.ResponseEvaluation

	question := fieldValue(block, "Question:")
	if question == "" {
		return eval, false
	}
	eval.Question = question
	eval.ResponseSummary = fieldValue(block, "Response Summary:")
	eval.Rationale = fieldValue(block, "Rationale:")

	if m := responseScoreRe.FindStringSubmatch(block); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil {
			eval.Score = score
		}
	}

	return eval, true
}

// ShapeCoverageResult parses the covered/uncovered/interviewer-own sections.
func ShapeCoverageResult(raw string, generatedCount int) *models.CoverageResult {
	return &models.CoverageResult{
		CoveredQuestions:     bulletItems(sectionLines(raw, "COVERED_GENERATED_QUESTIONS:")),
		UncoveredQuestions:   bulletItems(sectionLines(raw, "UNCOVERED_GENERATED_QUESTIONS:")),
		InterviewerQuestions: bulletItems(sectionLines(raw, "INTERVIEWER_OWN_QUESTIONS:")),
		GeneratedCount:       generatedCount,
		RawText:              raw,
	}
}

// ShapeDetectionResult parses the line-by-line AI-detection reply.
func ShapeDetectionResult(raw string) *models.DetectionResult {
	result := &models.DetectionResult{RawText: raw}

	if m := classificationRe.FindStringSubmatch(raw); m != nil {
		result.Classification = strings.TrimSpace(m[1])
	}
	result.OverallConfidence = detectionScore(raw, "overall")
	result.FormattingScore = detectionScore(raw, "formatting")
	result.LanguageScore = detectionScore(raw, "language")
	result.DetailScore = detectionScore(raw, "detail")
	result.ErrorScore = detectionScore(raw, "errors")

	return result
}

func detectionScore(raw, key string) *int {
	m := detectionScoreRe[key].FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &score
}

// sectionLines returns the trimmed lines following a section header, up to
// the next all-caps header or the end of the text. The header must open its
// own line; UNCOVERED_GENERATED_QUESTIONS contains COVERED_GENERATED_QUESTIONS
// as a substring, so a plain index search would misattribute sections.
func sectionLines(text, header string) []string {
	var lines []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !inSection {
			if strings.HasPrefix(trimmed, header) {
				inSection = true
			}
			continue
		}
		if sectionHeaderRe.MatchString(trimmed) {
			break
		}
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func bulletItems(lines []string) []string {
	var items []string
	for _, line := range lines {
		if strings.HasPrefix(line, "- ") {
			if item := strings.TrimSpace(line[2:]); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

func fieldValue(block, field string) string {
	idx := strings.Index(block, field)
	if idx == -1 {
		return ""
	}
	value := block[idx+len(field):]
	if end := strings.Index(value, "\n"); end != -1 {
		value = value[:end]
	}
	return strings.TrimSpace(value)
}
