package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resumeai/reviewer/internal/models"
)

// Component weights for the ATS compatibility score.
var atsWeights = struct {
	keywords       float64
	experience     float64
	projects       float64
	certifications float64
	formatting     float64
}{0.40, 0.30, 0.15, 0.10, 0.05}

type ATSReport struct {
	OverallScore       float64
	KeywordScore       float64
	ExperienceScore    float64
	ProjectScore       float64
	CertificationScore float64
	FormattingScore    float64
	MatchingKeywords   []string
	MissingKeywords    []string
	MissingSections    []string
	Suggestions        []string
}

// ATSScorerService rates how well a resume matches a job description using
// keyword density, experience relevance, and structural checks.
type ATSScorerService interface {
	Score(record *models.ResumeRecord, jobDescription string) ATSReport
}

type atsScorerService struct{}

func NewATSScorerService() ATSScorerService {
	return &atsScorerService{}
}

var wordPattern = regexp.MustCompile(`\b\w{3,}\b`)

var stopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "and": {}, "the": {},
	"for": {}, "are": {}, "also": {}, "your": {}, "have": {}, "been": {},
	"was": {}, "will": {}, "you": {}, "our": {}, "their": {},
}

// Score implements ATSScorerService.
func (a *atsScorerService) Score(record *models.ResumeRecord, jobDescription string) ATSReport {
	var report ATSReport

	jdKeywords := extractKeywords(jobDescription)

	// 1. Keyword score (40%)
	resumeText := record.RawText + " " + record.Sections[models.SectionSkills]
	resumeKeywords := extractKeywords(resumeText)
	matching, missing := intersectKeywords(jdKeywords, resumeKeywords)
	if len(jdKeywords) > 0 {
		report.KeywordScore = clampScore(float64(len(matching)) / float64(len(jdKeywords)) * 100)
	}
	report.MatchingKeywords = topN(matching, 10)
	report.MissingKeywords = topN(missing, 10)

	// 2. Experience score (30%): density of JD keywords in the experience section
	expText := record.Sections[models.SectionExperience]
	if strings.TrimSpace(expText) != "" && len(jdKeywords) > 0 {
		expMatches, _ := intersectKeywords(jdKeywords, extractKeywords(expText))
		report.ExperienceScore = clampScore(float64(len(expMatches)) / (float64(len(jdKeywords)) * 0.5) * 100)
	}

	// 3. Project score (15%): presence and depth
	report.ProjectScore = scoreProjects(record.Sections[models.SectionProjects])

	// 4. Certification score (10%): presence check
	if strings.TrimSpace(record.Sections[models.SectionCertifications]) != "" {
		report.CertificationScore = 100
	}

	// 5. Formatting score (5%): standard sections present
	report.FormattingScore, report.MissingSections = scoreFormatting(record.Sections)

	report.OverallScore = roundTo(
		report.KeywordScore*atsWeights.keywords+
			report.ExperienceScore*atsWeights.experience+
			report.ProjectScore*atsWeights.projects+
			report.CertificationScore*atsWeights.certifications+
			report.FormattingScore*atsWeights.formatting,
		2,
	)

	report.Suggestions = buildSuggestions(report)

	return report
}

func extractKeywords(text string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := stopWords[word]; !stop {
			keywords[word] = struct{}{}
		}
	}
	return keywords
}

func intersectKeywords(required, present map[string]struct{}) (matching, missing []string) {
	for word := range required {
		if _, ok := present[word]; ok {
			matching = append(matching, word)
		} else {
			missing = append(missing, word)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)
	return matching, missing
}

func scoreProjects(projectText string) float64 {
	if strings.TrimSpace(projectText) == "" {
		return 0
	}

	wordCount := len(strings.Fields(projectText))
	switch {
	case wordCount > 100:
		return 100
	case wordCount > 50:
		return 70
	default:
		return 40
	}
}

func scoreFormatting(sections map[string]string) (float64, []string) {
	required := []string{models.SectionEducation, models.SectionExperience, models.SectionSkills}

	var missing []string
	found := 0
	for _, name := range required {
		if strings.TrimSpace(sections[name]) != "" {
			found++
		} else {
			missing = append(missing, name)
		}
	}

	return float64(found) / float64(len(required)) * 100, missing
}

func buildSuggestions(report ATSReport) []string {
	var suggestions []string

	if report.KeywordScore < 70 && len(report.MissingKeywords) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Add more keywords from the job description, especially: %s",
			strings.Join(topN(report.MissingKeywords, 3), ", ")))
	}
	if report.ExperienceScore < 50 {
		suggestions = append(suggestions, "Tailor your experience bullet points to better match the target role's requirements.")
	}
	if report.ProjectScore == 0 {
		suggestions = append(suggestions, "Add a projects section to demonstrate practical application of your skills.")
	}
	if report.FormattingScore < 100 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Ensure your resume has these standard sections: %s",
			strings.Join(report.MissingSections, ", ")))
	}

	return suggestions
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func clampScore(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
