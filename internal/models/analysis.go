package models

import (
	"strconv"
	"strings"
)

// AnalysisResult is the full response of the analyze endpoint: rule-based
// ATS scoring and skill-gap comparison, project recommendations, and
// optional LLM-enriched insights.
type AnalysisResult struct {
	OverallScore    float64                 `json:"overall_score"`
	SkillGap        SkillGap                `json:"skill_gap"`
	Recommendations []ProjectRecommendation `json:"recommendations"`
	GeneralTips     []string                `json:"general_tips,omitempty"`
	Suggestions     []string                `json:"suggestions,omitempty"`
	TargetRole      string                  `json:"target_role"`

	// LLM-enriched fields; absent when the model is unavailable.
	ATSScore           *ATSInsight `json:"ats_score,omitempty"`
	LearningRoadmap    []string    `json:"learning_roadmap,omitempty"`
	ResumeImprovements []string    `json:"resume_improvements,omitempty"`
}

// SkillGap classifies each required skill as a strong match, a weak match,
// or missing from the resume.
type SkillGap struct {
	MatchPercentage float64     `json:"match_percentage"`
	StrongMatches   []string    `json:"strong_matches"`
	WeakMatches     []WeakMatch `json:"weak_matches"`
	MissingSkills   []string    `json:"missing_skills"`
}

type WeakMatch struct {
	Skill  string `json:"skill"`
	Detail string `json:"detail"`
}

type ProjectRecommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	TechStack   []string `json:"tech_stack"`
	Bullets     []string `json:"bullets"`
}

type ATSInsight struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// MentorContext is the typed payload derived from an analysis result and
// handed to the mentor chat as grounding. It renders to a compact string;
// the zero value renders to "".
type MentorContext struct {
	TargetRole    string   `json:"target_role,omitempty"`
	OverallScore  float64  `json:"overall_score,omitempty"`
	StrongMatches []string `json:"strong_matches,omitempty"`
	MissingSkills []string `json:"missing_skills,omitempty"`
}

func (c MentorContext) IsZero() bool {
	return c.TargetRole == "" && c.OverallScore == 0 &&
		len(c.StrongMatches) == 0 && len(c.MissingSkills) == 0
}

// Render produces the context string sent to the assistant backend.
func (c MentorContext) Render() string {
	if c.IsZero() {
		return ""
	}

	var b strings.Builder
	if c.TargetRole != "" {
		b.WriteString("Target role: " + c.TargetRole + "\n")
	}
	if c.OverallScore > 0 {
		b.WriteString("Overall resume score: " + formatScore(c.OverallScore) + "/100\n")
	}
	if len(c.StrongMatches) > 0 {
		b.WriteString("Strong skills: " + strings.Join(c.StrongMatches, ", ") + "\n")
	}
	if len(c.MissingSkills) > 0 {
		b.WriteString("Missing skills: " + strings.Join(c.MissingSkills, ", ") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// MentorContextFrom extracts the chat context from an analysis result.
func MentorContextFrom(result *AnalysisResult) MentorContext {
	if result == nil {
		return MentorContext{}
	}
	return MentorContext{
		TargetRole:    result.TargetRole,
		OverallScore:  result.OverallScore,
		StrongMatches: result.SkillGap.StrongMatches,
		MissingSkills: result.SkillGap.MissingSkills,
	}
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
