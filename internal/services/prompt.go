package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumeai/reviewer/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildInsightsPrompt creates the prompt for the LLM deep-analysis pass.
// The output schema matches llmInsights.
func (pb *PromptBuilder) BuildInsightsPrompt(record *models.ResumeRecord, targetRole string, requiredSkills []string) string {
	resumeJSON, err := json.Marshal(record)
	if err != nil {
		resumeJSON = []byte(record.RawText)
	}

	return fmt.Sprintf(`You are an expert AI Career Coach and Resume Reviewer.
Your task is to analyze a candidate's resume against a specific target role.

Output MUST be a valid JSON object with the following structure:
{
  "ats_score": {
    "score": <0-100>,
    "explanation": "<string>"
  },
  "missing_skills": ["<skill1>", "<skill2>", "<skill3>"],
  "project_recommendations": [
    {
      "title": "<title>",
      "tech_stack": ["<tech1>", "<tech2>"],
      "impact": "<description>"
    }
  ],
  "learning_roadmap": ["<month1_goal>", "<month2_goal>", "<month3_goal>"],
  "resume_improvements": ["<tip1>", "<tip2>"]
}

RESUME DATA:
%s

TARGET ROLE:
%s

JOB REQUIREMENTS:
%s

Analyze and provide the JSON output.`,
		resumeJSON, targetRole, strings.Join(requiredSkills, ", "))
}

// BuildMentorPrompt creates the prompt for the career-mentor chat. The
// context block is omitted when empty.
func (pb *PromptBuilder) BuildMentorPrompt(message, context string) string {
	instruction := `You are a helpful and encouraging Career Mentor.
Answer questions briefly and professionally.
If context about the user's resume is available, use it to personalize advice.`

	if context != "" {
		instruction += fmt.Sprintf("\n\nUSER CONTEXT:\n%s", context)
	}

	return fmt.Sprintf("%s\n\nUSER QUESTION:\n%s", instruction, message)
}

// BuildRoleText flattens a catalog role into the text that gets embedded
// for similar-role search.
func (pb *PromptBuilder) BuildRoleText(role models.Role) string {
	return fmt.Sprintf("%s %s %s", role.Title, role.Description, strings.Join(role.Skills, " "))
}
