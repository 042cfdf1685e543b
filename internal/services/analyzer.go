package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"resumeai/reviewer/internal/models"
	"resumeai/reviewer/internal/repositories"
)

// AnalyzerService runs the full analysis pipeline for one resume against a
// target role: role lookup, ATS scoring, skill-gap comparison, project
// recommendations, and the optional LLM insights pass.
type AnalyzerService interface {
	Analyze(ctx context.Context, record *models.ResumeRecord, targetRole string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	analysisRepo  repositories.AnalysisRepository
	gemini        GeminiService
	roleStore     RoleStoreService
	atsScorer     ATSScorerService
	skillGap      SkillGapService
	recommender   RecommenderService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	gemini GeminiService,
	roleStore RoleStoreService,
	atsScorer ATSScorerService,
	skillGap SkillGapService,
	recommender RecommenderService,
	maxRetries int,
) AnalyzerService {
	return &analyzerService{
		analysisRepo:  analysisRepo,
		gemini:        gemini,
		roleStore:     roleStore,
		atsScorer:     atsScorer,
		skillGap:      skillGap,
		recommender:   recommender,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// llmInsights is the JSON shape the insights prompt asks the model for.
type llmInsights struct {
	ATSScore               *models.ATSInsight `json:"ats_score"`
	MissingSkills          []string           `json:"missing_skills"`
	ProjectRecommendations []struct {
		Title     string   `json:"title"`
		TechStack []string `json:"tech_stack"`
		Impact    string   `json:"impact"`
	} `json:"project_recommendations"`
	LearningRoadmap    []string `json:"learning_roadmap"`
	ResumeImprovements []string `json:"resume_improvements"`
}

// Generic requirements used when the target role cannot be resolved to a
// skill list from the catalog or the vector store.
var fallbackSkills = []string{"Python", "JavaScript", "SQL", "Git"}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(ctx context.Context, record *models.ResumeRecord, targetRole string) (*models.AnalysisResult, error) {
	if record == nil {
		return nil, fmt.Errorf("resume record is required")
	}

	// 1. Resolve the role's requirements
	role, jobDescription := a.resolveRole(ctx, targetRole)
	requiredSkills := role.Skills
	if len(requiredSkills) == 0 {
		requiredSkills = fallbackSkills
	}

	// 2. Rule-based scoring (fast, deterministic)
	atsReport := a.atsScorer.Score(record, jobDescription)
	gap := a.skillGap.Analyze(record.SkillList(), requiredSkills)
	recommendations, tips := a.recommender.Recommend(gap.MissingSkills, targetRole)

	result := &models.AnalysisResult{
		OverallScore:    atsReport.OverallScore,
		SkillGap:        gap,
		Recommendations: recommendations,
		GeneralTips:     tips,
		Suggestions:     atsReport.Suggestions,
		TargetRole:      targetRole,
	}

	// 3. LLM insights pass (deep, optional). Failure degrades to the
	// rule-based result plus mock insights rather than failing the request.
	insights, err := a.generateInsights(ctx, record, targetRole, requiredSkills)
	if err != nil {
		log.Printf("⚠️  LLM insights unavailable, using fallback: %v\n", err)
		insights = mockInsights(targetRole)
	}

	result.ATSScore = insights.ATSScore
	result.LearningRoadmap = insights.LearningRoadmap
	result.ResumeImprovements = insights.ResumeImprovements

	// 4. Persist the analysis record
	a.saveAnalysis(record, result)

	return result, nil
}

// resolveRole finds the role's skills and a pseudo job description, trying
// the fixed catalog first and the vector store second.
func (a *analyzerService) resolveRole(ctx context.Context, targetRole string) (models.Role, string) {
	if role, ok := models.FindRole(targetRole); ok {
		return role, a.promptBuilder.BuildRoleText(role)
	}

	embedding, err := a.gemini.GenerateEmbedding(ctx, targetRole)
	if err == nil {
		matches, err := a.roleStore.SearchSimilarRoles(ctx, embedding, 1)
		if err == nil && len(matches) > 0 {
			role := matches[0].Role
			return role, a.promptBuilder.BuildRoleText(role)
		}
	}

	log.Printf("⚠️  Unknown role %q, using generic requirements\n", targetRole)
	return models.Role{Title: targetRole}, targetRole + " " + strings.Join(fallbackSkills, " ")
}

func (a *analyzerService) generateInsights(ctx context.Context, record *models.ResumeRecord, targetRole string, requiredSkills []string) (*llmInsights, error) {
	prompt := a.promptBuilder.BuildInsightsPrompt(record, targetRole, requiredSkills)

	response, err := a.gemini.GenerateTextWithRetry(ctx, prompt, 0.3, a.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	var insights llmInsights
	if err := parseJSONResponse(response, &insights); err != nil {
		return nil, fmt.Errorf("failed to parse insights response: %w", err)
	}

	return &insights, nil
}

func (a *analyzerService) saveAnalysis(record *models.ResumeRecord, result *models.AnalysisResult) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		log.Printf("⚠️  Failed to marshal analysis result: %v\n", err)
		return
	}

	analysis := &models.Analysis{
		TargetRole:   result.TargetRole,
		OverallScore: result.OverallScore,
		ResultJSON:   string(resultJSON),
	}
	if id := record.Metadata.DocumentID; id != "" {
		if docID, err := uuid.Parse(id); err == nil {
			analysis.DocumentID = &docID
		}
	}

	if err := a.analysisRepo.Create(analysis); err != nil {
		log.Printf("⚠️  Failed to persist analysis: %v\n", err)
	}
}

// mockInsights is the deterministic fallback used when the model is
// unavailable or returns garbage.
func mockInsights(targetRole string) *llmInsights {
	return &llmInsights{
		ATSScore: &models.ATSInsight{
			Score:       75,
			Explanation: "Mock Score: Good keyword density but missing some advanced terms.",
		},
		MissingSkills: []string{"Advanced Pattern Matching", "System Design", "Cloud Native"},
		LearningRoadmap: []string{
			"Month 1: Master fundamentals and missing skills.",
			"Month 2: Build a capstone project.",
			"Month 3: Mock interviews and system design.",
		},
		ResumeImprovements: []string{
			"Quantify your bullet points more.",
			"Add a summary section specific to this role.",
		},
	}
}

func parseJSONResponse(response string, target interface{}) error {
	// LLM output may wrap the JSON in markdown fences
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
