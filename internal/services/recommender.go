package services

import (
	"sort"
	"strings"

	"resumeai/reviewer/internal/models"
)

// RecommenderService maps missing skills to portfolio project ideas from a
// small template knowledge base.
type RecommenderService interface {
	Recommend(missingSkills []string, targetRole string) ([]models.ProjectRecommendation, []string)
}

type recommenderService struct {
	templates map[string][]models.ProjectRecommendation
}

func NewRecommenderService() RecommenderService {
	return &recommenderService{templates: projectTemplates()}
}

func projectTemplates() map[string][]models.ProjectRecommendation {
	return map[string][]models.ProjectRecommendation{
		"python": {
			{
				Title:       "Automated Trading Bot",
				TechStack:   []string{"Python", "Pandas", "API Integration"},
				Difficulty:  "Intermediate",
				Description: "Develop a bot that fetches real-time market data and executes trades based on technical indicators.",
				Bullets: []string{
					"Architected a real-time data pipeline using Python and REST APIs to process market volatility.",
					"Implemented technical analysis algorithms using Pandas, resulting in a 15% improvement in strategy backtesting efficiency.",
				},
			},
			{
				Title:       "RESTful API with Flask/FastAPI",
				TechStack:   []string{"Python", "FastAPI", "PostgreSQL", "Docker"},
				Difficulty:  "Beginner",
				Description: "Build a scalable backend API for a task management system with JWT authentication.",
				Bullets: []string{
					"Developed a high-performance RESTful API using FastAPI and PostgreSQL, handling 500+ requests per second.",
					"Containerized the application using Docker, reducing deployment time by 40%.",
				},
			},
		},
		"react": {
			{
				Title:       "Interactive Dashboard",
				TechStack:   []string{"React", "Tailwind CSS", "Recharts"},
				Difficulty:  "Intermediate",
				Description: "Create a data visualization dashboard for tracking personal finance or SaaS metrics.",
				Bullets: []string{
					"Built a responsive analytics dashboard using React and Tailwind CSS, improving user engagement by 25%.",
					"Integrated Recharts for dynamic data visualization, enabling users to track complex metrics in real-time.",
				},
			},
		},
		"machine learning": {
			{
				Title:       "Sentiment Analysis Tool",
				TechStack:   []string{"Python", "Scikit-learn", "NLTK", "Flask"},
				Difficulty:  "Intermediate",
				Description: "Build a tool that analyzes social media sentiment for specific brands or products.",
				Bullets: []string{
					"Developed a sentiment analysis engine using Scikit-learn and NLTK with an 85% accuracy rate on Twitter data.",
					"Deployed the model as a web service using Flask, providing real-time insights via a REST API.",
				},
			},
		},
		"docker": {
			{
				Title:       "Microservices Orchestration",
				TechStack:   []string{"Docker", "Docker Compose", "Nginx", "Redis"},
				Difficulty:  "Advanced",
				Description: "Set up a multi-container environment with load balancing and caching.",
				Bullets: []string{
					"Optimized system architecture by implementing Docker Compose for microservices orchestration.",
					"Configured Nginx as a reverse proxy and Redis for caching, reducing latency by 30%.",
				},
			},
		},
	}
}

var generalTips = []string{
	"Quantify your achievements using the Google X-Y-Z formula (Accomplished [X] as measured by [Y], by doing [Z]).",
	"Ensure your GitHub profile has a clean README for your top 3 projects.",
	"Include a 'Technical Skills' section categorized by Languages, Frameworks, and Tools.",
}

// Recommend implements RecommenderService. Returns at most three projects
// matched to the missing skills, falling back to general projects when
// nothing matches, plus a fixed list of resume tips.
func (r *recommenderService) Recommend(missingSkills []string, targetRole string) ([]models.ProjectRecommendation, []string) {
	var recommendations []models.ProjectRecommendation
	seen := make(map[string]struct{})

	keys := make([]string, 0, len(r.templates))
	for key := range r.templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, skill := range missingSkills {
		skillLower := strings.ToLower(skill)
		for _, key := range keys {
			if !strings.Contains(skillLower, key) && !strings.Contains(key, skillLower) {
				continue
			}
			for _, proj := range r.templates[key] {
				if _, dup := seen[proj.Title]; dup {
					continue
				}
				seen[proj.Title] = struct{}{}
				recommendations = append(recommendations, proj)
			}
		}
	}

	if len(recommendations) == 0 {
		fallback := r.templates["python"]
		if len(fallback) > 2 {
			fallback = fallback[:2]
		}
		recommendations = fallback
	}

	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}

	return recommendations, generalTips
}
