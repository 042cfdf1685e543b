package models

import "strings"

// Role is one entry of the fixed role catalog. Skills feed the skill-gap
// analysis; title and description are display metadata and vector-store text.
type Role struct {
	Title       string   `json:"title"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// RoleCatalog is the fixed set of target roles the analyzer knows about.
var RoleCatalog = []Role{
	{
		Title:       "Frontend Developer",
		Skills:      []string{"React", "JavaScript", "HTML", "CSS", "TypeScript", "Redux", "Tailwind CSS"},
		Description: "Responsible for building interactive user interfaces and web applications using modern frontend frameworks.",
	},
	{
		Title:       "Backend Developer",
		Skills:      []string{"Python", "Flask", "Django", "SQL", "PostgreSQL", "Redis", "API Design", "Docker"},
		Description: "Focuses on server-side logic, database management, and API integration for web applications.",
	},
	{
		Title:       "Full Stack Developer",
		Skills:      []string{"React", "Node.js", "Python", "SQL", "MongoDB", "AWS", "Git", "System Design"},
		Description: "Versatile developer capable of working on both client-side and server-side of the application.",
	},
	{
		Title:       "Machine Learning Engineer",
		Skills:      []string{"Python", "TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "MLOps", "Model Deployment"},
		Description: "Designs and implements machine learning models and systems to solve complex data problems.",
	},
	{
		Title:       "DevOps Engineer",
		Skills:      []string{"AWS", "Docker", "Kubernetes", "Jenkins", "CI/CD", "Terraform", "Linux", "Bash Scripting"},
		Description: "Manages infrastructure as code, automated deployment pipelines, and ensures system reliability.",
	},
	{
		Title:       "Data Scientist",
		Skills:      []string{"Python", "R", "SQL", "Statistics", "Data Visualization", "Machine Learning", "Jupyter"},
		Description: "Analyzes large datasets to extract actionable insights and build predictive models.",
	},
}

// FindRole looks up a catalog role by title (case-insensitive).
func FindRole(title string) (Role, bool) {
	for _, role := range RoleCatalog {
		if strings.EqualFold(role.Title, title) {
			return role, true
		}
	}
	return Role{}, false
}

// ValidRole reports whether title names a catalog role.
func ValidRole(title string) bool {
	_, ok := FindRole(title)
	return ok
}

// SplitSkills breaks a comma-separated skills string into trimmed entries.
func SplitSkills(text string) []string {
	var skills []string
	for _, part := range strings.Split(text, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
