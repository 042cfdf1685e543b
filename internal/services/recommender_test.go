package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommenderService_Recommend(t *testing.T) {
	svc := NewRecommenderService()

	t.Run("matches templates for the missing skill", func(t *testing.T) {
		recs, tips := svc.Recommend([]string{"Docker"}, "DevOps Engineer")

		require.Len(t, recs, 1)
		assert.Equal(t, "Microservices Orchestration", recs[0].Title)
		assert.Equal(t, "Advanced", recs[0].Difficulty)
		assert.Len(t, tips, 3)
	})

	t.Run("caps recommendations at three", func(t *testing.T) {
		recs, _ := svc.Recommend([]string{"Python", "React", "Docker", "Machine Learning"}, "Full Stack Developer")

		require.Len(t, recs, 3)
		assert.Equal(t, "Automated Trading Bot", recs[0].Title)
		assert.Equal(t, "RESTful API with Flask/FastAPI", recs[1].Title)
		assert.Equal(t, "Interactive Dashboard", recs[2].Title)
	})

	t.Run("deduplicates by title", func(t *testing.T) {
		recs, _ := svc.Recommend([]string{"Python", "python"}, "Backend Developer")

		assert.Len(t, recs, 2)
	})

	t.Run("substring matching works in both directions", func(t *testing.T) {
		recs, _ := svc.Recommend([]string{"Machine Learning Engineer skills"}, "Machine Learning Engineer")

		require.Len(t, recs, 1)
		assert.Equal(t, "Sentiment Analysis Tool", recs[0].Title)
	})

	t.Run("falls back to general projects when nothing matches", func(t *testing.T) {
		recs, tips := svc.Recommend([]string{"Kubernetes", "Terraform"}, "DevOps Engineer")

		require.Len(t, recs, 2)
		assert.Equal(t, "Automated Trading Bot", recs[0].Title)
		assert.Equal(t, "RESTful API with Flask/FastAPI", recs[1].Title)
		assert.Len(t, tips, 3)
	})

	t.Run("empty missing skills falls back too", func(t *testing.T) {
		recs, _ := svc.Recommend(nil, "Frontend Developer")

		assert.Len(t, recs, 2)
	})
}
