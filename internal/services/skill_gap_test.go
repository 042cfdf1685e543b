package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillGapService_Analyze(t *testing.T) {
	svc := NewSkillGapService()

	t.Run("exact match is strong", func(t *testing.T) {
		gap := svc.Analyze([]string{"Python"}, []string{"python"})

		assert.Equal(t, []string{"python"}, gap.StrongMatches)
		assert.Empty(t, gap.WeakMatches)
		assert.Empty(t, gap.MissingSkills)
		assert.Equal(t, 100.0, gap.MatchPercentage)
	})

	t.Run("spelling variant is weak", func(t *testing.T) {
		gap := svc.Analyze([]string{"React.js"}, []string{"React"})

		require.Len(t, gap.WeakMatches, 1)
		assert.Equal(t, "react", gap.WeakMatches[0].Skill)
		assert.Contains(t, gap.WeakMatches[0].Detail, `"react.js"`)
		assert.Equal(t, 50.0, gap.MatchPercentage)
	})

	t.Run("unrelated skill is missing", func(t *testing.T) {
		gap := svc.Analyze([]string{"React"}, []string{"Docker"})

		assert.Equal(t, []string{"docker"}, gap.MissingSkills)
		assert.Equal(t, 0.0, gap.MatchPercentage)
	})

	t.Run("percentage weighs weak matches at half", func(t *testing.T) {
		gap := svc.Analyze(
			[]string{"python", "react.js"},
			[]string{"Python", "React", "Docker"},
		)

		assert.Equal(t, []string{"python"}, gap.StrongMatches)
		require.Len(t, gap.WeakMatches, 1)
		assert.Equal(t, []string{"docker"}, gap.MissingSkills)
		// (1 strong + 0.5 * 1 weak) / 3 required
		assert.Equal(t, 50.0, gap.MatchPercentage)
	})

	t.Run("empty resume skills marks everything missing", func(t *testing.T) {
		gap := svc.Analyze(nil, []string{"Python", "SQL"})

		assert.Empty(t, gap.StrongMatches)
		assert.Empty(t, gap.WeakMatches)
		assert.Equal(t, []string{"python", "sql"}, gap.MissingSkills)
		assert.Equal(t, 0.0, gap.MatchPercentage)
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		gap := svc.Analyze([]string{"  SQL  "}, []string{"sql"})

		assert.Equal(t, []string{"sql"}, gap.StrongMatches)
	})
}

func TestBigramSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, bigramSimilarity("docker", "docker"))
	assert.Equal(t, 0.0, bigramSimilarity("docker", "python"))

	sim := bigramSimilarity("react", "react.js")
	assert.Greater(t, sim, weakMatchThreshold)
	assert.Less(t, sim, strongMatchThreshold)
}
