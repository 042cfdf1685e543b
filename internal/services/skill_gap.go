package services

import (
	"fmt"
	"strings"

	"resumeai/reviewer/internal/models"
)

// Similarity bands for classifying a required skill against resume skills.
const (
	strongMatchThreshold = 0.9
	weakMatchThreshold   = 0.4
)

// SkillGapService compares the skills extracted from a resume against the
// skills a target role requires.
type SkillGapService interface {
	Analyze(resumeSkills, requiredSkills []string) models.SkillGap
}

type skillGapService struct{}

func NewSkillGapService() SkillGapService {
	return &skillGapService{}
}

// Analyze implements SkillGapService.
func (s *skillGapService) Analyze(resumeSkills, requiredSkills []string) models.SkillGap {
	required := normalizeSkills(requiredSkills)
	resume := normalizeSkills(resumeSkills)

	gap := models.SkillGap{
		StrongMatches: []string{},
		WeakMatches:   []models.WeakMatch{},
		MissingSkills: []string{},
	}

	if len(resume) == 0 {
		gap.MissingSkills = required
		return gap
	}

	for _, req := range required {
		best, bestSkill := 0.0, ""
		for _, have := range resume {
			if sim := bigramSimilarity(req, have); sim > best {
				best, bestSkill = sim, have
			}
		}

		switch {
		case best >= strongMatchThreshold:
			gap.StrongMatches = append(gap.StrongMatches, req)
		case best >= weakMatchThreshold:
			gap.WeakMatches = append(gap.WeakMatches, models.WeakMatch{
				Skill:  req,
				Detail: fmt.Sprintf("partially covered by %q (similarity %.2f)", bestSkill, best),
			})
		default:
			gap.MissingSkills = append(gap.MissingSkills, req)
		}
	}

	if total := len(required); total > 0 {
		matched := float64(len(gap.StrongMatches)) + 0.5*float64(len(gap.WeakMatches))
		gap.MatchPercentage = roundTo(matched/float64(total)*100, 2)
	}

	return gap
}

func normalizeSkills(skills []string) []string {
	var out []string
	for _, skill := range skills {
		if s := strings.ToLower(strings.TrimSpace(skill)); s != "" {
			out = append(out, s)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// bigramSimilarity is the Dice coefficient over character bigrams, a cheap
// stand-in for cosine similarity that tolerates small spelling variants
// ("react" vs "react.js").
func bigramSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	aGrams := bigrams(a)
	bGrams := bigrams(b)
	if len(aGrams) == 0 || len(bGrams) == 0 {
		return 0
	}

	overlap := 0
	for gram, count := range aGrams {
		if other, ok := bGrams[gram]; ok {
			if other < count {
				overlap += other
			} else {
				overlap += count
			}
		}
	}

	totalA, totalB := 0, 0
	for _, c := range aGrams {
		totalA += c
	}
	for _, c := range bGrams {
		totalB += c
	}

	return 2 * float64(overlap) / float64(totalA+totalB)
}

func bigrams(s string) map[string]int {
	runes := []rune(" " + s + " ")
	grams := make(map[string]int)
	for i := 0; i+1 < len(runes); i++ {
		grams[string(runes[i:i+2])]++
	}
	return grams
}

func roundTo(v float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}
