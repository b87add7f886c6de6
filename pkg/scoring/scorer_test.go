package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestCalculate(t *testing.T) {
	t.Run("composite score and breakdown", func(t *testing.T) {
		// skill: 2/(2+1)*100 = 66.67, experience: 18/20*100 = 90, similarity: 50
		// total: 50*0.6 + 66.67*0.3 + 90*0.1 = 30 + 20 + 9 = 59.0 -> Weak Fit
		r := Calculate([]string{"go", "sql"}, []string{"python"}, floatPtr(18), 50)

		assert.Equal(t, 66.67, r.SkillMatchScore)
		assert.Equal(t, 90.0, r.ExperienceScore)
		assert.Equal(t, 50.0, r.SimilarityScore)
		assert.Equal(t, 59.0, r.TotalAIScore)
		assert.Equal(t, CategoryWeakFit, r.Category)

		require.Len(t, r.Breakdown, 3)
		assert.Equal(t, BreakdownItem{Metric: "similarity", Weight: WeightSimilarity, Score: 50.0}, r.Breakdown[0])
		assert.Equal(t, BreakdownItem{Metric: "skill_match", Weight: WeightSkillMatch, Score: 66.67}, r.Breakdown[1])
		assert.Equal(t, BreakdownItem{Metric: "experience", Weight: WeightExperience, Score: 90.0}, r.Breakdown[2])
	})

	t.Run("strong fit end to end", func(t *testing.T) {
		// skill: 2/3*100 = 66.67, experience: 90, similarity: 90
		// total: 90*0.6 + 66.67*0.3 + 90*0.1 = 54 + 20 + 9 = 83.0 -> Strong Fit
		r := Calculate([]string{"go", "sql"}, []string{"python"}, floatPtr(18), 90)
		assert.Equal(t, 83.0, r.TotalAIScore)
		assert.Equal(t, CategoryStrongFit, r.Category)
	})

	t.Run("no catalog information gives neutral skill score", func(t *testing.T) {
		r := Calculate(nil, nil, nil, 50)
		assert.Equal(t, 50.0, r.SkillMatchScore)
		assert.Equal(t, 40.0, r.ExperienceScore)
	})

	t.Run("unknown experience", func(t *testing.T) {
		r := Calculate([]string{"go"}, nil, nil, 50)
		assert.Equal(t, 40.0, r.ExperienceScore)
	})

	t.Run("experience is capped at twenty years", func(t *testing.T) {
		r := Calculate(nil, []string{"go"}, floatPtr(35), 50)
		assert.Equal(t, 100.0, r.ExperienceScore)
	})

	t.Run("missing skills deduplicated and sorted", func(t *testing.T) {
		r := Calculate(nil, []string{"python", "go", "python"}, nil, 50)
		assert.Equal(t, []string{"go", "python"}, r.MissingSkills)
	})

	t.Run("similarity is clamped", func(t *testing.T) {
		r := Calculate(nil, nil, nil, 150)
		assert.Equal(t, 100.0, r.SimilarityScore)
		r = Calculate(nil, nil, nil, -10)
		assert.Equal(t, 0.0, r.SimilarityScore)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Calculate([]string{"go"}, []string{"python"}, floatPtr(5), 72.5)
		b := Calculate([]string{"go"}, []string{"python"}, floatPtr(5), 72.5)
		assert.Equal(t, a, b)
	})
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, CategoryWeakFit, Categorize(59.99))
	assert.Equal(t, CategoryMediumFit, Categorize(60))
	assert.Equal(t, CategoryMediumFit, Categorize(80))
	assert.Equal(t, CategoryStrongFit, Categorize(80.01))
	assert.Equal(t, CategoryStrongFit, Categorize(100))
	assert.Equal(t, CategoryWeakFit, Categorize(0))
}
