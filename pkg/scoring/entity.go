package scoring

// Fit category buckets derived from the total score.
const (
	CategoryStrongFit = "Strong Fit"
	CategoryMediumFit = "Medium Fit"
	CategoryWeakFit   = "Weak Fit"
)

// Metric weights of the composite score. Fixed by product decision; the sum
// must stay 1.0.
const (
	WeightSimilarity = 0.6
	WeightSkillMatch = 0.3
	WeightExperience = 0.1
)

// BreakdownItem explains one metric's contribution to the total.
type BreakdownItem struct {
	Metric string  `json:"metric"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"`
}

// Result — итог композитной оценки кандидата. Pure output, built from already
// extracted signals; nothing here touches storage or models.
type Result struct {
	SkillMatchScore float64         `json:"skill_match_score"`
	ExperienceScore float64         `json:"experience_score"`
	SimilarityScore float64         `json:"similarity_score"`
	TotalAIScore    float64         `json:"total_ai_score"`
	Category        string          `json:"category"`
	MissingSkills   []string        `json:"missing_skills"`
	Breakdown       []BreakdownItem `json:"breakdown"`
}
