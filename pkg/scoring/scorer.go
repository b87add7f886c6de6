package scoring

import (
	"math"
	"sort"
)

// Neutral defaults when a signal is absent. Skill neutrality sits at the
// midpoint; unknown experience lands slightly below it, reflecting
// uncertainty without penalizing outright.
const (
	neutralSkillScore      = 50.0
	unknownExperienceScore = 40.0
	experienceCapYears     = 20.0
)

// Calculate combines skill match, experience and semantic similarity into the
// final composite score, category bucket and per-metric breakdown.
// Deterministic: identical inputs yield identical results.
//
// The returned MissingSkills is the de-duplicated, sorted union of the
// caller-supplied list; this function trusts upstream extraction and does not
// recompute the catalog diff.
func Calculate(foundSkills, missingSkills []string, experienceYears *float64, similarityScore float64) Result {
	skillMatch := clamp(skillMatchScore(foundSkills, missingSkills))
	experience := clamp(experienceScore(experienceYears))
	similarity := clamp(similarityScore)

	total := clamp(similarity*WeightSimilarity + skillMatch*WeightSkillMatch + experience*WeightExperience)

	return Result{
		SkillMatchScore: skillMatch,
		ExperienceScore: experience,
		SimilarityScore: similarity,
		TotalAIScore:    total,
		Category:        Categorize(total),
		MissingSkills:   dedupeSorted(missingSkills),
		Breakdown: []BreakdownItem{
			{Metric: "similarity", Weight: WeightSimilarity, Score: similarity},
			{Metric: "skill_match", Weight: WeightSkillMatch, Score: skillMatch},
			{Metric: "experience", Weight: WeightExperience, Score: experience},
		},
	}
}

// Categorize maps a total score onto a fit bucket. Boundaries are strict:
// exactly 80 is still Medium Fit, exactly 60 is no longer Weak Fit.
func Categorize(score float64) string {
	switch {
	case score > 80:
		return CategoryStrongFit
	case score >= 60:
		return CategoryMediumFit
	default:
		return CategoryWeakFit
	}
}

func skillMatchScore(found, missing []string) float64 {
	total := len(dedupe(found)) + len(dedupe(missing))
	if total == 0 {
		// No catalog information at all: assume neutral.
		return neutralSkillScore
	}
	return float64(len(dedupe(found))) / float64(total) * 100
}

func experienceScore(years *float64) float64 {
	if years == nil {
		return unknownExperienceScore
	}
	capped := math.Min(*years, experienceCapYears)
	return capped / experienceCapYears * 100
}

// clamp rounds to 2 decimals and bounds the value to [0,100].
func clamp(v float64) float64 {
	v = math.Round(v*100) / 100
	return math.Max(0, math.Min(100, v))
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func dedupeSorted(in []string) []string {
	out := dedupe(in)
	sort.Strings(out)
	return out
}
