package screening

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
)

const (
	topCandidateCount    = 5
	topMissingSkillCount = 10
)

// Dashboard строит сводку по кандидатам владельца: средний балл,
// распределения по категориям и опыту, частые недостающие навыки и топ
// кандидатов по итоговому баллу.
func (s *service) Dashboard(ctx context.Context, ownerID uuid.UUID) (Dashboard, error) {
	candidates, err := s.repo.ListByOwnerByScore(ctx, ownerID)
	if err != nil {
		return Dashboard{}, err
	}

	summaries := make([]CandidateSummary, 0, len(candidates))
	for _, c := range candidates {
		summaries = append(summaries, summarize(c))
	}

	analytics := DashboardAnalytics{
		CategoryCounts:         map[string]int{},
		CommonMissingSkills:    []string{},
		ExperienceDistribution: map[string]int{},
		TopCandidates:          []CandidateSummary{},
	}
	if len(candidates) == 0 {
		return Dashboard{Candidates: summaries, Analytics: analytics}, nil
	}

	var total float64
	missing := map[string]int{}
	for _, c := range candidates {
		total += c.Scores.Total
		analytics.CategoryCounts[categoryOrDefault(c.Category)]++
		analytics.ExperienceDistribution[experienceBucket(c.ExperienceYears)]++
		for _, skill := range c.MissingSkills {
			missing[skill]++
		}
	}
	analytics.AverageScore = math.Round(total/float64(len(candidates))*100) / 100
	analytics.CommonMissingSkills = topMissingSkills(missing, topMissingSkillCount)
	analytics.TopCandidates = summaries
	if len(summaries) > topCandidateCount {
		analytics.TopCandidates = summaries[:topCandidateCount]
	}

	return Dashboard{Candidates: summaries, Analytics: analytics}, nil
}

func summarize(c Candidate) CandidateSummary {
	return CandidateSummary{
		ID:              c.ID,
		FullName:        c.FullName,
		Email:           c.Email,
		Phone:           c.Phone,
		Category:        categoryOrDefault(c.Category),
		TotalAIScore:    c.Scores.Total,
		SkillMatchScore: c.Scores.SkillMatch,
		ExperienceYears: c.ExperienceYears,
		LastRole:        c.LastRole,
		CreatedAt:       c.CreatedAt,
	}
}

func categoryOrDefault(category string) string {
	if category == "" {
		return "Uncategorized"
	}
	return category
}

// experienceBucket groups years of experience into the ranges the dashboard
// charts. Unknown experience gets its own bucket.
func experienceBucket(years *float64) string {
	switch {
	case years == nil:
		return "Unknown"
	case *years < 3:
		return "0-3 years"
	case *years < 7:
		return "3-7 years"
	case *years < 12:
		return "7-12 years"
	default:
		return "12+ years"
	}
}

// topMissingSkills returns the n most frequent skills, ties broken
// alphabetically so the order is stable.
func topMissingSkills(counts map[string]int, n int) []string {
	skills := make([]string, 0, len(counts))
	for skill := range counts {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if counts[skills[i]] != counts[skills[j]] {
			return counts[skills[i]] > counts[skills[j]]
		}
		return skills[i] < skills[j]
	})
	if len(skills) > n {
		skills = skills[:n]
	}
	return skills
}
