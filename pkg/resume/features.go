package resume

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Heuristic feature extractors. All of them are pure functions over cleaned
// text or its sentences: no shared state, safe under any concurrency.

const maxMissingSkills = 25

var (
	reExperience = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s+(?:\+?\s*)?(?:years?|yrs?)`)
	reEmail      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhone      = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`)
)

var (
	educationKeywords = []string{
		"bachelor", "master", "phd", "university", "college",
		"certificate", "diploma", "degree",
	}
	certificationKeywords = []string{
		"certified", "certification", "certificate", "professional", "license",
	}
	roleKeywords = []string{
		"engineer", "developer", "manager", "consultant",
		"analyst", "specialist", "architect",
	}
)

// MatchSkills tests every catalog entry for case-insensitive substring
// containment. Exact substring only, no fuzzy matching. Returns the found
// skills (sorted) and the capped, sorted catalog diff.
func MatchSkills(text string, catalog *Catalog) (found, missing []string) {
	lower := strings.ToLower(text)
	found = []string{}
	missing = []string{}
	for _, skill := range catalog.Entries() {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		} else if len(missing) < maxMissingSkills {
			missing = append(missing, skill)
		}
	}
	sort.Strings(found)
	return found, missing
}

// ExperienceYears scans for "<number> years/yrs" figures and returns the
// maximum match, assuming the largest stated figure is the most senior claim.
// Returns nil when nothing matches.
func ExperienceYears(text string) *float64 {
	matches := reExperience.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	var best float64
	var ok bool
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !ok || v > best {
			best = v
			ok = true
		}
	}
	if !ok {
		return nil
	}
	return &best
}

// Education returns the first 5 sentences mentioning an education keyword,
// in document order.
func Education(sentences []string) []string {
	out := []string{}
	for _, s := range sentences {
		if containsAny(strings.ToLower(s), educationKeywords) {
			out = append(out, s)
			if len(out) == 5 {
				break
			}
		}
	}
	return out
}

// Certifications splits the text on '.' and returns the first 10 trimmed
// lines mentioning a certification keyword.
func Certifications(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, ".") {
		if !containsAny(strings.ToLower(line), certificationKeywords) {
			continue
		}
		if cleaned := strings.TrimSpace(line); cleaned != "" {
			out = append(out, cleaned)
			if len(out) == 10 {
				break
			}
		}
	}
	return out
}

// Contact returns the first email and phone matches; either may be empty.
func Contact(text string) (email, phone string) {
	return reEmail.FindString(text), rePhone.FindString(text)
}

// LastRole returns the first sentence containing a role-title keyword.
func LastRole(sentences []string) string {
	for _, s := range sentences {
		if containsAny(strings.ToLower(s), roleKeywords) {
			return s
		}
	}
	return ""
}

// Summary joins the first 3 sentences; empty when the text has none.
func Summary(sentences []string) string {
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}
	return strings.Join(sentences, " ")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
