package resume

// Parsed — структурированный профиль, извлечённый из одного резюме.
// Absence of a value is a zero value, never an error: extractors that find
// nothing leave the field empty.
type Parsed struct {
	RawText   string `json:"raw_text"`
	CleanText string `json:"clean_text"`

	// Skills found in the text, sorted; MissingSkills is the catalog diff,
	// sorted and capped at 25 entries.
	Skills        []string `json:"skills"`
	MissingSkills []string `json:"missing_skills"`

	// ExperienceYears is nil when no years-of-experience figure was stated.
	ExperienceYears *float64 `json:"experience_years"`

	Education      []string `json:"education"`      // at most 5 sentences
	Certifications []string `json:"certifications"` // at most 10 lines

	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Summary  string `json:"summary,omitempty"`   // first 3 sentences
	LastRole string `json:"last_role,omitempty"` // first sentence naming a role
}
