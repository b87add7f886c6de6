package resume

// Parser turns raw resume bytes into a structured profile.
// It owns no mutable state besides the immutable skill catalog and is safe
// for concurrent use.
type Parser struct {
	catalog *Catalog
}

func NewParser(catalog *Catalog) *Parser {
	return &Parser{catalog: catalog}
}

// Parse extracts text by file type, normalizes it and runs every heuristic
// extractor. The only error cases are structurally invalid input (unsupported
// or corrupt documents); extractors finding nothing is not an error.
func (p *Parser) Parse(filename string, data []byte) (Parsed, error) {
	raw, err := ExtractText(filename, data)
	if err != nil {
		return Parsed{}, err
	}
	clean := Clean(raw)
	sentences := Sentences(clean)

	found, missing := MatchSkills(clean, p.catalog)
	email, phone := Contact(clean)

	return Parsed{
		RawText:         raw,
		CleanText:       clean,
		Skills:          found,
		MissingSkills:   missing,
		ExperienceYears: ExperienceYears(clean),
		Education:       Education(sentences),
		Certifications:  Certifications(clean),
		Email:           email,
		Phone:           phone,
		Summary:         Summary(sentences),
		LastRole:        LastRole(sentences),
	}, nil
}
