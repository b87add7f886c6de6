package screening

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/screening/pkg/scoring"
)

// Scores — четыре итоговых балла кандидата, все в диапазоне [0,100].
type Scores struct {
	SkillMatch float64 `json:"skill_match_score"`
	Experience float64 `json:"experience_score"`
	Similarity float64 `json:"similarity_score"`
	Total      float64 `json:"total_ai_score"`
}

// FileMetadata describes the stored upload.
type FileMetadata struct {
	OriginalFilename string `json:"original_filename"`
	ContentType      string `json:"content_type"`
	FileSize         int64  `json:"file_size"`
	StorageURI       string `json:"storage_uri,omitempty"`
}

// Candidate is the merged record persisted per screening: the structured
// profile plus the scoring outcome. MissingSkills holds the scorer's
// de-duplicated list, which is canonical; the parser's capped diff is only an
// intermediate input.
type Candidate struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"ownerId,omitempty"`

	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`

	Skills          []string `json:"skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceYears *float64 `json:"experience_years"`
	Education       []string `json:"education"`
	Certifications  []string `json:"certifications"`
	LastRole        string   `json:"last_role,omitempty"`
	Summary         string   `json:"summary,omitempty"`

	JobDescription string                  `json:"job_description,omitempty"`
	Category       string                  `json:"category"`
	Scores         Scores                  `json:"score"`
	Breakdown      []scoring.BreakdownItem `json:"job_similarity_breakdown"`
	ResumeText     string                  `json:"resume_text"`

	// Classifier output; unset when no model is loaded (prediction is
	// optional and absence degrades silently).
	PredictedCategory  string   `json:"predicted_category,omitempty"`
	CategoryConfidence *float64 `json:"category_confidence,omitempty"`

	Metadata  FileMetadata `json:"metadata"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CandidateSummary is the compact candidate row shown on the dashboard.
type CandidateSummary struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Category        string    `json:"category"`
	TotalAIScore    float64   `json:"total_ai_score"`
	SkillMatchScore float64   `json:"skill_match_score"`
	ExperienceYears *float64  `json:"experience_years"`
	LastRole        string    `json:"last_role,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// DashboardAnalytics aggregates the owner's screened candidates.
type DashboardAnalytics struct {
	AverageScore           float64            `json:"average_score"`
	CategoryCounts         map[string]int     `json:"category_counts"`
	CommonMissingSkills    []string           `json:"common_missing_skills"`
	ExperienceDistribution map[string]int     `json:"experience_distribution"`
	TopCandidates          []CandidateSummary `json:"top_candidates"`
}

// Dashboard — сводка по всем кандидатам владельца: список по убыванию балла
// плюс агрегированная аналитика.
type Dashboard struct {
	Candidates []CandidateSummary `json:"candidates"`
	Analytics  DashboardAnalytics `json:"analytics"`
}

// Repository — порт для сохранения/чтения кандидатов.
type Repository interface {
	Create(ctx context.Context, c Candidate) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Candidate, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Candidate, error)
	// ListByOwnerByScore returns all of the owner's candidates, best total
	// score first. Feeds the dashboard aggregation.
	ListByOwnerByScore(ctx context.Context, ownerID uuid.UUID) ([]Candidate, error)
}
