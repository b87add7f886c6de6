package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/screening/pkg/scoring"
	"github.com/artem13815/screening/pkg/screening"
)

// CandidateRepository сохраняет результаты скрининга кандидатов.
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) (*CandidateRepository, error) {
	r := &CandidateRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CandidateRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS candidates (
	id UUID PRIMARY KEY,
	owner_id UUID,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	skills JSONB NOT NULL DEFAULT '[]',
	missing_skills JSONB NOT NULL DEFAULT '[]',
	experience_years DOUBLE PRECISION,
	education JSONB NOT NULL DEFAULT '[]',
	certifications JSONB NOT NULL DEFAULT '[]',
	last_role TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	job_description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	skill_match_score DOUBLE PRECISION NOT NULL,
	experience_score DOUBLE PRECISION NOT NULL,
	similarity_score DOUBLE PRECISION NOT NULL,
	total_ai_score DOUBLE PRECISION NOT NULL,
	breakdown JSONB NOT NULL DEFAULT '[]',
	resume_text TEXT NOT NULL DEFAULT '',
	predicted_category TEXT NOT NULL DEFAULT '',
	category_confidence DOUBLE PRECISION,
	original_filename TEXT NOT NULL DEFAULT '',
	content_type TEXT NOT NULL DEFAULT '',
	file_size BIGINT NOT NULL DEFAULT 0,
	storage_uri TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS candidates_owner_created_idx ON candidates (owner_id, created_at DESC);
`)
	return err
}

func (r *CandidateRepository) Create(ctx context.Context, c screening.Candidate) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	skillsJSON, err := json.Marshal(orEmpty(c.Skills))
	if err != nil {
		return err
	}
	missingJSON, err := json.Marshal(orEmpty(c.MissingSkills))
	if err != nil {
		return err
	}
	educationJSON, err := json.Marshal(orEmpty(c.Education))
	if err != nil {
		return err
	}
	certsJSON, err := json.Marshal(orEmpty(c.Certifications))
	if err != nil {
		return err
	}
	breakdownJSON, err := json.Marshal(c.Breakdown)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO candidates (
	id, owner_id, full_name, email, phone,
	skills, missing_skills, experience_years, education, certifications,
	last_role, summary, job_description, category,
	skill_match_score, experience_score, similarity_score, total_ai_score,
	breakdown, resume_text, predicted_category, category_confidence,
	original_filename, content_type, file_size, storage_uri,
	created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5,
	$6, $7, $8, $9, $10,
	$11, $12, $13, $14,
	$15, $16, $17, $18,
	$19, $20, $21, $22,
	$23, $24, $25, $26,
	$27, $28
)
`, c.ID, nullableUUID(c.OwnerID), c.FullName, c.Email, c.Phone,
		skillsJSON, missingJSON, c.ExperienceYears, educationJSON, certsJSON,
		c.LastRole, c.Summary, c.JobDescription, c.Category,
		c.Scores.SkillMatch, c.Scores.Experience, c.Scores.Similarity, c.Scores.Total,
		breakdownJSON, c.ResumeText, c.PredictedCategory, c.CategoryConfidence,
		c.Metadata.OriginalFilename, c.Metadata.ContentType, c.Metadata.FileSize, c.Metadata.StorageURI,
		c.CreatedAt, c.UpdatedAt)
	return err
}

const candidateColumns = `
	id, owner_id, full_name, email, phone,
	skills, missing_skills, experience_years, education, certifications,
	last_role, summary, job_description, category,
	skill_match_score, experience_score, similarity_score, total_ai_score,
	breakdown, resume_text, predicted_category, category_confidence,
	original_filename, content_type, file_size, storage_uri,
	created_at, updated_at`

func (r *CandidateRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (screening.Candidate, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+candidateColumns+`
FROM candidates WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return screening.Candidate{}, pgx.ErrNoRows
		}
		return screening.Candidate{}, err
	}
	return c, nil
}

func (r *CandidateRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]screening.Candidate, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+candidateColumns+`
FROM candidates WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []screening.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// ListByOwnerByScore возвращает всех кандидатов владельца по убыванию
// итогового балла. Используется дашбордом.
func (r *CandidateRepository) ListByOwnerByScore(ctx context.Context, ownerID uuid.UUID) ([]screening.Candidate, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+candidateColumns+`
FROM candidates WHERE owner_id = $1
ORDER BY total_ai_score DESC, created_at DESC
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []screening.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func scanCandidate(row pgx.Row) (screening.Candidate, error) {
	var c screening.Candidate
	var ownerID *uuid.UUID
	var skillsBytes, missingBytes, educationBytes, certsBytes, breakdownBytes []byte
	var created, updated time.Time
	err := row.Scan(
		&c.ID, &ownerID, &c.FullName, &c.Email, &c.Phone,
		&skillsBytes, &missingBytes, &c.ExperienceYears, &educationBytes, &certsBytes,
		&c.LastRole, &c.Summary, &c.JobDescription, &c.Category,
		&c.Scores.SkillMatch, &c.Scores.Experience, &c.Scores.Similarity, &c.Scores.Total,
		&breakdownBytes, &c.ResumeText, &c.PredictedCategory, &c.CategoryConfidence,
		&c.Metadata.OriginalFilename, &c.Metadata.ContentType, &c.Metadata.FileSize, &c.Metadata.StorageURI,
		&created, &updated,
	)
	if err != nil {
		return screening.Candidate{}, err
	}
	if ownerID != nil {
		c.OwnerID = *ownerID
	}
	_ = json.Unmarshal(skillsBytes, &c.Skills)
	_ = json.Unmarshal(missingBytes, &c.MissingSkills)
	_ = json.Unmarshal(educationBytes, &c.Education)
	_ = json.Unmarshal(certsBytes, &c.Certifications)
	c.Breakdown = []scoring.BreakdownItem{}
	_ = json.Unmarshal(breakdownBytes, &c.Breakdown)
	c.CreatedAt = created.UTC()
	c.UpdatedAt = updated.UTC()
	return c, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
