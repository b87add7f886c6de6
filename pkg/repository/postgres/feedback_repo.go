package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/screening/pkg/feedback"
)

// FeedbackRepository хранит фидбэк HR, только добавление записей.
type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) (*FeedbackRepository, error) {
	r := &FeedbackRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FeedbackRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS feedback (
	id UUID PRIMARY KEY,
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	predicted_score DOUBLE PRECISION NOT NULL,
	predicted_category TEXT NOT NULL,
	actual_score DOUBLE PRECISION,
	actual_category TEXT NOT NULL DEFAULT '',
	hr_feedback TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS feedback_candidate_idx ON feedback (candidate_id, created_at DESC);
`)
	return err
}

func (r *FeedbackRepository) Create(ctx context.Context, f feedback.Feedback) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO feedback (id, candidate_id, predicted_score, predicted_category, actual_score, actual_category, hr_feedback, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, f.ID, f.CandidateID, f.PredictedScore, f.PredictedCategory, f.ActualScore, f.ActualCategory, f.HRFeedback, f.CreatedAt)
	return err
}

func (r *FeedbackRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]feedback.Feedback, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, candidate_id, predicted_score, predicted_category, actual_score, actual_category, hr_feedback, created_at
FROM feedback WHERE candidate_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []feedback.Feedback
	for rows.Next() {
		var f feedback.Feedback
		var created time.Time
		if err := rows.Scan(&f.ID, &f.CandidateID, &f.PredictedScore, &f.PredictedCategory, &f.ActualScore, &f.ActualCategory, &f.HRFeedback, &created); err != nil {
			return nil, err
		}
		f.CreatedAt = created.UTC()
		res = append(res, f)
	}
	return res, rows.Err()
}

// TrainingPairs joins corrected feedback with candidate resume texts. The most
// recent correction per candidate wins.
func (r *FeedbackRepository) TrainingPairs(ctx context.Context) ([]feedback.TrainingPair, error) {
	rows, err := r.pool.Query(ctx, `
SELECT DISTINCT ON (f.candidate_id) c.resume_text, f.actual_category
FROM feedback f
JOIN candidates c ON c.id = f.candidate_id
WHERE f.actual_category <> '' AND c.resume_text <> ''
ORDER BY f.candidate_id, f.created_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var pairs []feedback.TrainingPair
	for rows.Next() {
		var p feedback.TrainingPair
		if err := rows.Scan(&p.Text, &p.Category); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}
