package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Feedback — одна запись обратной связи HR по кандидату, только добавление.
// Predicted values snapshot what the model said at scoring time; actual
// values are the human correction and may be absent.
type Feedback struct {
	ID                uuid.UUID `json:"id"`
	CandidateID       uuid.UUID `json:"candidate_id"`
	PredictedScore    float64   `json:"predicted_score"`
	PredictedCategory string    `json:"predicted_category"`
	ActualScore       *float64  `json:"actual_score,omitempty"`
	ActualCategory    string    `json:"actual_category,omitempty"`
	HRFeedback        string    `json:"hr_feedback,omitempty"`
	CreatedAt         time.Time `json:"timestamp"`
}

// TrainingPair is one (resume text, corrected category) sample exported for
// offline retraining.
type TrainingPair struct {
	Text     string
	Category string
}

// Repository — порт append-only хранилища фидбэка.
type Repository interface {
	Create(ctx context.Context, f Feedback) error
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit, offset int) ([]Feedback, error)
	// TrainingPairs joins feedback carrying an actual category with the
	// candidates' resume texts.
	TrainingPairs(ctx context.Context) ([]TrainingPair, error)
}
