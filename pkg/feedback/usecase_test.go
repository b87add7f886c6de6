package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/screening/pkg/screening"
)

type memoryFeedbackRepo struct {
	created []Feedback
	pairs   []TrainingPair
}

func (m *memoryFeedbackRepo) Create(_ context.Context, f Feedback) error {
	m.created = append(m.created, f)
	return nil
}

func (m *memoryFeedbackRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID, limit, offset int) ([]Feedback, error) {
	var out []Feedback
	for _, f := range m.created {
		if f.CandidateID == candidateID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memoryFeedbackRepo) TrainingPairs(_ context.Context) ([]TrainingPair, error) {
	return m.pairs, nil
}

type stubCandidates struct {
	ownerID uuid.UUID
	known   uuid.UUID
}

func (s *stubCandidates) Create(_ context.Context, _ screening.Candidate) error { return nil }

func (s *stubCandidates) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (screening.Candidate, error) {
	if ownerID == s.ownerID && id == s.known {
		return screening.Candidate{ID: id, OwnerID: ownerID}, nil
	}
	return screening.Candidate{}, errors.New("not found")
}

func (s *stubCandidates) ListByOwner(_ context.Context, _ uuid.UUID, _, _ int) ([]screening.Candidate, error) {
	return nil, nil
}

func (s *stubCandidates) ListByOwnerByScore(_ context.Context, _ uuid.UUID) ([]screening.Candidate, error) {
	return nil, nil
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	candidateID := uuid.New()
	candidates := &stubCandidates{ownerID: ownerID, known: candidateID}

	t.Run("stores a valid record", func(t *testing.T) {
		repo := &memoryFeedbackRepo{}
		svc := NewService(repo, candidates)

		actual := 85.0
		saved, err := svc.Submit(ctx, ownerID, Feedback{
			CandidateID:       candidateID,
			PredictedScore:    70,
			PredictedCategory: "Medium Fit",
			ActualScore:       &actual,
			ActualCategory:    "Strong Fit",
			HRFeedback:        "hired after onsite",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())
		require.Len(t, repo.created, 1)
		assert.Equal(t, saved, repo.created[0])
	})

	t.Run("unknown candidate", func(t *testing.T) {
		svc := NewService(&memoryFeedbackRepo{}, candidates)
		_, err := svc.Submit(ctx, ownerID, Feedback{CandidateID: uuid.New(), PredictedScore: 50})
		require.ErrorIs(t, err, ErrCandidateNotFound)
	})

	t.Run("candidate of another owner", func(t *testing.T) {
		svc := NewService(&memoryFeedbackRepo{}, candidates)
		_, err := svc.Submit(ctx, uuid.New(), Feedback{CandidateID: candidateID, PredictedScore: 50})
		require.ErrorIs(t, err, ErrCandidateNotFound)
	})

	t.Run("score range validation", func(t *testing.T) {
		svc := NewService(&memoryFeedbackRepo{}, candidates)

		_, err := svc.Submit(ctx, ownerID, Feedback{CandidateID: candidateID, PredictedScore: 120})
		require.Error(t, err)

		bad := -5.0
		_, err = svc.Submit(ctx, ownerID, Feedback{CandidateID: candidateID, PredictedScore: 50, ActualScore: &bad})
		require.Error(t, err)
	})
}

func TestTrainingPairs(t *testing.T) {
	repo := &memoryFeedbackRepo{pairs: []TrainingPair{{Text: "resume", Category: "Engineering"}}}
	svc := NewService(repo, &stubCandidates{})

	pairs, err := svc.TrainingPairs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.pairs, pairs)
}
