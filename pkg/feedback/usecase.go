package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/screening/pkg/screening"
)

var ErrCandidateNotFound = errors.New("candidate not found")

// UseCase validates and appends HR feedback.
type UseCase interface {
	Submit(ctx context.Context, ownerID uuid.UUID, f Feedback) (Feedback, error)
	TrainingPairs(ctx context.Context) ([]TrainingPair, error)
}

type service struct {
	repo       Repository
	candidates screening.Repository
}

func NewService(repo Repository, candidates screening.Repository) UseCase {
	return &service{repo: repo, candidates: candidates}
}

// Submit stores one feedback event. The candidate must exist and belong to
// the caller; scores must stay within [0,100].
func (s *service) Submit(ctx context.Context, ownerID uuid.UUID, f Feedback) (Feedback, error) {
	if _, err := s.candidates.GetForOwner(ctx, ownerID, f.CandidateID); err != nil {
		return Feedback{}, ErrCandidateNotFound
	}
	if f.PredictedScore < 0 || f.PredictedScore > 100 {
		return Feedback{}, fmt.Errorf("predicted score %v out of [0,100]", f.PredictedScore)
	}
	if f.ActualScore != nil && (*f.ActualScore < 0 || *f.ActualScore > 100) {
		return Feedback{}, fmt.Errorf("actual score %v out of [0,100]", *f.ActualScore)
	}

	f.ID = uuid.New()
	f.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, f); err != nil {
		return Feedback{}, err
	}
	return f, nil
}

// TrainingPairs exports corrected samples for the offline retraining job.
func (s *service) TrainingPairs(ctx context.Context) ([]TrainingPair, error) {
	return s.repo.TrainingPairs(ctx)
}
