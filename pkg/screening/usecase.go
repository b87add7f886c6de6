package screening

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/screening/pkg/classify"
	"github.com/artem13815/screening/pkg/nlp"
	"github.com/artem13815/screening/pkg/resume"
	"github.com/artem13815/screening/pkg/scoring"
)

// Request carries one screening submission.
type Request struct {
	FileBytes      []byte
	Filename       string
	ContentType    string
	JobDescription string
	CandidateName  string
	Background     string
	StorageURI     string
	OwnerID        uuid.UUID
}

// UseCase — сценарий полного скоринга резюме.
type UseCase interface {
	Screen(ctx context.Context, req Request) (Candidate, error)
	Score(ctx context.Context, in ScoreInput) (scoring.Result, error)
	Candidate(ctx context.Context, ownerID, id uuid.UUID) (Candidate, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Candidate, error)
	Dashboard(ctx context.Context, ownerID uuid.UUID) (Dashboard, error)
}

type service struct {
	parser     *resume.Parser
	similarity *nlp.Engine
	classifier *classify.Loader
	repo       Repository
	log        *zap.Logger
}

// NewService wires the pipeline. classifier may be nil-loaded (no artifact on
// disk yet): predictions then degrade to unset fields. repo may be nil for
// score-only deployments.
func NewService(parser *resume.Parser, similarity *nlp.Engine, classifier *classify.Loader, repo Repository, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		parser:     parser,
		similarity: similarity,
		classifier: classifier,
		repo:       repo,
		log:        log,
	}
}

// Screen runs bytes through extraction, normalization, the heuristic
// extractors, semantic similarity and the optional category classifier, then
// folds everything into the composite score and persists the merged record.
func (s *service) Screen(ctx context.Context, req Request) (Candidate, error) {
	parsed, err := s.parser.Parse(req.Filename, req.FileBytes)
	if err != nil {
		return Candidate{}, err
	}

	similarity, err := s.similarity.Similarity(ctx, parsed.CleanText, req.JobDescription)
	if err != nil {
		// Inference failure must not reject the upload: fall back to the
		// neutral score and keep going.
		s.log.Warn("similarity failed, using neutral score", zap.Error(err))
		similarity = nlp.NeutralSimilarity
	}

	var predictedCategory string
	var categoryConfidence *float64
	if s.classifier != nil {
		if prediction, err := s.predictCategory(ctx, parsed.CleanText); err != nil {
			s.log.Debug("category prediction unavailable", zap.Error(err))
		} else {
			predictedCategory = prediction.Category
			conf := prediction.Confidence
			categoryConfidence = &conf
		}
	}

	result := scoring.Calculate(parsed.Skills, parsed.MissingSkills, parsed.ExperienceYears, similarity)

	now := time.Now().UTC()
	cand := Candidate{
		ID:                 uuid.New(),
		OwnerID:            req.OwnerID,
		FullName:           fullName(req.CandidateName, parsed.Email),
		Email:              parsed.Email,
		Phone:              parsed.Phone,
		Skills:             parsed.Skills,
		MissingSkills:      result.MissingSkills,
		ExperienceYears:    parsed.ExperienceYears,
		Education:          parsed.Education,
		Certifications:     parsed.Certifications,
		LastRole:           parsed.LastRole,
		Summary:            summaryOr(parsed.Summary, req.Background),
		JobDescription:     req.JobDescription,
		Category:           result.Category,
		Scores:             resultScores(result),
		Breakdown:          result.Breakdown,
		ResumeText:         parsed.CleanText,
		PredictedCategory:  predictedCategory,
		CategoryConfidence: categoryConfidence,
		Metadata: FileMetadata{
			OriginalFilename: req.Filename,
			ContentType:      req.ContentType,
			FileSize:         int64(len(req.FileBytes)),
			StorageURI:       req.StorageURI,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, cand); err != nil {
			return Candidate{}, err
		}
	}
	return cand, nil
}

func (s *service) predictCategory(ctx context.Context, text string) (classify.Prediction, error) {
	c, err := s.classifier.Get(ctx)
	if err != nil {
		return classify.Prediction{}, err
	}
	return c.Predict(ctx, text)
}

// ScoreInput is the manual scoring payload: already extracted signals plus
// the texts needed for similarity.
type ScoreInput struct {
	ResumeText      string
	JobDescription  string
	Skills          []string
	MissingSkills   []string
	ExperienceYears *float64
}

// Score computes similarity and the composite score without touching storage.
func (s *service) Score(ctx context.Context, in ScoreInput) (scoring.Result, error) {
	similarity, err := s.similarity.Similarity(ctx, in.ResumeText, in.JobDescription)
	if err != nil {
		return scoring.Result{}, err
	}
	return scoring.Calculate(in.Skills, in.MissingSkills, in.ExperienceYears, similarity), nil
}

func (s *service) Candidate(ctx context.Context, ownerID, id uuid.UUID) (Candidate, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Candidate, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func fullName(candidateName, email string) string {
	if candidateName != "" {
		return candidateName
	}
	if email != "" {
		return email
	}
	return "Unknown Candidate"
}

func summaryOr(summary, background string) string {
	if summary != "" {
		return summary
	}
	return background
}

func resultScores(r scoring.Result) Scores {
	return Scores{
		SkillMatch: r.SkillMatchScore,
		Experience: r.ExperienceScore,
		Similarity: r.SimilarityScore,
		Total:      r.TotalAIScore,
	}
}
