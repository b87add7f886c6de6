package screening

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/screening/pkg/nlp"
	"github.com/artem13815/screening/pkg/resume"
	"github.com/artem13815/screening/pkg/scoring"
)

type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) EmbedStrings(_ context.Context, texts []string) ([][]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = []float64{1, 2, 3}
	}
	return out, nil
}

type memoryRepo struct {
	created []Candidate
}

func (m *memoryRepo) Create(_ context.Context, c Candidate) error {
	m.created = append(m.created, c)
	return nil
}

func (m *memoryRepo) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (Candidate, error) {
	for _, c := range m.created {
		if c.ID == id && c.OwnerID == ownerID {
			return c, nil
		}
	}
	return Candidate{}, errors.New("not found")
}

func (m *memoryRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]Candidate, error) {
	var out []Candidate
	for _, c := range m.created {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListByOwnerByScore(_ context.Context, ownerID uuid.UUID) ([]Candidate, error) {
	var out []Candidate
	for _, c := range m.created {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Scores.Total > out[j].Scores.Total
	})
	return out, nil
}

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	body.WriteString("<w:document><w:body>")
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>")
	}
	body.WriteString("</w:body></w:document>")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func newTestService(embedder nlp.Embedder, repo Repository) UseCase {
	catalog := resume.NewCatalog([]string{"go", "python"})
	parser := resume.NewParser(catalog)
	engine := nlp.NewEngine(embedder, 2, nil)
	return NewService(parser, engine, nil, repo, nil)
}

func TestScreen(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline with persistence", func(t *testing.T) {
		repo := &memoryRepo{}
		svc := newTestService(&stubEmbedder{}, repo)
		ownerID := uuid.New()

		data := buildDocx(t,
			"Go engineer with 6 years of experience.",
			"Contact: jane@example.com",
		)
		cand, err := svc.Screen(ctx, Request{
			FileBytes:      data,
			Filename:       "resume.docx",
			ContentType:    "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			JobDescription: "We need a Go engineer",
			CandidateName:  "Jane Doe",
			OwnerID:        ownerID,
		})
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", cand.FullName)
		assert.Equal(t, "jane@example.com", cand.Email)
		assert.Equal(t, []string{"go"}, cand.Skills)
		assert.Equal(t, []string{"python"}, cand.MissingSkills)
		require.NotNil(t, cand.ExperienceYears)
		assert.Equal(t, 6.0, *cand.ExperienceYears)

		// Identical embeddings: similarity 100. Skill 1/2 -> 50, experience
		// 6/20 -> 30. Total: 100*0.6 + 50*0.3 + 30*0.1 = 78.
		assert.Equal(t, 100.0, cand.Scores.Similarity)
		assert.Equal(t, 50.0, cand.Scores.SkillMatch)
		assert.Equal(t, 30.0, cand.Scores.Experience)
		assert.Equal(t, 78.0, cand.Scores.Total)
		assert.Equal(t, scoring.CategoryMediumFit, cand.Category)
		require.Len(t, cand.Breakdown, 3)

		assert.Empty(t, cand.PredictedCategory)
		assert.Nil(t, cand.CategoryConfidence)

		assert.Equal(t, ownerID, cand.OwnerID)
		assert.Equal(t, "resume.docx", cand.Metadata.OriginalFilename)
		assert.Equal(t, int64(len(data)), cand.Metadata.FileSize)
		assert.NotEmpty(t, cand.ResumeText)
		assert.False(t, cand.CreatedAt.IsZero())

		require.Len(t, repo.created, 1)
		assert.Equal(t, cand.ID, repo.created[0].ID)
	})

	t.Run("embedding failure degrades to neutral similarity", func(t *testing.T) {
		svc := newTestService(&stubEmbedder{err: errors.New("provider down")}, &memoryRepo{})

		cand, err := svc.Screen(ctx, Request{
			FileBytes:      buildDocx(t, "Go engineer with 6 years of experience."),
			Filename:       "resume.docx",
			JobDescription: "We need a Go engineer",
		})
		require.NoError(t, err)
		assert.Equal(t, nlp.NeutralSimilarity, cand.Scores.Similarity)
	})

	t.Run("unsupported format fails", func(t *testing.T) {
		svc := newTestService(&stubEmbedder{}, &memoryRepo{})
		_, err := svc.Screen(ctx, Request{FileBytes: []byte("x"), Filename: "resume.txt"})
		var formatErr *resume.FormatError
		require.ErrorAs(t, err, &formatErr)
	})

	t.Run("full name falls back to email then placeholder", func(t *testing.T) {
		svc := newTestService(&stubEmbedder{}, &memoryRepo{})

		cand, err := svc.Screen(ctx, Request{
			FileBytes: buildDocx(t, "Engineer, reach me at bob@example.com"),
			Filename:  "resume.docx",
		})
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", cand.FullName)

		cand, err = svc.Screen(ctx, Request{
			FileBytes: buildDocx(t, "Engineer without contacts"),
			Filename:  "resume.docx",
		})
		require.NoError(t, err)
		assert.Equal(t, "Unknown Candidate", cand.FullName)
	})

	t.Run("works without a repository", func(t *testing.T) {
		svc := newTestService(&stubEmbedder{}, nil)
		_, err := svc.Screen(ctx, Request{
			FileBytes: buildDocx(t, "Go engineer."),
			Filename:  "resume.docx",
		})
		require.NoError(t, err)
	})
}

func TestScore(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubEmbedder{}, nil)

	t.Run("empty job description is neutral", func(t *testing.T) {
		six := 6.0
		result, err := svc.Score(ctx, ScoreInput{
			ResumeText:      "Go engineer",
			Skills:          []string{"go"},
			MissingSkills:   []string{"python"},
			ExperienceYears: &six,
		})
		require.NoError(t, err)
		assert.Equal(t, nlp.NeutralSimilarity, result.SimilarityScore)
		// 50*0.6 + 50*0.3 + 30*0.1 = 48 -> Weak Fit
		assert.Equal(t, 48.0, result.TotalAIScore)
		assert.Equal(t, scoring.CategoryWeakFit, result.Category)
	})

	t.Run("embedding failure is an error for manual scoring", func(t *testing.T) {
		svc := newTestService(&stubEmbedder{err: errors.New("provider down")}, nil)
		_, err := svc.Score(ctx, ScoreInput{ResumeText: "text", JobDescription: "job"})
		require.Error(t, err)
	})
}
