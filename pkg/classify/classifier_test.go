package classify

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder maps texts onto fixed, linearly separable vectors so training
// is deterministic and cheap. It also counts calls to verify fail-fast paths.
type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) EmbedStrings(_ context.Context, texts []string) ([][]float64, error) {
	f.calls++
	out := make([][]float64, len(texts))
	for i, t := range texts {
		switch {
		case strings.HasPrefix(t, "engineering"):
			out[i] = []float64{1, 0}
		case strings.HasPrefix(t, "sales"):
			out[i] = []float64{0, 1}
		default:
			out[i] = []float64{0.5, 0.5}
		}
	}
	return out, nil
}

func trainingData() (texts, labels []string) {
	for _, s := range []string{"one", "two", "three", "four"} {
		texts = append(texts, "engineering resume "+s)
		labels = append(labels, "Engineering")
		texts = append(texts, "sales resume "+s)
		labels = append(labels, "Sales")
	}
	return texts, labels
}

func TestTrain(t *testing.T) {
	ctx := context.Background()

	t.Run("logistic regression separates the classes", func(t *testing.T) {
		texts, labels := trainingData()
		c := New(&fakeEmbedder{})
		metrics, err := c.Train(ctx, texts, labels, TrainOptions{TestSize: 0.25})
		require.NoError(t, err)

		assert.Equal(t, 2, metrics.NumCategories)
		assert.Equal(t, 8, metrics.NumSamples)
		assert.InDelta(t, 1.0, metrics.Accuracy, 1e-9)
		require.Contains(t, metrics.Report, "Engineering")
		require.Contains(t, metrics.Report, "Sales")
		assert.True(t, c.Loaded())
		assert.Equal(t, ModelLogistic, c.Kind())
		assert.Equal(t, []string{"Engineering", "Sales"}, c.Categories())
	})

	t.Run("random forest separates the classes", func(t *testing.T) {
		texts, labels := trainingData()
		c := New(&fakeEmbedder{})
		metrics, err := c.Train(ctx, texts, labels, TrainOptions{TestSize: 0.25, ModelType: ModelRandomForest})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, metrics.Accuracy, 1e-9)
		assert.Equal(t, ModelRandomForest, c.Kind())
	})

	t.Run("unknown model type fails before embedding", func(t *testing.T) {
		texts, labels := trainingData()
		emb := &fakeEmbedder{}
		_, err := New(emb).Train(ctx, texts, labels, TrainOptions{ModelType: "svm"})
		require.ErrorIs(t, err, ErrBadTrainingConfig)
		assert.Zero(t, emb.calls)
	})

	t.Run("single-sample class fails before embedding", func(t *testing.T) {
		emb := &fakeEmbedder{}
		_, err := New(emb).Train(ctx,
			[]string{"engineering a", "engineering b", "sales a"},
			[]string{"Engineering", "Engineering", "Sales"},
			TrainOptions{})
		require.ErrorIs(t, err, ErrBadTrainingConfig)
		assert.Zero(t, emb.calls)
	})

	t.Run("mismatched inputs are rejected", func(t *testing.T) {
		_, err := New(&fakeEmbedder{}).Train(ctx, []string{"a"}, []string{"x", "y"}, TrainOptions{})
		require.ErrorIs(t, err, ErrBadTrainingConfig)
	})

	t.Run("progress callback covers every sample", func(t *testing.T) {
		texts, labels := trainingData()
		var last int
		c := New(&fakeEmbedder{})
		_, err := c.Train(ctx, texts, labels, TrainOptions{
			Progress: func(done, total int) { last = done; assert.Equal(t, len(texts), total) },
		})
		require.NoError(t, err)
		assert.Equal(t, len(texts), last)
	})
}

func TestPredict(t *testing.T) {
	ctx := context.Background()
	texts, labels := trainingData()
	c := New(&fakeEmbedder{})
	_, err := c.Train(ctx, texts, labels, TrainOptions{})
	require.NoError(t, err)

	t.Run("classifies a resume", func(t *testing.T) {
		pred, err := c.Predict(ctx, "engineering background, Go and Kubernetes")
		require.NoError(t, err)
		assert.Equal(t, "Engineering", pred.Category)
		assert.Greater(t, pred.Confidence, 0.5)
		require.Len(t, pred.Top, 2)
		assert.Equal(t, pred.Category, pred.Top[0].Category)
		assert.GreaterOrEqual(t, pred.Top[0].Confidence, pred.Top[1].Confidence)

		var sum float64
		for _, p := range pred.Probabilities {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-6)
	})

	t.Run("untrained classifier", func(t *testing.T) {
		_, err := New(&fakeEmbedder{}).Predict(ctx, "whatever")
		require.ErrorIs(t, err, ErrNotLoaded)
	})

	t.Run("batch keeps input order", func(t *testing.T) {
		got, err := c.PredictBatch(ctx, []string{"sales pitch deck", "engineering design doc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Sales", "Engineering"}, got)
	})

	t.Run("empty batch", func(t *testing.T) {
		got, err := c.PredictBatch(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
