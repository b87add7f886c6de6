package classify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedClassifier(t *testing.T, modelType string) *Classifier {
	t.Helper()
	texts, labels := trainingData()
	c := New(&fakeEmbedder{})
	_, err := c.Train(context.Background(), texts, labels, TrainOptions{ModelType: modelType})
	require.NoError(t, err)
	return c
}

func TestStoreRoundtrip(t *testing.T) {
	ctx := context.Background()

	for _, modelType := range []string{ModelLogistic, ModelRandomForest} {
		t.Run(modelType, func(t *testing.T) {
			store := NewStore(t.TempDir())
			trained := trainedClassifier(t, modelType)
			require.NoError(t, store.Save("screening", trained))

			loaded, err := store.Load("screening", &fakeEmbedder{})
			require.NoError(t, err)
			assert.Equal(t, modelType, loaded.Kind())
			assert.Equal(t, trained.Categories(), loaded.Categories())

			pred, err := loaded.Predict(ctx, "engineering resume text")
			require.NoError(t, err)
			assert.Equal(t, "Engineering", pred.Category)
		})
	}
}

func TestStoreSave(t *testing.T) {
	t.Run("untrained classifier", func(t *testing.T) {
		store := NewStore(t.TempDir())
		err := store.Save("screening", New(&fakeEmbedder{}))
		require.ErrorIs(t, err, ErrNotLoaded)
	})

	t.Run("replaces an existing generation", func(t *testing.T) {
		store := NewStore(t.TempDir())
		require.NoError(t, store.Save("screening", trainedClassifier(t, ModelLogistic)))
		require.NoError(t, store.Save("screening", trainedClassifier(t, ModelRandomForest)))

		loaded, err := store.Load("screening", &fakeEmbedder{})
		require.NoError(t, err)
		assert.Equal(t, ModelRandomForest, loaded.Kind())
	})
}

func TestStoreLoad(t *testing.T) {
	t.Run("missing artifacts", func(t *testing.T) {
		store := NewStore(t.TempDir())
		_, err := store.Load("absent", &fakeEmbedder{})
		require.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("one file missing is corrupt, not missing", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)
		require.NoError(t, store.Save("screening", trainedClassifier(t, ModelLogistic)))
		require.NoError(t, os.Remove(filepath.Join(dir, "screening", labelEncoderFile)))

		_, err := store.Load("screening", &fakeEmbedder{})
		require.ErrorIs(t, err, ErrCorruptArtifact)
		assert.NotErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("unparseable artifact", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)
		require.NoError(t, store.Save("screening", trainedClassifier(t, ModelLogistic)))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "screening", classifierFile), []byte("{broken"), 0o644))

		_, err := store.Load("screening", &fakeEmbedder{})
		require.ErrorIs(t, err, ErrCorruptArtifact)
	})
}

func TestLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("lazy load and reuse", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)
		require.NoError(t, store.Save("screening", trainedClassifier(t, ModelLogistic)))

		loader := NewLoader(store, &fakeEmbedder{}, "screening")
		assert.False(t, loader.Loaded())

		first, err := loader.Get(ctx)
		require.NoError(t, err)
		assert.True(t, loader.Loaded())

		second, err := loader.Get(ctx)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("missing artifacts surface through Get", func(t *testing.T) {
		loader := NewLoader(NewStore(t.TempDir()), &fakeEmbedder{}, "absent")
		_, err := loader.Get(ctx)
		require.ErrorIs(t, err, ErrModelNotFound)
		assert.False(t, loader.Loaded())
	})

	t.Run("reload swaps the generation", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)
		require.NoError(t, store.Save("screening", trainedClassifier(t, ModelLogistic)))

		loader := NewLoader(store, &fakeEmbedder{}, "screening")
		first, err := loader.Get(ctx)
		require.NoError(t, err)

		require.NoError(t, store.Save("screening", trainedClassifier(t, ModelRandomForest)))
		require.NoError(t, loader.Reload(ctx))

		second, err := loader.Get(ctx)
		require.NoError(t, err)
		assert.NotSame(t, first, second)
		assert.Equal(t, ModelRandomForest, second.Kind())
	})
}
