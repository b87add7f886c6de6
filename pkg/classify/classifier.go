package classify

import (
	"context"
	"fmt"
	"sort"

	"github.com/artem13815/screening/pkg/nlp"
)

// Supported model types.
const (
	ModelLogistic     = "logistic"
	ModelRandomForest = "random_forest"
)

// model is the fitted probabilistic classifier behind predictions.
type model interface {
	probs(x []float64) []float64
	kind() string
}

// Classifier — классификатор категории должности поверх эмбеддингов резюме.
// State machine: untrained → trained (in memory) → persisted → loaded.
// A Classifier instance is immutable after Train or a Store load; replacing a
// serving model means building a fresh instance and swapping it wholesale
// (see Loader), never mutating live state.
type Classifier struct {
	embedder nlp.Embedder
	labels   *LabelEncoder
	model    model
}

// New returns an untrained classifier bound to an embedding model.
// The embedding model is referenced by the handle, not serialized with the
// classifier artifact.
func New(embedder nlp.Embedder) *Classifier {
	return &Classifier{embedder: embedder}
}

// TrainOptions configure a training run.
type TrainOptions struct {
	// TestSize is the held-out share for evaluation, in (0,1). Default 0.2.
	TestSize float64
	// ModelType is "logistic" (default) or "random_forest".
	ModelType string
	// Seed drives the stratified split and forest sampling. Default 42.
	Seed int64
	// Progress, when set, is called after each embedded sample.
	Progress func(done, total int)
}

func (o *TrainOptions) defaults() {
	if o.TestSize == 0 {
		o.TestSize = 0.2
	}
	if o.ModelType == "" {
		o.ModelType = ModelLogistic
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
}

// Train fits a label encoder over categories, embeds every resume text,
// splits stratified, fits the requested model on the train part and evaluates
// on the held-out part. Configuration problems (unknown model type,
// infeasible split) fail fast before any embedding work.
func (c *Classifier) Train(ctx context.Context, resumes, categories []string, opts TrainOptions) (Metrics, error) {
	opts.defaults()

	if opts.ModelType != ModelLogistic && opts.ModelType != ModelRandomForest {
		return Metrics{}, fmt.Errorf("%w: unknown model type %q", ErrBadTrainingConfig, opts.ModelType)
	}
	if len(resumes) == 0 || len(resumes) != len(categories) {
		return Metrics{}, fmt.Errorf("%w: %d resume(s) vs %d categorie(s)", ErrBadTrainingConfig, len(resumes), len(categories))
	}

	labels, encoded := FitLabels(categories)
	trainIdx, testIdx, err := stratifiedSplit(encoded, opts.TestSize, opts.Seed)
	if err != nil {
		return Metrics{}, err
	}

	embeddings, err := c.embedAll(ctx, resumes, opts.Progress)
	if err != nil {
		return Metrics{}, fmt.Errorf("embed training set: %w", err)
	}

	xTrain, yTrain := gather(embeddings, encoded, trainIdx)
	xTest, yTest := gather(embeddings, encoded, testIdx)

	var fitted model
	switch opts.ModelType {
	case ModelLogistic:
		fitted = trainLogistic(xTrain, yTrain, labels.Len())
	case ModelRandomForest:
		fitted = trainForest(xTrain, yTrain, labels.Len(), opts.Seed)
	}

	yPred := make([]int, len(xTest))
	for i, x := range xTest {
		yPred[i] = argmax(fitted.probs(x))
	}
	accuracy, report := evaluate(yTest, yPred, labels)

	c.labels = labels
	c.model = fitted

	return Metrics{
		Accuracy:      accuracy,
		NumCategories: labels.Len(),
		NumSamples:    len(resumes),
		Report:        report,
	}, nil
}

// Prediction is the single-text classification outcome.
type Prediction struct {
	Category      string             `json:"predicted_category"`
	Confidence    float64            `json:"confidence"`
	Top           []CategoryScore    `json:"top_predictions"`
	Probabilities map[string]float64 `json:"all_probabilities"`
}

// CategoryScore is one ranked (category, confidence) pair.
type CategoryScore struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Loaded reports whether the classifier can serve predictions.
func (c *Classifier) Loaded() bool { return c.model != nil && c.labels != nil }

// Kind returns the fitted model type, empty when untrained.
func (c *Classifier) Kind() string {
	if c.model == nil {
		return ""
	}
	return c.model.kind()
}

// Categories returns the sorted category names, nil when untrained.
func (c *Classifier) Categories() []string {
	if c.labels == nil {
		return nil
	}
	return c.labels.Classes()
}

// Predict classifies one resume text: top category, its confidence, the top-3
// ranked pairs and the full probability map.
func (c *Classifier) Predict(ctx context.Context, text string) (Prediction, error) {
	if !c.Loaded() {
		return Prediction{}, ErrNotLoaded
	}
	vecs, err := c.embedder.EmbedStrings(ctx, []string{text})
	if err != nil {
		return Prediction{}, fmt.Errorf("embed text: %w", err)
	}
	probs := c.model.probs(vecs[0])

	ranked := make([]CategoryScore, len(probs))
	all := make(map[string]float64, len(probs))
	for i, p := range probs {
		name := c.labels.classes[i]
		ranked[i] = CategoryScore{Category: name, Confidence: p}
		all[name] = p
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Confidence > ranked[j].Confidence })

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}
	return Prediction{
		Category:      ranked[0].Category,
		Confidence:    ranked[0].Confidence,
		Top:           top,
		Probabilities: all,
	}, nil
}

// PredictBatch classifies many texts and returns only the predicted category
// names, in input order. Confidences are dropped on purpose: batch callers
// trade detail for throughput.
func (c *Classifier) PredictBatch(ctx context.Context, texts []string) ([]string, error) {
	if !c.Loaded() {
		return nil, ErrNotLoaded
	}
	if len(texts) == 0 {
		return []string{}, nil
	}
	vecs, err := c.embedder.EmbedStrings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed texts: %w", err)
	}
	out := make([]string, len(vecs))
	for i, v := range vecs {
		out[i] = c.labels.classes[argmax(c.model.probs(v))]
	}
	return out, nil
}

func (c *Classifier) embedAll(ctx context.Context, texts []string, progress func(done, total int)) ([][]float64, error) {
	const batch = 32
	out := make([][]float64, 0, len(texts))
	for start := 0; start < len(texts); start += batch {
		end := start + batch
		if end > len(texts) {
			end = len(texts)
		}
		vecs, err := c.embedder.EmbedStrings(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, vecs...)
		if progress != nil {
			progress(end, len(texts))
		}
	}
	return out, nil
}

func gather(x [][]float64, y, idx []int) ([][]float64, []int) {
	gx := make([][]float64, len(idx))
	gy := make([]int, len(idx))
	for i, j := range idx {
		gx[i] = x[j]
		gy[i] = y[j]
	}
	return gx, gy
}

func argmax(v []float64) int {
	best := 0
	for i, x := range v {
		if x > v[best] {
			best = i
		}
	}
	return best
}
