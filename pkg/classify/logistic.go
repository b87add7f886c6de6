package classify

import "math"

// logisticModel is a multinomial (softmax) logistic regression fitted with
// full-batch gradient descent. Embedding vectors are low-dimensional and
// training sets are small, so plain gradient descent converges quickly and
// keeps the artifact a flat weight matrix.
type logisticModel struct {
	// Weights holds one row per class; each row has len(features)+1 entries,
	// the last being the bias term.
	Weights [][]float64 `json:"weights"`
}

const (
	logisticEpochs       = 500
	logisticLearningRate = 0.5
)

func trainLogistic(x [][]float64, y []int, numClasses int) *logisticModel {
	features := len(x[0])
	w := make([][]float64, numClasses)
	for c := range w {
		w[c] = make([]float64, features+1)
	}
	m := &logisticModel{Weights: w}

	n := float64(len(x))
	grad := make([][]float64, numClasses)
	for c := range grad {
		grad[c] = make([]float64, features+1)
	}

	for epoch := 0; epoch < logisticEpochs; epoch++ {
		for c := range grad {
			for j := range grad[c] {
				grad[c][j] = 0
			}
		}
		for i, xi := range x {
			p := m.probs(xi)
			for c := 0; c < numClasses; c++ {
				delta := p[c]
				if c == y[i] {
					delta -= 1
				}
				row := grad[c]
				for j, v := range xi {
					row[j] += delta * v
				}
				row[features] += delta // bias
			}
		}
		for c := range w {
			for j := range w[c] {
				w[c][j] -= logisticLearningRate * grad[c][j] / n
			}
		}
	}
	return m
}

// probs returns softmax class probabilities for one sample.
func (m *logisticModel) probs(x []float64) []float64 {
	scores := make([]float64, len(m.Weights))
	maxScore := math.Inf(-1)
	for c, row := range m.Weights {
		s := row[len(row)-1] // bias
		for j, v := range x {
			s += row[j] * v
		}
		scores[c] = s
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	for c, s := range scores {
		scores[c] = math.Exp(s - maxScore)
		sum += scores[c]
	}
	for c := range scores {
		scores[c] /= sum
	}
	return scores
}

func (m *logisticModel) kind() string { return ModelLogistic }
