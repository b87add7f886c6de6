package classify

import (
	"math"
	"math/rand"
)

// forestModel is a random forest over embedding features: bootstrap-sampled
// trees, sqrt(d) feature candidates per split, gini impurity. Probabilities
// are the average of per-tree leaf class distributions.
type forestModel struct {
	Trees      []*treeNode `json:"trees"`
	NumClasses int         `json:"num_classes"`
}

// treeNode is either a split (Left/Right set) or a leaf (Dist set).
type treeNode struct {
	Feature   int       `json:"feature,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      *treeNode `json:"left,omitempty"`
	Right     *treeNode `json:"right,omitempty"`
	Dist      []float64 `json:"dist,omitempty"`
}

const (
	forestTrees      = 100
	forestMaxDepth   = 10
	forestMinSamples = 2
)

func trainForest(x [][]float64, y []int, numClasses int, seed int64) *forestModel {
	rng := rand.New(rand.NewSource(seed))
	features := len(x[0])
	mtry := int(math.Sqrt(float64(features)))
	if mtry < 1 {
		mtry = 1
	}

	f := &forestModel{NumClasses: numClasses, Trees: make([]*treeNode, forestTrees)}
	for t := 0; t < forestTrees; t++ {
		// Bootstrap sample with replacement.
		idx := make([]int, len(x))
		for i := range idx {
			idx[i] = rng.Intn(len(x))
		}
		f.Trees[t] = growTree(x, y, idx, numClasses, mtry, 0, rng)
	}
	return f
}

func growTree(x [][]float64, y, idx []int, numClasses, mtry, depth int, rng *rand.Rand) *treeNode {
	dist := classDistribution(y, idx, numClasses)
	if depth >= forestMaxDepth || len(idx) < forestMinSamples || isPure(dist) {
		return &treeNode{Dist: dist}
	}

	feature, threshold, ok := bestSplit(x, y, idx, numClasses, mtry, rng)
	if !ok {
		return &treeNode{Dist: dist}
	}

	var left, right []int
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{Dist: dist}
	}
	return &treeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      growTree(x, y, left, numClasses, mtry, depth+1, rng),
		Right:     growTree(x, y, right, numClasses, mtry, depth+1, rng),
	}
}

func bestSplit(x [][]float64, y, idx []int, numClasses, mtry int, rng *rand.Rand) (feature int, threshold float64, ok bool) {
	features := len(x[0])
	bestGini := math.Inf(1)
	for _, f := range rng.Perm(features)[:mtry] {
		// Candidate thresholds: midpoints between sample values on f.
		for _, i := range idx {
			t := x[i][f]
			g, valid := splitGini(x, y, idx, numClasses, f, t)
			if valid && g < bestGini {
				bestGini = g
				feature = f
				threshold = t
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func splitGini(x [][]float64, y, idx []int, numClasses, feature int, threshold float64) (float64, bool) {
	leftCounts := make([]float64, numClasses)
	rightCounts := make([]float64, numClasses)
	var nLeft, nRight float64
	for _, i := range idx {
		if x[i][feature] <= threshold {
			leftCounts[y[i]]++
			nLeft++
		} else {
			rightCounts[y[i]]++
			nRight++
		}
	}
	if nLeft == 0 || nRight == 0 {
		return 0, false
	}
	total := nLeft + nRight
	return nLeft/total*gini(leftCounts, nLeft) + nRight/total*gini(rightCounts, nRight), true
}

func gini(counts []float64, n float64) float64 {
	g := 1.0
	for _, c := range counts {
		p := c / n
		g -= p * p
	}
	return g
}

func classDistribution(y, idx []int, numClasses int) []float64 {
	dist := make([]float64, numClasses)
	for _, i := range idx {
		dist[y[i]]++
	}
	for c := range dist {
		dist[c] /= float64(len(idx))
	}
	return dist
}

func isPure(dist []float64) bool {
	for _, p := range dist {
		if p == 1 {
			return true
		}
	}
	return false
}

func (f *forestModel) probs(x []float64) []float64 {
	out := make([]float64, f.NumClasses)
	for _, tree := range f.Trees {
		node := tree
		for node.Dist == nil {
			if x[node.Feature] <= node.Threshold {
				node = node.Left
			} else {
				node = node.Right
			}
		}
		for c, p := range node.Dist {
			out[c] += p
		}
	}
	for c := range out {
		out[c] /= float64(len(f.Trees))
	}
	return out
}

func (f *forestModel) kind() string { return ModelRandomForest }
