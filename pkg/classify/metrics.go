package classify

// ClassReport holds per-class evaluation figures on the held-out split.
type ClassReport struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Metrics summarizes a training run.
type Metrics struct {
	Accuracy      float64                `json:"accuracy"`
	NumCategories int                    `json:"num_categories"`
	NumSamples    int                    `json:"num_samples"`
	Report        map[string]ClassReport `json:"report"`
}

// evaluate computes accuracy and a per-class precision/recall/F1 report.
func evaluate(yTrue, yPred []int, enc *LabelEncoder) (float64, map[string]ClassReport) {
	n := len(yTrue)
	correct := 0
	tp := make([]int, enc.Len())
	fp := make([]int, enc.Len())
	fn := make([]int, enc.Len())
	support := make([]int, enc.Len())

	for i := range yTrue {
		support[yTrue[i]]++
		if yPred[i] == yTrue[i] {
			correct++
			tp[yTrue[i]]++
		} else {
			fp[yPred[i]]++
			fn[yTrue[i]]++
		}
	}

	report := make(map[string]ClassReport, enc.Len())
	for c, name := range enc.Classes() {
		var precision, recall, f1 float64
		if tp[c]+fp[c] > 0 {
			precision = float64(tp[c]) / float64(tp[c]+fp[c])
		}
		if tp[c]+fn[c] > 0 {
			recall = float64(tp[c]) / float64(tp[c]+fn[c])
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		report[name] = ClassReport{
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   support[c],
		}
	}
	return float64(correct) / float64(n), report
}
