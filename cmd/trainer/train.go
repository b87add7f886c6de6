package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/artem13815/screening/pkg/classify"
	"github.com/artem13815/screening/pkg/config"
	"github.com/artem13815/screening/pkg/dataset"
	"github.com/artem13815/screening/pkg/nlp/openai"
	pgrepo "github.com/artem13815/screening/pkg/repository/postgres"
	"github.com/artem13815/screening/pkg/storage/postgres"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the category classifier from a CSV dataset or collected HR feedback",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTrain(cmd)
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().String("csv", "", "path to the training CSV")
	trainCmd.Flags().String("text-column", "resume_text", "CSV column with resume text")
	trainCmd.Flags().String("label-column", "category", "CSV column with the category label")
	trainCmd.Flags().Bool("from-feedback", false, "train from HR feedback stored in the database instead of a CSV")
	trainCmd.Flags().String("model-type", classify.ModelLogistic, "model type: logistic or random_forest")
	trainCmd.Flags().String("name", "", "artifact name (default MODEL_NAME from env)")
	trainCmd.Flags().Float64("test-size", 0.2, "held-out share for evaluation, in (0,1)")
	trainCmd.Flags().Int64("seed", 42, "random seed for the split and forest sampling")
}

func runTrain(cmd *cobra.Command) error {
	cfg := config.Load()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	csvPath, _ := cmd.Flags().GetString("csv")
	fromFeedback, _ := cmd.Flags().GetBool("from-feedback")

	var texts, labels []string
	var err error
	switch {
	case fromFeedback:
		texts, labels, err = loadFromFeedback(ctx, cfg)
	case csvPath != "":
		textCol, _ := cmd.Flags().GetString("text-column")
		labelCol, _ := cmd.Flags().GetString("label-column")
		texts, labels, err = dataset.Load(csvPath, textCol, labelCol)
	default:
		return fmt.Errorf("either --csv or --from-feedback is required")
	}
	if err != nil {
		return err
	}
	fmt.Printf("loaded %d training samples\n", len(texts))

	embedder := openai.New(cfg.EmbeddingsAPIKey, cfg.EmbeddingsBaseURL, cfg.EmbeddingsModel)
	classifier := classify.New(embedder)

	modelType, _ := cmd.Flags().GetString("model-type")
	testSize, _ := cmd.Flags().GetFloat64("test-size")
	seed, _ := cmd.Flags().GetInt64("seed")

	bar := progressbar.NewOptions(len(texts),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("embedding resumes"),
	)
	metrics, err := classifier.Train(ctx, texts, labels, classify.TrainOptions{
		TestSize:  testSize,
		ModelType: modelType,
		Seed:      seed,
		Progress:  func(done, _ int) { _ = bar.Set(done) },
	})
	if err != nil {
		return err
	}
	fmt.Println()

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = cfg.ModelName
	}
	store := classify.NewStore(cfg.ModelsDir)
	if err := store.Save(name, classifier); err != nil {
		return fmt.Errorf("save artifacts: %w", err)
	}

	printMetrics(name, metrics)
	return nil
}

func loadFromFeedback(ctx context.Context, cfg config.Config) ([]string, []string, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is required for --from-feedback")
	}
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	defer pool.Close()

	// Candidate repo is only opened to ensure the schema exists before the join.
	if _, err := pgrepo.NewCandidateRepository(pool); err != nil {
		return nil, nil, err
	}
	repo, err := pgrepo.NewFeedbackRepository(pool)
	if err != nil {
		return nil, nil, err
	}
	pairs, err := repo.TrainingPairs(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(pairs) == 0 {
		return nil, nil, fmt.Errorf("no corrected feedback found in the database")
	}
	texts := make([]string, len(pairs))
	labels := make([]string, len(pairs))
	for i, p := range pairs {
		texts[i] = p.Text
		labels[i] = p.Category
	}
	return texts, labels, nil
}

func printMetrics(name string, m classify.Metrics) {
	fmt.Printf("saved model %q\n", name)
	fmt.Printf("accuracy: %.4f over %d samples, %d categories\n", m.Accuracy, m.NumSamples, m.NumCategories)

	classes := make([]string, 0, len(m.Report))
	for c := range m.Report {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	for _, c := range classes {
		r := m.Report[c]
		fmt.Printf("  %-30s precision %.3f  recall %.3f  f1 %.3f  support %d\n",
			c, r.Precision, r.Recall, r.F1, r.Support)
	}
}
